package params_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/iltcme/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefault_Shape checks the bundled table layout.
func TestDefault_Shape(t *testing.T) {
	ps, err := params.Default()
	require.NoError(t, err)
	orders := params.Orders(1000)
	require.Len(t, ps, len(orders))

	for i, p := range ps {
		assert.Equal(t, orders[i], p.N, "file order follows the layout")
		assert.NoError(t, params.Validate(p))
		if i > 0 {
			assert.Less(t, p.Cv2, ps[i-1].Cv2, "cv2 strictly decreasing")
		}
	}
	assert.Equal(t, 1000, params.MaxOrder(ps))
}

// TestDefault_ReturnsCopies ensures callers cannot corrupt the shared table.
func TestDefault_ReturnsCopies(t *testing.T) {
	first, err := params.Default()
	require.NoError(t, err)
	orig := first[3].A[0]
	first[3].A[0] = 1e9
	first[0].Mu1 = -1

	second, err := params.Default()
	require.NoError(t, err)
	assert.Equal(t, orig, second[3].A[0])
	assert.Greater(t, second[0].Mu1, 0.0)
}

// TestDefault_Concurrent calls Default from many goroutines at once.
func TestDefault_Concurrent(t *testing.T) {
	const num = 64
	var wg sync.WaitGroup
	wg.Add(num)
	out := make([][]params.Param, num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			ps, err := params.Default()
			require.NoError(t, err)
			out[id] = ps
		}(i)
	}
	wg.Wait()

	for i := 1; i < num; i++ {
		assert.Equal(t, out[0], out[i])
	}
}
