package params_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/iltcme/params"
	"github.com/stretchr/testify/assert"
)

// good returns a valid order-2 record.
func good() params.Param {
	return params.Param{N: 2, A: []float64{1, 2}, B: []float64{0, 0}, C: 1, Omega: 0.5, Mu1: 3, Cv2: 0.1}
}

// TestValidate covers each invariant in check order.
func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(p *params.Param)
		want   error
	}{
		{"valid", func(p *params.Param) {}, nil},
		{"order zero", func(p *params.Param) { p.N, p.A, p.B = 0, nil, nil }, nil},
		{"negative order", func(p *params.Param) { p.N = -1 }, params.ErrBadOrder},
		{"a too short", func(p *params.Param) { p.A = p.A[:1] }, params.ErrLengthMismatch},
		{"b too long", func(p *params.Param) { p.B = append(p.B, 0) }, params.ErrLengthMismatch},
		{"NaN in a", func(p *params.Param) { p.A[1] = math.NaN() }, params.ErrNonFinite},
		{"-Inf in b", func(p *params.Param) { p.B[0] = math.Inf(-1) }, params.ErrNonFinite},
		{"+Inf in a", func(p *params.Param) { p.A[0] = math.Inf(1) }, params.ErrNonFinite},
		{"NaN omega", func(p *params.Param) { p.Omega = math.NaN() }, params.ErrNonFinite},
		{"Inf cv2", func(p *params.Param) { p.Cv2 = math.Inf(1) }, params.ErrNonFinite},
		{"zero mu1", func(p *params.Param) { p.Mu1 = 0 }, params.ErrBadScale},
		{"negative mu1", func(p *params.Param) { p.Mu1 = -1 }, params.ErrBadScale},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := good()
			tc.mutate(&p)
			err := params.Validate(p)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestValidateAll_Empty reports the empty table sentinel.
func TestValidateAll_Empty(t *testing.T) {
	assert.ErrorIs(t, params.ValidateAll(nil), params.ErrEmptyTable)
	assert.ErrorIs(t, params.ValidateAll([]params.Param{}), params.ErrEmptyTable)
}

// TestClone_Independent verifies Clone does not share coefficient storage.
func TestClone_Independent(t *testing.T) {
	p := good()
	q := p.Clone()
	q.A[0] = 42
	q.B[1] = 42

	assert.Equal(t, 1.0, p.A[0], "original A untouched")
	assert.Equal(t, 0.0, p.B[1], "original B untouched")
}

// TestMaxOrder covers the empty and mixed cases.
func TestMaxOrder(t *testing.T) {
	assert.Equal(t, -1, params.MaxOrder(nil))
	ps := []params.Param{{N: 3}, {N: 7}, {N: 1}}
	assert.Equal(t, 7, params.MaxOrder(ps))
}
