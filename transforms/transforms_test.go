package transforms_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/iltcme/transforms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLookup resolves every registered name and rejects unknown ones.
func TestLookup(t *testing.T) {
	for _, name := range transforms.Names() {
		p, err := transforms.Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, p.Name)
		assert.NotNil(t, p.Laplace)
		assert.NotNil(t, p.Time)
	}

	_, err := transforms.Lookup("cosine")
	assert.ErrorIs(t, err, transforms.ErrUnknownTransform)
}

// TestAll_Sorted checks All is sorted and complete.
func TestAll_Sorted(t *testing.T) {
	want := []string{"expheaviside", "exponential", "heaviside", "sine", "squarewave", "staircase"}
	assert.Equal(t, want, transforms.Names())
	assert.Len(t, transforms.All(), len(want))
}

// TestTimeFunctions spot-checks the closed forms.
func TestTimeFunctions(t *testing.T) {
	assert.InDelta(t, math.Exp(-2), transforms.Exponential.Time(2), 1e-15)
	assert.InDelta(t, math.Sin(1), transforms.Sine.Time(1), 1e-15)
	assert.Equal(t, 0.0, transforms.Heaviside.Time(0.5))
	assert.Equal(t, 1.0, transforms.Heaviside.Time(3))
	assert.Equal(t, 0.0, transforms.ExpHeaviside.Time(0.9))
	assert.InDelta(t, math.Exp(-1), transforms.ExpHeaviside.Time(2), 1e-15)
	assert.Equal(t, 0.0, transforms.SquareWave.Time(0.5))
	assert.Equal(t, 1.0, transforms.SquareWave.Time(1.5))
	assert.Equal(t, 0.0, transforms.SquareWave.Time(2.5))
	assert.Equal(t, 2.0, transforms.Staircase.Time(2.5))
}

// TestLaplace_RealAxis compares F at real s with the transform integral
// computed by hand: ∫e^{-t}e^{-st}dt = 1/(1+s) and ∫⌊t⌋e^{-st}dt = 1/(s(e^s-1)).
func TestLaplace_RealAxis(t *testing.T) {
	s := complex(2, 0)
	assert.InDelta(t, 1.0/3, real(transforms.Exponential.Laplace(s)), 1e-15)
	assert.InDelta(t, 1.0/5, real(transforms.Sine.Laplace(s)), 1e-15)
	assert.InDelta(t, 1/(2*(math.Exp(2)-1)), real(transforms.Staircase.Laplace(s)), 1e-15)
	assert.InDelta(t, math.Exp(-2)/2, real(transforms.Heaviside.Laplace(s)), 1e-15)
	assert.InDelta(t, 0.0, imag(transforms.Heaviside.Laplace(s)), 1e-15)
}
