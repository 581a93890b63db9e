package params_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/iltcme/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/integrate/quad"
)

// kernel returns x ↦ x^m·h(x) for the density of p.
func kernel(p params.Param, m int) func(float64) float64 {
	return func(x float64) float64 {
		return math.Pow(x, float64(m)) * params.Kernel(p, x)
	}
}

// TestMoments_Order1 checks h(x) = 4e^{-x}sin²(x/2) by hand:
// mass 1, mean 2, variance 1, cv2 1/4.
func TestMoments_Order1(t *testing.T) {
	p := params.Param{N: 1, A: []float64{-2}, B: []float64{0}, C: 2, Omega: 1, Mu1: 2, Cv2: 0.25}
	mass, mean, cv2 := params.Moments(p)
	assert.InDelta(t, 1.0, mass, 1e-12)
	assert.InDelta(t, 2.0, mean, 1e-12)
	assert.InDelta(t, 0.25, cv2, 1e-12)
	assert.NoError(t, params.CheckMoments(p, 0))
}

// TestMoments_SineTerm exercises the B (sine) branch against quadrature.
func TestMoments_SineTerm(t *testing.T) {
	p := params.Param{N: 2, A: []float64{0.3, -0.1}, B: []float64{0.2, 0.05}, C: 1, Omega: 0.7, Mu1: 1, Cv2: 1}
	mass, mean, cv2 := params.Moments(p)

	qm0 := quad.Fixed(kernel(p, 0), 0, 60, 1000, nil, 0)
	qm1 := quad.Fixed(kernel(p, 1), 0, 60, 1000, nil, 0)
	qm2 := quad.Fixed(kernel(p, 2), 0, 60, 1000, nil, 0)
	qMean := qm1 / qm0
	assert.InDelta(t, qm0, mass, 1e-10, "mass")
	assert.InDelta(t, qMean, mean, 1e-10, "mean")
	assert.InDelta(t, (qm2/qm0-qMean*qMean)/(qMean*qMean), cv2, 1e-9, "cv2")
}

// TestMoments_DefaultTableQuadrature cross-checks two bundled records with
// Gauss–Legendre quadrature.
func TestMoments_DefaultTableQuadrature(t *testing.T) {
	ps, err := params.Default()
	require.NoError(t, err)

	for _, n := range []int{5, 29} {
		p := ps[n-1]
		require.Equal(t, n, p.N)

		m0 := quad.Fixed(kernel(p, 0), 0, 60, 1000, nil, 0)
		m1 := quad.Fixed(kernel(p, 1), 0, 60, 1000, nil, 0)
		assert.InDelta(t, 1.0, m0, 1e-8, "n=%d mass", n)
		assert.InEpsilon(t, p.Mu1, m1/m0, 1e-8, "n=%d mean", n)
	}
}

// TestCheckMoments_DefaultTable verifies every bundled record is self-consistent.
// Coefficients grow with the order, so double-precision moments of the
// largest records only hold to the default tolerance.
func TestCheckMoments_DefaultTable(t *testing.T) {
	ps, err := params.Default()
	require.NoError(t, err)
	for _, p := range ps {
		tol := 1e-9
		if p.N > 300 {
			tol = params.DefaultMomentTolerance
		}
		assert.NoError(t, params.CheckMoments(p, tol), "n=%d", p.N)
	}
}

// TestDefaultTable_NonNegativeKernels samples the periodic factor of a few
// bundled kernels over one period.
func TestDefaultTable_NonNegativeKernels(t *testing.T) {
	ps, err := params.Default()
	require.NoError(t, err)
	for _, n := range []int{1, 10, 50, 100} {
		p := ps[n-1]
		period := 2 * math.Pi / p.Omega
		for i := 0; i < 20*n; i++ {
			x := period * float64(i) / float64(20*n)
			assert.GreaterOrEqual(t, params.Kernel(p, x)*math.Exp(x), -1e-6, "n=%d x=%g", n, x)
		}
	}
}

// TestCheckMoments_Mismatch reports tampered records.
func TestCheckMoments_Mismatch(t *testing.T) {
	ps, err := params.Default()
	require.NoError(t, err)
	p := ps[9]

	badMu := p.Clone()
	badMu.Mu1 *= 1.01
	assert.ErrorIs(t, params.CheckMoments(badMu, 0), params.ErrMoments)

	badCv2 := p.Clone()
	badCv2.Cv2 += 0.01
	assert.ErrorIs(t, params.CheckMoments(badCv2, 0), params.ErrMoments)

	badMass := p.Clone()
	badMass.C *= 2
	assert.ErrorIs(t, params.CheckMoments(badMass, 0), params.ErrMoments)
}
