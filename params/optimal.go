// SPDX-License-Identifier: MIT
// Package: iltcme/params
//
// optimal.go: the minimum-cv2 CME family (the layout of the bundled table).
//
// Member n has the kernel
//
//	h(x) ∝ e^{-x} · |q(e^{iΩx})|²,   q(z) = Σ_{j=0..n} q_j z^j,
//
// which is nonnegative by construction. Every such kernel is a CME kernel of
// order n and, conversely, every nonnegative order-n kernel has this form
// (Fejér–Riesz). Writing Δ = l − j, the m-th raw moment is a Hermitian form
//
//	E[x^m] = q^H K_m q,   K_m[j,l] = m! / (1 − iΔΩ)^{m+1}.
//
// For fixed Ω and a shift a > 0,
//
//	min_q E[(x−a)²] / (a² E[1]) = λ_min(K_2 − 2aK_1 + a²K_0, K_0) / a² =: s,
//
// and minimising s over (Ω, a) minimises cv2 = s/(1−s), attained at
// a = mean + var/mean. Expanding |q|² = Σ_d r_d z^d with
// r_d = Σ_j q_{j+d}·conj(q_j) gives C ∝ r_0, A[d-1] ∝ 2·Re r_d and
// B[d-1] ∝ −2·Im r_d. The Hermitian pencil is embedded in real symmetric
// form and reduced with a K_0^{-1/2} congruence.

package params

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
)

const (
	// optimalConvergeTol is the relative change in s treated as converged.
	optimalConvergeTol = 1e-12

	// optimalConvergeIters is the number of stalled iterations before stopping.
	optimalConvergeIters = 60
)

// errIndefinite reports a K_0 that lost positive definiteness numerically.
// Only reachable for very large orders at tiny Ω.
var errIndefinite = errors.New("moment matrix is not positive definite")

// Optimal builds the minimum-cv2 CME record of order n (n >= 1).
// Returned errors wrap ErrBadOrder or the optimiser failure.
// Complexity: O(n³) per objective evaluation, a few hundred evaluations;
// double precision is adequate up to a few hundred.
func Optimal(n int) (Param, error) {
	if n < 1 {
		return Param{}, fmt.Errorf("Optimal: n=%d: %w", n, ErrBadOrder)
	}

	omega, shift, err := minimiseShifted(n)
	if err != nil {
		return Param{}, fmt.Errorf("Optimal: n=%d: %w", n, err)
	}
	q, err := optimalPolynomial(n, omega, shift)
	if err != nil {
		return Param{}, fmt.Errorf("Optimal: n=%d: %w", n, err)
	}

	p := Param{
		N:     n,
		A:     make([]float64, n),
		B:     make([]float64, n),
		Omega: omega,
	}
	for d := 0; d <= n; d++ {
		var r complex128
		for j := 0; j+d <= n; j++ {
			r += q[j+d] * complex(real(q[j]), -imag(q[j]))
		}
		if d == 0 {
			p.C = real(r)
			continue
		}
		p.A[d-1] = 2 * real(r)
		p.B[d-1] = -2 * imag(r)
	}

	mass, _, _ := Moments(p)
	p.C /= mass
	for d := range p.A {
		p.A[d] /= mass
		p.B[d] /= mass
	}
	_, p.Mu1, p.Cv2 = Moments(p)

	return p, nil
}

// minimiseShifted searches (log Ω, log a) for the smallest s.
// Seeds follow the power laws the optimum obeys for n up to 1000.
func minimiseShifted(n int) (omega, shift float64, err error) {
	fn := float64(n)
	x0 := []float64{
		math.Log(1.04 * math.Pow(fn, -0.197)),
		math.Log(2.7 * math.Cbrt(fn)),
	}

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			s, err := shiftedRatio(n, math.Exp(x[0]), math.Exp(x[1]))
			if err != nil {
				return math.Inf(1)
			}

			return s
		},
	}
	settings := &optimize.Settings{
		Converger: &optimize.FunctionConverge{
			Relative:   optimalConvergeTol,
			Iterations: optimalConvergeIters,
		},
	}
	res, err := optimize.Minimize(problem, x0, settings, &optimize.NelderMead{})
	if err != nil {
		return 0, 0, err
	}
	if math.IsInf(res.F, 1) {
		return 0, 0, errIndefinite
	}

	return math.Exp(res.X[0]), math.Exp(res.X[1]), nil
}

// shiftedRatio returns s(Ω, a) = λ_min / a².
func shiftedRatio(n int, omega, shift float64) (float64, error) {
	vals, _, err := reducedPencil(n, omega, shift, false)
	if err != nil {
		return 0, err
	}

	return vals[0] / (shift * shift), nil
}

// optimalPolynomial returns the q attaining λ_min at (Ω, a).
func optimalPolynomial(n int, omega, shift float64) ([]complex128, error) {
	_, y, err := reducedPencil(n, omega, shift, true)
	if err != nil {
		return nil, err
	}
	q := make([]complex128, n+1)
	for j := range q {
		q[j] = complex(y[j], y[j+n+1])
	}

	return q, nil
}

// reducedPencil solves the generalised problem (K_2 − 2aK_1 + a²K_0) y = λ K_0 y
// through W = V·D^{-1/2} from K_0 = V·D·Vᵀ. Values are ascending; when
// vectors is set, y is the eigenvector of the smallest value mapped back by W.
func reducedPencil(n int, omega, shift float64, vectors bool) ([]float64, []float64, error) {
	k0 := embedHermitian(n, omega, func(z complex128) complex128 { return z })
	var e0 mat.EigenSym
	if !e0.Factorize(k0, true) {
		return nil, nil, errIndefinite
	}
	d := e0.Values(nil)
	var w mat.Dense
	e0.VectorsTo(&w)
	for c, v := range d {
		if !(v > 0) {
			return nil, nil, errIndefinite
		}
		inv := 1 / math.Sqrt(v)
		for r := 0; r < len(d); r++ {
			w.Set(r, c, w.At(r, c)*inv)
		}
	}

	a := embedHermitian(n, omega, func(z complex128) complex128 {
		z2 := z * z
		return 2*z2*z - complex(2*shift, 0)*z2 + complex(shift*shift, 0)*z
	})
	var aw, wtaw mat.Dense
	aw.Mul(a, &w)
	wtaw.Mul(w.T(), &aw)
	dim := len(d)
	red := mat.NewSymDense(dim, nil)
	for i := 0; i < dim; i++ {
		for j := i; j < dim; j++ {
			red.SetSym(i, j, (wtaw.At(i, j)+wtaw.At(j, i))/2)
		}
	}

	var e mat.EigenSym
	if !e.Factorize(red, vectors) {
		return nil, nil, errIndefinite
	}
	vals := e.Values(nil)
	if !vectors {
		return vals, nil, nil
	}
	var z mat.Dense
	e.VectorsTo(&z)
	var y mat.VecDense
	y.MulVec(&w, z.ColView(0))

	return vals, mat.Col(nil, 0, &y), nil
}

// embedHermitian returns the real symmetric form [[Re, −Im], [Im, Re]] of the
// (n+1)×(n+1) Hermitian matrix with entries f(1/(1 − iΔΩ)).
func embedHermitian(n int, omega float64, f func(z complex128) complex128) *mat.SymDense {
	n1 := n + 1
	m := mat.NewSymDense(2*n1, nil)
	for j := 0; j < n1; j++ {
		for l := j; l < n1; l++ {
			v := f(1 / complex(1, -float64(l-j)*omega))
			re, im := real(v), imag(v)
			m.SetSym(j, l, re)
			m.SetSym(j+n1, l+n1, re)
			m.SetSym(j, l+n1, -im)
			m.SetSym(l, j+n1, im)
		}
	}

	return m
}
