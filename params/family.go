// SPDX-License-Identifier: MIT
// Package: iltcme/params
//
// family.go: order layouts, table generation and the sine-power CME family.
//
// Member n has the kernel
//
//	h(x) ∝ e^{-x} · sin^{2n}(Ωx/2),
//
// a train of pulses centred near odd multiples of π/Ω, damped by e^{-x}.
// Expanding sin^{2n} binomially gives
//
//	sin^{2n}(θ) = 4^{-n} · (C(2n,n) + 2·Σ_{k=1..n} (-1)^k C(2n,n-k) cos(2kθ)),
//
// so the record has C ∝ C(2n,n)/4^n, A[k-1] ∝ 2(-1)^k C(2n,n-k)/4^n and B = 0.
// The normalising mass and the first two moments are closed-form:
//
//	mass = (2n)!·(Ω/2)^{2n} / Π_k (1 + k²Ω²)
//	mean = 1 + Σ_k 2/(1 + k²Ω²)
//	var  = 1 − Σ_k 2(k²Ω² − 1)/(1 + k²Ω²)²
//
// Ω is the only free parameter; it is chosen to minimise cv2 = var/mean².
// Ω → 0 degenerates to Erlang(2n+1) with cv2 = 1/(2n+1).

package params

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/optimize"
)

const (
	// familyStartOmega seeds the Ω search; optima lie in (0.4, 1] for n ≤ 200.
	familyStartOmega = 0.6

	// familyConvergeTol is the absolute cv2 change treated as converged.
	familyConvergeTol = 1e-16

	// familyConvergeIters is the number of stalled iterations before stopping.
	familyConvergeIters = 40
)

// SinePower builds the sine-power CME record of order n (n >= 1).
// Returned errors wrap ErrBadOrder or the optimiser failure.
// Complexity: O(n) per objective evaluation, a few hundred evaluations.
func SinePower(n int) (Param, error) {
	if n < 1 {
		return Param{}, fmt.Errorf("SinePower: n=%d: %w", n, ErrBadOrder)
	}

	omega, err := minimiseOmega(n)
	if err != nil {
		return Param{}, fmt.Errorf("SinePower: n=%d: %w", n, err)
	}
	mu1, cv2 := sinePowerMoments(n, omega)

	// log of the normalising mass (2n)!·(Ω/2)^{2n}/Π(1+k²Ω²)
	lgFact2n, _ := math.Lgamma(float64(2*n + 1))
	logMass := lgFact2n + float64(2*n)*math.Log(omega/2)
	for k := 1; k <= n; k++ {
		kw := float64(k) * omega
		logMass -= math.Log1p(kw * kw)
	}
	// coef(k) = C(2n, n-k) / 4^n / mass
	coef := func(k int) float64 {
		lgLo, _ := math.Lgamma(float64(n - k + 1))
		lgHi, _ := math.Lgamma(float64(n + k + 1))
		return math.Exp(lgFact2n - lgLo - lgHi - float64(2*n)*math.Ln2 - logMass)
	}

	p := Param{
		N:     n,
		A:     make([]float64, n),
		B:     make([]float64, n),
		C:     coef(0),
		Omega: omega,
		Mu1:   mu1,
		Cv2:   cv2,
	}
	for k := 1; k <= n; k++ {
		sign := 1.0
		if k%2 == 1 {
			sign = -1
		}
		p.A[k-1] = 2 * sign * coef(k)
	}

	return p, nil
}

// Generator builds the CME record of one order.
type Generator func(n int) (Param, error)

// Layout of the bundled table: every order to denseOrders, then coarser steps.
const (
	denseOrders = 100
	midOrders   = 500
	midStep     = 10
	topOrders   = 1000
	topStep     = 50
)

// Orders returns the order layout of the bundled table truncated at maxOrder:
// 1..100, then 110..500 in steps of 10, then 550..1000 in steps of 50.
// Orders above 1000 continue in steps of 50.
func Orders(maxOrder int) []int {
	var out []int
	for n := 1; n <= maxOrder; {
		out = append(out, n)
		switch {
		case n < denseOrders:
			n++
		case n < midOrders:
			n += midStep
		default:
			n += topStep
		}
	}

	return out
}

// Generate runs gen over orders, which must be positive and strictly
// increasing. A record that does not steepen on its predecessor is dropped
// with a warning so the result keeps cv2 strictly decreasing.
func Generate(gen Generator, orders []int) ([]Param, error) {
	if len(orders) == 0 {
		return nil, fmt.Errorf("Generate: no orders: %w", ErrBadOrder)
	}
	ps := make([]Param, 0, len(orders))
	for i, n := range orders {
		if n < 1 || (i > 0 && n <= orders[i-1]) {
			return nil, fmt.Errorf("Generate: order %d at position %d: %w", n, i, ErrBadOrder)
		}
		p, err := gen(n)
		if err != nil {
			return nil, fmt.Errorf("Generate: %w", err)
		}
		if k := len(ps); k > 0 && p.Cv2 >= ps[k-1].Cv2 {
			logrus.Warnf("params: order %d (cv2 %.6g) does not improve on order %d (cv2 %.6g), dropped",
				n, p.Cv2, ps[k-1].N, ps[k-1].Cv2)
			continue
		}
		logrus.Debugf("params: generated order %d, cv2 %.6g", n, p.Cv2)
		ps = append(ps, p)
	}

	return ps, nil
}

// Family regenerates the bundled table up to maxOrder: Optimal over
// Orders(maxOrder).
func Family(maxOrder int) ([]Param, error) {
	if maxOrder < 1 {
		return nil, fmt.Errorf("Family: maxOrder=%d: %w", maxOrder, ErrBadOrder)
	}

	return Generate(Optimal, Orders(maxOrder))
}

// sinePowerMoments returns (mean, cv2) of member n at frequency omega.
func sinePowerMoments(n int, omega float64) (mean, cv2 float64) {
	mean, variance := 1.0, 1.0
	for k := 1; k <= n; k++ {
		kw2 := float64(k) * omega
		kw2 *= kw2
		mean += 2 / (1 + kw2)
		variance -= 2 * (kw2 - 1) / ((1 + kw2) * (1 + kw2))
	}

	return mean, variance / (mean * mean)
}

// minimiseOmega searches log Ω so the iterate stays positive.
func minimiseOmega(n int) (float64, error) {
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			_, cv2 := sinePowerMoments(n, math.Exp(x[0]))
			return cv2
		},
	}
	settings := &optimize.Settings{
		Converger: &optimize.FunctionConverge{
			Absolute:   familyConvergeTol,
			Iterations: familyConvergeIters,
		},
	}
	res, err := optimize.Minimize(problem, []float64{math.Log(familyStartOmega)}, settings, &optimize.NelderMead{})
	if err != nil {
		return 0, err
	}

	return math.Exp(res.X[0]), nil
}
