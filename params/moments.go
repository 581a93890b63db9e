// SPDX-License-Identifier: MIT
// Package: iltcme/params
//
// moments.go: closed-form moments of the CME kernel density.
//
// For one harmonic k the building block is
//
//	∫₀^∞ x^m e^{-x} e^{-ikΩx} dx = m! / (1 + ikΩ)^{m+1},
//
// and a·cos(kΩx) + b·sin(kΩx) = Re((a + ib)·e^{-ikΩx}), so every raw moment
// is a finite sum of real parts. No quadrature is involved.

package params

import (
	"fmt"
	"math"
)

// DefaultMomentTolerance is the relative tolerance used by CheckMoments.
const DefaultMomentTolerance = 1e-6

// Moments returns the total mass, the mean and the squared coefficient of
// variation of the kernel density described by p.
// For a well-formed record mass ≈ 1, mean ≈ Mu1 and cv2 ≈ Cv2.
// Complexity: O(N).
func Moments(p Param) (mass, mean, cv2 float64) {
	var m0, m1, m2 float64
	m0, m1, m2 = p.C, p.C, 2*p.C
	for k := 0; k < p.N; k++ {
		w := complex(p.A[k], p.B[k])
		d := complex(1, float64(k+1)*p.Omega)
		d2 := d * d
		m0 += real(w / d)
		m1 += real(w / d2)
		m2 += 2 * real(w/(d2*d))
	}
	mean = m1 / m0
	variance := m2/m0 - mean*mean

	return m0, mean, variance / (mean * mean)
}

// Kernel evaluates the density h(x) = e^{-x}(C + Σ A_k cos(kΩx) + B_k sin(kΩx)).
func Kernel(p Param, x float64) float64 {
	v := p.C
	for k := 0; k < p.N; k++ {
		s, c := math.Sincos(float64(k+1) * p.Omega * x)
		v += p.A[k]*c + p.B[k]*s
	}

	return math.Exp(-x) * v
}

// CheckMoments compares the declared Mu1 and Cv2 of p with Moments(p), and
// the mass with 1, all relative to tol (DefaultMomentTolerance when tol <= 0).
// A mismatch wraps ErrMoments. The record must already satisfy Validate.
func CheckMoments(p Param, tol float64) error {
	if tol <= 0 {
		tol = DefaultMomentTolerance
	}
	mass, mean, cv2 := Moments(p)
	switch {
	case !closeRel(mass, 1, tol):
		return fmt.Errorf("CheckMoments: n=%d: mass %.12g: %w", p.N, mass, ErrMoments)
	case !closeRel(mean, p.Mu1, tol):
		return fmt.Errorf("CheckMoments: n=%d: mean %.12g, declared mu1 %.12g: %w", p.N, mean, p.Mu1, ErrMoments)
	case !closeRel(cv2, p.Cv2, tol):
		return fmt.Errorf("CheckMoments: n=%d: cv2 %.12g, declared %.12g: %w", p.N, cv2, p.Cv2, ErrMoments)
	}

	return nil
}

// closeRel reports |got-want| <= tol·max(1,|want|).
func closeRel(got, want, tol float64) bool {
	return math.Abs(got-want) <= tol*math.Max(1, math.Abs(want))
}
