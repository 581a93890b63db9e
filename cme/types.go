// SPDX-License-Identifier: MIT

// Package cme: lookup-table types.
// A Row is the derived, ready-to-evaluate form of one parameter set; a Table
// is the precision-indexed sequence of rows.
package cme

import (
	"fmt"

	"github.com/katalvlaran/iltcme/params"
)

// Term is one complex weight/abscissa pair of a Row. The real part of the
// abscissa is the row's Scale and is not stored per term.
type Term struct {
	WeightRe   float64 // Mu1·A[j]
	WeightIm   float64 // Mu1·B[j]
	AbscissaIm float64 // Mu1·(j+1)·Omega
}

// Row holds the inversion coefficients derived from one parameter set.
//
// The weighted sum evaluated for a time t is
//
//	(1/t)·( LeadingWeight·Re F(LeadingAbscissa/t)
//	      + Σ_j Re[(WeightRe_j + i·WeightIm_j)·F((Scale + i·AbscissaIm_j)/t)] ).
//
// Invariants: LeadingAbscissa == Scale; len(Terms) == the parameter order.
type Row struct {
	Scale           float64 // Mu1, real part of every abscissa
	LeadingWeight   float64 // C·Mu1, weight of the zero-frequency term
	LeadingAbscissa float64 // Mu1, purely real abscissa of the zero-frequency term
	Terms           []Term  // one per harmonic 1..N
}

// NewRow converts p into a Row. Products are formed as Mu1·x, left to right,
// so the coefficients are reproducible bit for bit.
// Only the shape of p is checked here: a negative order wraps
// params.ErrBadOrder and coefficient slices shorter than N wrap
// params.ErrLengthMismatch. Value checks belong to params.Validate.
// Complexity: O(N).
func NewRow(p params.Param) (Row, error) {
	switch {
	case p.N < 0:
		return Row{}, fmt.Errorf("NewRow: n=%d: %w", p.N, params.ErrBadOrder)
	case len(p.A) < p.N || len(p.B) < p.N:
		return Row{}, fmt.Errorf("NewRow: n=%d, len(a)=%d, len(b)=%d: %w",
			p.N, len(p.A), len(p.B), params.ErrLengthMismatch)
	}
	r := Row{
		Scale:           p.Mu1,
		LeadingWeight:   p.C * p.Mu1,
		LeadingAbscissa: p.Mu1,
		Terms:           make([]Term, p.N),
	}
	for j := 0; j < p.N; j++ {
		r.Terms[j] = Term{
			WeightRe:   p.Mu1 * p.A[j],
			WeightIm:   p.Mu1 * p.B[j],
			AbscissaIm: p.Mu1 * float64(j+1) * p.Omega,
		}
	}

	return r, nil
}

// Order returns the number of complex terms.
func (r Row) Order() int { return len(r.Terms) }

// Evaluations returns how many times an inversion with r calls F: Order()+1.
func (r Row) Evaluations() int { return len(r.Terms) + 1 }

// Abscissa returns the complex abscissa of term j (0-based), before
// division by t. It panics if j is out of range, like slice indexing.
func (r Row) Abscissa(j int) complex128 {
	return complex(r.Scale, r.Terms[j].AbscissaIm)
}

// Weight returns the complex weight of term j (0-based).
func (r Row) Weight(j int) complex128 {
	return complex(r.Terms[j].WeightRe, r.Terms[j].WeightIm)
}

// clone returns r with its own Terms storage.
func (r Row) clone() Row {
	r.Terms = append([]Term(nil), r.Terms...)
	return r
}
