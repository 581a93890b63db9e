// SPDX-License-Identifier: MIT

package cme

import (
	"fmt"
	"math"
)

// Invert approximates f(t) from its Laplace transform F using the row for
// level.
//
// Algorithm:
//  1. Validate level (0 ≤ level < MaxLevel), t (finite, non-zero) and f.
//  2. sum = Re(LeadingWeight · F(LeadingAbscissa/t)).
//  3. For each term j: sum += Re((WeightRe_j + i·WeightIm_j) · F((Scale + i·AbscissaIm_j)/t)).
//  4. Return sum / t.
//
// F is called exactly Evaluations(level) times, leading term first, then the
// terms in order. An error from F stops the sum and is returned as is.
//
// Errors:
//   - ErrLevelOutOfRange, ErrZeroTime, ErrBadTime, ErrNilEvaluator, ErrNilTable.
//   - Any error returned by f, unchanged.
//
// Complexity: O(N) plus N+1 calls of F. No allocation.
func (tb *Table) Invert(f Evaluator, t float64, level int) (float64, error) {
	r, err := tb.check("Invert", f, t, level)
	if err != nil {
		return 0, err
	}

	return r.invert(f, t)
}

// InvertStateful is Invert for evaluators that keep per-inversion state.
// f.Begin(Evaluations(level)) is called after validation and before the
// first evaluation; the numerical result is identical to Invert.
func (tb *Table) InvertStateful(f StatefulEvaluator, t float64, level int) (float64, error) {
	r, err := tb.check("InvertStateful", f, t, level)
	if err != nil {
		return 0, err
	}
	f.Begin(r.Evaluations())

	return r.invert(f, t)
}

// InvertMany inverts F at every time in ts with the same level.
// It stops at the first error; results for earlier times are discarded.
func (tb *Table) InvertMany(f Evaluator, ts []float64, level int) ([]float64, error) {
	out := make([]float64, len(ts))
	for i, t := range ts {
		r, err := tb.check(fmt.Sprintf("InvertMany[%d]", i), f, t, level)
		if err != nil {
			return nil, err
		}
		if out[i], err = r.invert(f, t); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Invert runs (*Table).Invert on the default table.
func Invert(f Evaluator, t float64, level int) (float64, error) {
	tb, err := Default()
	if err != nil {
		return 0, err
	}

	return tb.Invert(f, t, level)
}

// check validates the arguments in priority order: table/level, time, evaluator.
func (tb *Table) check(op string, f Evaluator, t float64, level int) (*Row, error) {
	r, err := tb.row(op, level)
	if err != nil {
		return nil, err
	}
	if t == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrZeroTime)
	}
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return nil, cmeErrorf(op, ErrBadTime, "t=%v", t)
	}
	if isNil(f) {
		return nil, fmt.Errorf("%s: %w", op, ErrNilEvaluator)
	}

	return r, nil
}

// invert is the numerical kernel. Abscissas are divided by t component-wise.
func (r *Row) invert(f Evaluator, t float64) (float64, error) {
	v, err := f.Eval(complex(r.LeadingAbscissa/t, 0))
	if err != nil {
		return 0, err
	}
	sum := real(complex(r.LeadingWeight, 0) * v)

	for _, term := range r.Terms {
		v, err = f.Eval(complex(r.Scale/t, term.AbscissaIm/t))
		if err != nil {
			return 0, err
		}
		sum += real(complex(term.WeightRe, term.WeightIm) * v)
	}

	return sum / t, nil
}
