// SPDX-License-Identifier: MIT
// Package: iltcme/params
//
// validate.go: structural checks for parameter records.
//
// Contract:
//   • Validate checks one record; ValidateAll checks a table and reports the
//     first failing record by index.
//   • Checks are pure and deterministic; nothing is allocated on success.
//   • Order of checks: order sign -> lengths -> finiteness -> scale.

package params

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Validate reports whether p satisfies the record invariants:
// N >= 0, len(A) == len(B) == N, every number finite and Mu1 > 0.
// Returned errors wrap ErrBadOrder, ErrLengthMismatch, ErrNonFinite or ErrBadScale.
func Validate(p Param) error {
	return validateRecord("Validate", -1, p)
}

// ValidateAll validates every record of ps in order.
// An empty table yields ErrEmptyTable.
func ValidateAll(ps []Param) error {
	if len(ps) == 0 {
		return ErrEmptyTable
	}
	for i := range ps {
		if err := validateRecord("ValidateAll", i, ps[i]); err != nil {
			return err
		}
	}

	return nil
}

// validateRecord holds the shared checks; index < 0 means "single record".
func validateRecord(op string, index int, p Param) error {
	fail := func(detail string, err error) error {
		if index < 0 {
			return fmt.Errorf("%s: %s: %w", op, detail, err)
		}
		return recordErrorf(op, index, detail, err)
	}

	if p.N < 0 {
		return fail("n", ErrBadOrder)
	}
	if len(p.A) != p.N {
		return fail("a", ErrLengthMismatch)
	}
	if len(p.B) != p.N {
		return fail("b", ErrLengthMismatch)
	}
	if !allFinite(p.A) {
		return fail("a", ErrNonFinite)
	}
	if !allFinite(p.B) {
		return fail("b", ErrNonFinite)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{{"c", p.C}, {"omega", p.Omega}, {"mu1", p.Mu1}, {"cv2", p.Cv2}} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fail(f.name, ErrNonFinite)
		}
	}
	if p.Mu1 <= 0 {
		return fail("mu1", ErrBadScale)
	}

	return nil
}

// allFinite reports whether xs holds no NaN and no ±Inf.
func allFinite(xs []float64) bool {
	if len(xs) == 0 {
		return true
	}
	if floats.HasNaN(xs) {
		return false
	}

	return !math.IsInf(floats.Max(xs), 1) && !math.IsInf(floats.Min(xs), -1)
}
