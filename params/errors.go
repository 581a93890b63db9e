// SPDX-License-Identifier: MIT
// Package: iltcme/params
//
// errors.go: sentinel errors for the parameter table.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Context (record index, field name) is attached with %w at the call site.
//   • Loaders and validators never panic on malformed input.

package params

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTable is returned when a parameter table holds no records.
	// Coefficient derivation has no fallback entry in that case.
	ErrEmptyTable = errors.New("params: parameter table is empty")

	// ErrLengthMismatch indicates len(A) or len(B) differs from N.
	ErrLengthMismatch = errors.New("params: coefficient length does not match order")

	// ErrNonFinite indicates a NaN or ±Inf value in a record.
	ErrNonFinite = errors.New("params: NaN or Inf encountered")

	// ErrBadScale indicates Mu1 <= 0. Every derived coefficient is scaled by Mu1.
	ErrBadScale = errors.New("params: mu1 must be positive")

	// ErrBadOrder indicates a negative order, or an order the family generator
	// cannot produce.
	ErrBadOrder = errors.New("params: invalid order")

	// ErrMoments indicates the declared Mu1/Cv2 disagree with the moments
	// computed from the coefficients.
	ErrMoments = errors.New("params: declared moments do not match coefficients")

	// ErrDecode wraps JSON decoding failures of a parameter table.
	ErrDecode = errors.New("params: cannot decode parameter table")
)

// recordErrorf attaches the record index to a sentinel.
// Output form: "<op>: record <i>: <detail>: <sentinel>".
func recordErrorf(op string, index int, detail string, err error) error {
	return fmt.Errorf("%s: record %d: %s: %w", op, index, detail, err)
}
