// SPDX-License-Identifier: MIT
// Package cme: sentinel error set.
// Algorithms return these sentinels (optionally wrapped with %w and operation
// context) and tests match them with errors.Is. Errors produced by the
// caller's evaluator are returned verbatim, never wrapped.

package cme

import (
	"errors"
	"fmt"
)

var (
	// ErrLevelOutOfRange indicates a precision level outside [0, MaxLevel).
	// The level is never clamped.
	ErrLevelOutOfRange = errors.New("cme: precision level out of range")

	// ErrZeroTime indicates t == 0; the inversion divides by t.
	ErrZeroTime = errors.New("cme: time must be non-zero (division by t)")

	// ErrBadTime indicates a NaN or ±Inf time value.
	ErrBadTime = errors.New("cme: time must be finite")

	// ErrNilEvaluator indicates a nil Laplace-domain evaluator.
	ErrNilEvaluator = errors.New("cme: evaluator is nil")

	// ErrEmptyParams indicates an empty parameter table at derivation time;
	// no fallback parameter set exists.
	ErrEmptyParams = errors.New("cme: parameter table is empty")

	// ErrNilTable indicates a method call on a nil *Table.
	ErrNilTable = errors.New("cme: table is nil")
)

// cmeErrorf prefixes a sentinel with the operation and a formatted detail.
// Output form: "<op>: <detail>: <sentinel message>".
func cmeErrorf(op string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), err)
}
