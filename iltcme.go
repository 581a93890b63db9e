// SPDX-License-Identifier: MIT

package iltcme

import "github.com/katalvlaran/iltcme/cme"

// LaplaceInversion approximates f(t) from its Laplace transform fn using the
// default table at precision level. fn is called once per weight of the
// selected row; see (*cme.Table).Evaluations.
//
// Errors are those of cme.Invert: cme.ErrLevelOutOfRange when level is not
// in [0, MaxLevel()), cme.ErrZeroTime, cme.ErrBadTime and cme.ErrNilEvaluator.
func LaplaceInversion(fn func(s complex128) complex128, t float64, level int) (float64, error) {
	return cme.Invert(cme.Func(fn), t, level)
}

// MaxLevel is the number of precision levels of the default table.
func MaxLevel() int {
	return cme.MaxLevel()
}
