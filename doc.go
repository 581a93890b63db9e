// Package iltcme is a numerical inverse Laplace transform library built on
// the Concentrated Matrix-Exponential (CME) method.
//
// 🚀 What is iltcme?
//
//	Given a function F(s) that evaluates a Laplace transform at complex
//	points, iltcme estimates the time-domain value f(t) with a handful of
//	evaluations of F. The organization mirrors the steps of the method:
//		• Parameter table: CME parameter sets, validated and loaded from JSON
//		• Coefficient derivation: one weights/abscissas row per precision level
//		• Inversion: the weighted real sum over N+1 evaluations of F
//
// ✨ Why choose iltcme?
//
//   - Black-box F – no symbolic manipulation, any Go function will do
//   - Precision on demand – pick a level, pay at most level evaluations
//   - Immutable tables – safe for concurrent use without locks
//   - Stable behaviour on step functions – no Gibbs overshoot
//
// Under the hood, everything is organized under three subpackages:
//
//	params/     - CME parameter sets: JSON codec, validation, moments, generator
//	cme/        - lookup-table derivation and the inversion kernel
//	transforms/ - closed-form Laplace pairs used as references
//
// Quick example:
//
//	// F(s) = 1/(1+s) is the transform of e^{-t}.
//	v, err := iltcme.LaplaceInversion(func(s complex128) complex128 {
//		return 1 / (1 + s)
//	}, 1.0, 30)
//
// Command-line tools live in cmd/iltcme (invert a reference transform) and
// cmd/cmegen (regenerate the parameter table).
//
//	go get github.com/katalvlaran/iltcme
package iltcme
