// Package cme computes numerical inverse Laplace transforms with the
// Concentrated Matrix-Exponential (CME) method.
//
// 🚀 What is CME inversion?
//
//	Given only the ability to evaluate a Laplace transform F(s) at complex
//	points, the CME method estimates the time-domain value f(t) as a short
//	weighted sum
//
//	  f(t) ≈ (1/t) · Σ_k Re[ η_k · F(β_k / t) ],
//
//	where the weights η_k and abscissas β_k come from a parameter set whose
//	kernel density is sharply concentrated around 1. It is used for:
//	  • queueing and reliability models given in transform form
//	  • first-passage and ruin-time distributions
//	  • transient responses of linear systems
//	  • any quantity whose Laplace transform is cheaper than the original
//
// ✨ Key features:
//   - precision levels: level k uses the steepest parameter set of order
//     below k, so F is called exactly Row.Evaluations() = order+1 times
//   - coefficient derivation picks the steepest (lowest cv2) parameter set
//     usable at every level, with a guaranteed fallback
//   - immutable lookup tables, safe for concurrent use without locking
//   - a process-wide default table built lazily at most once
//   - errors: sentinel values matched with errors.Is; evaluator errors pass
//     through untouched
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/iltcme/cme"
//
//	// F(s) = 1/(1+s²) is the transform of sin(t).
//	F := cme.Func(func(s complex128) complex128 { return 1 / (1 + s*s) })
//	v, err := cme.Invert(F, 1.0, 30) // ≈ sin(1)
//
//	// custom parameter table and level count
//	tb, err := cme.Derive(ps, cme.WithMaxLevel(500))
//	v, err = tb.Invert(F, 2.5, 120)
//
// Performance:
//
//   - Derive: O(levels·len(params) + Σ N), once.
//   - Invert: O(N) arithmetic + N+1 evaluations of F, no allocation.
package cme
