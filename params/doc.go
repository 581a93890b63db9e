// Package params holds the CME parameter table: the externally supplied
// list of Concentrated Matrix-Exponential parameter sets from which the
// inversion coefficients are derived.
//
// What is a parameter set?
//
//	Each record {n, a, b, c, omega, mu1, cv2} describes a kernel density
//	h(x) = e^{-x}(c + Σ a_k cos(kωx) + b_k sin(kωx)) concentrated around its
//	mean mu1. The narrower the kernel (the lower cv2), the more accurate an
//	inverse Laplace transform computed with it; a set of order n costs n+1
//	evaluations of the Laplace-domain function.
//
// Key features:
//   - JSON ingestion in the published table layout (Parse, Load, LoadFile)
//     and encoding back (Encode).
//   - Record validation (Validate, ValidateAll) with sentinel errors.
//   - Closed-form kernel moments (Moments) and an integrity check of the
//     declared mu1/cv2 (CheckMoments).
//   - Generators for the minimum-cv2 family (Optimal, Family) and the
//     closed-form sine-power family (SinePower), driven over an order
//     layout by Generate.
//   - A bundled default table of 150 sets up to order 1000, decoded once
//     on first use (Default).
//
// Usage:
//
//	ps, err := params.LoadFile("iltcme.json") // or params.Default()
//	if err != nil {
//	  // handle ErrDecode / ErrLengthMismatch / ErrNonFinite / ...
//	}
//	fmt.Println(len(ps), params.MaxOrder(ps))
//
// Records are treated as immutable once loaded; Default always hands out a
// fresh deep copy.
package params
