// SPDX-License-Identifier: MIT

package params

// Param is one CME parameter set, i.e. one record of the parameter table.
//
// The set describes the kernel density
//
//	h(x) = e^{-x} · (C + Σ_{k=1..N} A[k-1]·cos(kΩx) + B[k-1]·sin(kΩx)),
//
// whose mean is Mu1 and whose squared coefficient of variation is Cv2.
// N is the number of complex term pairs, so an inversion with this set
// evaluates the Laplace-domain function N+1 times.
//
// Invariant: len(A) == len(B) == N. Records are never mutated after loading.
type Param struct {
	N     int       `json:"n"`     // order: number of complex term pairs
	A     []float64 `json:"a"`     // real coefficient components, length N
	B     []float64 `json:"b"`     // imaginary coefficient components, length N
	C     float64   `json:"c"`     // zero-frequency (DC) weight
	Omega float64   `json:"omega"` // base angular frequency
	Mu1   float64   `json:"mu1"`   // scale applied to every derived coefficient
	Cv2   float64   `json:"cv2"`   // steepness; lower is better for its order
}

// Evaluations reports how many evaluations of F an inversion with p costs.
func (p Param) Evaluations() int {
	return p.N + 1
}

// Clone returns a deep copy of p; the coefficient slices are not shared.
func (p Param) Clone() Param {
	q := p
	q.A = append([]float64(nil), p.A...)
	q.B = append([]float64(nil), p.B...)

	return q
}

// CloneAll deep-copies a whole table.
func CloneAll(ps []Param) []Param {
	out := make([]Param, len(ps))
	for i := range ps {
		out[i] = ps[i].Clone()
	}

	return out
}

// MaxOrder returns the largest N in ps, or -1 for an empty table.
func MaxOrder(ps []Param) int {
	maxN := -1
	for i := range ps {
		if ps[i].N > maxN {
			maxN = ps[i].N
		}
	}

	return maxN
}
