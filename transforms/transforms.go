package transforms

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"sort"
)

// ErrUnknownTransform indicates Lookup was given an unregistered name.
var ErrUnknownTransform = errors.New("transforms: unknown transform")

// Pair is a Laplace transform pair F(s) ⟷ f(t).
type Pair struct {
	Name    string                        // registry key, lower case
	Formula string                        // human-readable F(s)
	Laplace func(s complex128) complex128 // F(s)
	Time    func(t float64) float64       // f(t)
}

// Exponential: F(s) = 1/(1+s), f(t) = e^{-t}.
var Exponential = Pair{
	Name:    "exponential",
	Formula: "1/(1+s)",
	Laplace: func(s complex128) complex128 { return 1 / (1 + s) },
	Time:    func(t float64) float64 { return math.Exp(-t) },
}

// Sine: F(s) = 1/(1+s²), f(t) = sin(t).
var Sine = Pair{
	Name:    "sine",
	Formula: "1/(1+s^2)",
	Laplace: func(s complex128) complex128 { return 1 / (1 + s*s) },
	Time:    math.Sin,
}

// Heaviside: F(s) = e^{-s}/s, the unit step delayed to t = 1.
var Heaviside = Pair{
	Name:    "heaviside",
	Formula: "exp(-s)/s",
	Laplace: func(s complex128) complex128 { return cmplx.Exp(-s) / s },
	Time: func(t float64) float64 {
		if t > 1 {
			return 1
		}
		return 0
	},
}

// ExpHeaviside: F(s) = e^{-s}/(1+s), f(t) = e^{-(t-1)} for t > 1, else 0.
var ExpHeaviside = Pair{
	Name:    "expheaviside",
	Formula: "exp(-s)/(1+s)",
	Laplace: func(s complex128) complex128 { return cmplx.Exp(-s) / (1 + s) },
	Time: func(t float64) float64 {
		if t > 1 {
			return math.Exp(-(t - 1))
		}
		return 0
	},
}

// SquareWave: F(s) = (1/s)·1/(1+e^{s}), a unit wave of period 2 that is 0 on
// [0,1) and 1 on [1,2).
var SquareWave = Pair{
	Name:    "squarewave",
	Formula: "(1/s)*(1/(1+exp(s)))",
	Laplace: func(s complex128) complex128 { return (1 / s) * (1 / (1 + cmplx.Exp(s))) },
	Time: func(t float64) float64 {
		if int64(math.Floor(t))%2 != 0 {
			return 1
		}
		return 0
	},
}

// Staircase: F(s) = (1/s)·1/(e^{s}-1), f(t) = ⌊t⌋.
var Staircase = Pair{
	Name:    "staircase",
	Formula: "(1/s)*(1/(exp(s)-1))",
	Laplace: func(s complex128) complex128 { return (1 / s) * (1 / (cmplx.Exp(s) - 1)) },
	Time:    math.Floor,
}

var registry = map[string]Pair{
	Exponential.Name:  Exponential,
	Sine.Name:         Sine,
	Heaviside.Name:    Heaviside,
	ExpHeaviside.Name: ExpHeaviside,
	SquareWave.Name:   SquareWave,
	Staircase.Name:    Staircase,
}

// All returns every registered pair sorted by name.
func All() []Pair {
	out := make([]Pair, 0, len(registry))
	for _, p := range registry {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// Names returns the registered names, sorted.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, p := range all {
		names[i] = p.Name
	}

	return names
}

// Lookup returns the pair registered under name.
func Lookup(name string) (Pair, error) {
	p, ok := registry[name]
	if !ok {
		return Pair{}, fmt.Errorf("Lookup %q: %w", name, ErrUnknownTransform)
	}

	return p, nil
}
