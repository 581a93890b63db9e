package params_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/iltcme/params"
)

// ExampleLoad decodes a one-record table and reports its cost.
func ExampleLoad() {
	in := `[{"n":1,"a":[-2],"b":[0],"c":2,"omega":1,"mu1":2,"cv2":0.25}]`
	ps, err := params.Load(strings.NewReader(in))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("sets:", len(ps), "evaluations:", ps[0].Evaluations())
	// Output: sets: 1 evaluations: 2
}

// ExampleMoments shows the closed-form moments of the order-1 kernel.
func ExampleMoments() {
	p := params.Param{N: 1, A: []float64{-2}, B: []float64{0}, C: 2, Omega: 1, Mu1: 2, Cv2: 0.25}
	mass, mean, cv2 := params.Moments(p)
	fmt.Printf("mass=%.3f mean=%.3f cv2=%.3f\n", mass, mean, cv2)
	// Output: mass=1.000 mean=2.000 cv2=0.250
}

// ExampleDefault inspects the bundled table.
func ExampleDefault() {
	ps, err := params.Default()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(ps), params.MaxOrder(ps))
	// Output: 150 1000
}
