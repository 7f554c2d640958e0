package continuous_test

import (
	"fmt"

	"github.com/katalvlaran/scalekit/continuous"
)

// ExampleScale maps data values onto a 100-pixel axis with clamping and
// pixel rounding compiled into the chain.
func ExampleScale() {
	opts := continuous.DefaultOptions()
	opts.Domain = []float64{0, 10}
	opts.Range = []float64{0, 100}
	opts.Clamp = true
	opts.Round = true

	s, err := continuous.New(opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(s.Map(5.7))
	fmt.Println(s.Map(15)) // clamped to the domain edge
	fmt.Println(s.Ticks())
	// Output:
	// 57
	// 100
	// [0 2 4 6 8 10]
}

// ExampleScale_Update reconfigures a scale in place; the mapping chain is
// recompiled once, then every Map call reuses it.
func ExampleScale_Update() {
	s := continuous.NewDefault()

	err := s.Update(func(o *continuous.Options) {
		o.Domain = []float64{0, 10}
		o.Range = []float64{0, 100}
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(s.Map(2.5))

	y := s.Map(5)
	x, err := s.Invert(y)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(x)
	// Output:
	// 25
	// 5
}
