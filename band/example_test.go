package band_test

import (
	"fmt"

	"github.com/katalvlaran/scalekit/band"
)

// ExampleSolve lays out three bars across a 120-pixel axis.
func ExampleSolve() {
	opts := band.DefaultOptions()
	opts.Count = 3
	opts.Range = [2]float64{0, 120}

	g, err := band.Solve(opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(g.Step, g.Width)
	fmt.Println(g.Range)
	// Output:
	// 40 40
	// [0 40 80]
}

// months is a tiny in-place Discrete implementation; real callers would
// decorate an ordinal scale.
type months []string

func (m months) Index(key string) (int, bool) {
	for i, k := range m {
		if k == key {
			return i, true
		}
	}

	return 0, false
}

func (m months) Len() int { return len(m) }

// ExampleBand positions categorical bars with inner padding between them.
func ExampleBand() {
	opts := band.DefaultOptions()
	opts.Range = [2]float64{0, 100}
	opts.PaddingInner = 0.2
	opts.Align = 0

	b, err := band.New(months{"Jan", "Feb", "Mar", "Apr"}, opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	x, _ := b.Map("Feb")
	fmt.Printf("Feb starts at %.2f, bars are %.2f wide\n", x, b.Bandwidth())
	// Output:
	// Feb starts at 26.32, bars are 21.05 wide
}
