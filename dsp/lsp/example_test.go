package lsp_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-lsp/dsp/lsp"
)

func ExampleLpcToLsp() {
	// A(z) = 1 has uniformly spaced line spectrum pairs at k*pi/11.
	a := make([]float64, 11)
	a[0] = 1

	freq := make([]float64, 10)
	roots, _ := lsp.LpcToLsp(a, freq, lsp.DefaultSubdivisions, lsp.DefaultGridStep)

	fmt.Printf("roots=%d\n", roots)
	for _, w := range freq {
		fmt.Printf("%.0f ", w*11/math.Pi)
	}
	fmt.Println()
	// Output:
	// roots=10
	// 1 2 3 4 5 6 7 8 9 10
}

func ExampleLspToLpc() {
	freq := make([]float64, 10)
	for i := range freq {
		freq[i] = float64(i+1) * math.Pi / 11
	}

	ak := make([]float64, 11)
	_ = lsp.LspToLpc(freq, ak)

	tail := 0.0
	for _, c := range ak[1:] {
		tail = math.Max(tail, math.Abs(c))
	}

	fmt.Printf("ak0=%.0f flat=%t\n", ak[0], tail < 1e-9)
	// Output:
	// ak0=1 flat=true
}
