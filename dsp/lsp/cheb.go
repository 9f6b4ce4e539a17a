package lsp

// chebEval evaluates a Chebyshev polynomial series at x using the
// three-term recurrence T[i] = 2x*T[i-1] - T[i-2]. coef holds m+1
// values where m is half the filter order; coef[0] multiplies the
// highest basis term T[m] and coef[m] the constant term.
//
// x is nominally in [-1, 1] but is not clamped: the root scan probes
// slightly outside while stepping its grid.
func chebEval(coef []float64, x float64, m int) float64 {
	var t [MaxOrder/2 + 1]float64

	t[0] = 1
	t[1] = x
	for i := 2; i <= m; i++ {
		t[i] = 2*x*t[i-1] - t[i-2]
	}

	sum := 0.0
	for i := 0; i <= m; i++ {
		sum += coef[m-i] * t[i]
	}

	return sum
}
