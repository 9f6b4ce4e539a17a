package lsp

import "math"

// CheckOrder enforces ascending order on an LSP vector in radians.
// Whenever a pair is out of order the two values are nudged apart by
// 0.1 and the scan restarts from the beginning. It returns the number
// of corrections made; a nonzero count after dequantization usually
// indicates a badly corrupted frame.
func CheckOrder(lsp []float64) int {
	swaps := 0

	for i := 1; i < len(lsp); i++ {
		if lsp[i] < lsp[i-1] {
			swaps++
			lsp[i-1], lsp[i] = lsp[i]-0.1, lsp[i-1]+0.1
			i = 0
		}
	}

	return swaps
}

// BandwidthExpand forces a minimum separation between consecutive LSP
// values, widening resonances that quantization pinched too close
// together. minSepLow applies to the first four LSPs and minSepHigh to
// the rest; both are given in Hz assuming an 8 kHz sampling rate.
func BandwidthExpand(lsp []float64, minSepLow, minSepHigh float64) {
	const factor = math.Pi / 4000

	for i := 1; i < 4 && i < len(lsp); i++ {
		if lsp[i]-lsp[i-1] < minSepLow*factor {
			lsp[i] = lsp[i-1] + minSepLow*factor
		}
	}

	for i := 4; i < len(lsp); i++ {
		if lsp[i]-lsp[i-1] < minSepHigh*factor {
			lsp[i] = lsp[i-1] + minSepHigh*factor
		}
	}
}
