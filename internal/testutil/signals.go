package testutil

import "math/rand"

// DeterministicNoise generates white noise with a fixed seed for
// reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// ARProcess filters noise through the all-pole filter 1/A(z) described
// by a[0..order] (a[0] == 1), producing a signal with the corresponding
// autoregressive statistics.
func ARProcess(noise []float64, a []float64) []float64 {
	out := make([]float64, len(noise))
	for n := range noise {
		acc := noise[n]
		for j := 1; j < len(a) && j <= n; j++ {
			acc -= a[j] * out[n-j]
		}
		out[n] = acc
	}
	return out
}
