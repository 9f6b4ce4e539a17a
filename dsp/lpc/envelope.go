package lpc

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// powerFloor guards the division at near-nulls of A(z); a stable model
// has no exact zeros on the unit circle but quantized coefficients can
// get close.
const powerFloor = 1e-20

// SpectralEnvelope evaluates the all-pole model's power response
// gain^2/|A(e^jw)|^2 on nfft/2+1 uniformly spaced bins from DC to
// Nyquist. a holds the denominator coefficients with a[0] == 1 and
// nfft must be a power of two no smaller than len(a).
func SpectralEnvelope(a []float64, gain float64, nfft int) ([]float64, error) {
	if len(a) == 0 {
		return nil, fmt.Errorf("lpc: empty coefficient vector")
	}

	if nfft < len(a) || nfft&(nfft-1) != 0 {
		return nil, fmt.Errorf("lpc: nfft must be a power of two >= %d: %d", len(a), nfft)
	}

	plan, err := algofft.NewPlan64(nfft)
	if err != nil {
		return nil, fmt.Errorf("lpc: fft plan: %w", err)
	}

	in := make([]complex128, nfft)
	for i, c := range a {
		in[i] = complex(c, 0)
	}

	out := make([]complex128, nfft)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("lpc: forward fft: %w", err)
	}

	half := nfft/2 + 1
	re := make([]float64, half)
	im := make([]float64, half)

	for i := 0; i < half; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	power := make([]float64, half)
	vecmath.Power(power, re, im)

	env := make([]float64, half)
	g2 := gain * gain

	for i, p := range power {
		if p < powerFloor {
			p = powerFloor
		}

		env[i] = g2 / p
	}

	return env, nil
}
