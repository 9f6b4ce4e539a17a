package lpc

import (
	"testing"

	"github.com/cwbudde/algo-lsp/dsp/core"
	"github.com/cwbudde/algo-lsp/internal/testutil"
)

func TestSpectralEnvelope_FlatForUnitFilter(t *testing.T) {
	env, err := SpectralEnvelope([]float64{1}, 1, 64)
	if err != nil {
		t.Fatalf("SpectralEnvelope: %v", err)
	}

	if len(env) != 33 {
		t.Fatalf("len(env) = %d, want 33", len(env))
	}

	want := make([]float64, len(env))
	for i := range want {
		want[i] = 1
	}

	testutil.RequireSliceNearlyEqual(t, env, want, 1e-12)
}

func TestSpectralEnvelope_PeakNearResonance(t *testing.T) {
	const nfft = 256

	env, err := SpectralEnvelope(ar2, 1, nfft)
	if err != nil {
		t.Fatalf("SpectralEnvelope: %v", err)
	}

	testutil.RequireFinite(t, env)

	peak := 0
	for i, v := range env {
		if v > env[peak] {
			peak = i
		}
	}

	// Poles sit at angle pi/3, i.e. around bin nfft/6; the |A| minimum
	// shifts slightly below that for radius 0.8.
	if peak < nfft/8 || peak > nfft/4 {
		t.Fatalf("envelope peak at bin %d, want within [%d, %d]", peak, nfft/8, nfft/4)
	}
}

func TestSpectralEnvelope_GainScaling(t *testing.T) {
	base, err := SpectralEnvelope(ar2, 1, 128)
	if err != nil {
		t.Fatalf("SpectralEnvelope: %v", err)
	}

	scaled, err := SpectralEnvelope(ar2, 2, 128)
	if err != nil {
		t.Fatalf("SpectralEnvelope: %v", err)
	}

	for i := range base {
		if got, want := scaled[i], 4*base[i]; !core.NearlyEqual(got, want, 1e-12) {
			t.Fatalf("bin %d: %v != 4 * %v", i, got, base[i])
		}
	}
}

func TestSpectralEnvelope_Validation(t *testing.T) {
	if _, err := SpectralEnvelope(nil, 1, 64); err == nil {
		t.Fatal("expected error for empty coefficients")
	}

	if _, err := SpectralEnvelope(ar2, 1, 100); err == nil {
		t.Fatal("expected error for non power-of-two nfft")
	}

	if _, err := SpectralEnvelope(make([]float64, 40), 1, 32); err == nil {
		t.Fatal("expected error for nfft below coefficient count")
	}
}
