package lpc

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// ErrShortSignal is returned when a frame is too short for the
// requested analysis order.
var ErrShortSignal = errors.New("lpc: signal too short for requested order")

// ErrZeroEnergy is returned when the input has no energy, which leaves
// the Levinson-Durbin recursion undefined.
var ErrZeroEnergy = errors.New("lpc: zero-energy signal")

// Result holds the outcome of a linear-prediction analysis.
type Result struct {
	// Coefficients is the filter denominator a[0..order] with a[0] == 1.
	Coefficients []float64

	// Reflection holds the order reflection (PARCOR) coefficients
	// produced by the recursion. All magnitudes are below 1 for a
	// stable model.
	Reflection []float64

	// Gain is the square root of the final prediction error energy.
	Gain float64

	// ResidualEnergy is the final prediction error energy.
	ResidualEnergy float64

	// Order is the analysis order used.
	Order int
}

// Autocorrelate computes the first lags autocorrelation values of
// signal, r[k] = sum signal[n]*signal[n-k]. Frames are short in speech
// analysis, so the lagged products are computed directly rather than
// through an FFT.
func Autocorrelate(signal []float64, lags int) ([]float64, error) {
	if lags <= 0 {
		return nil, fmt.Errorf("lpc: lag count must be > 0: %d", lags)
	}

	if len(signal) < lags {
		return nil, fmt.Errorf("%w: %d samples for %d lags", ErrShortSignal, len(signal), lags)
	}

	r := make([]float64, lags)
	for k := 0; k < lags; k++ {
		sum := 0.0
		for n := k; n < len(signal); n++ {
			sum += signal[n] * signal[n-k]
		}

		r[k] = sum
	}

	return r, nil
}

// AutocorrelateNormalized computes autocorrelation values scaled so the
// zero-lag value is 1.
func AutocorrelateNormalized(signal []float64, lags int) ([]float64, error) {
	r, err := Autocorrelate(signal, lags)
	if err != nil {
		return nil, err
	}

	if r[0] == 0 {
		return nil, ErrZeroEnergy
	}

	vecmath.ScaleBlock(r, r, 1/r[0])

	return r, nil
}

// Analyze fits an all-pole model of the given order to signal using the
// Levinson-Durbin recursion on the frame's autocorrelation.
func Analyze(signal []float64, order int) (*Result, error) {
	if order <= 0 {
		return nil, fmt.Errorf("lpc: order must be > 0: %d", order)
	}

	if len(signal) < 2*order {
		return nil, fmt.Errorf("%w: %d samples for order %d", ErrShortSignal, len(signal), order)
	}

	r, err := Autocorrelate(signal, order+1)
	if err != nil {
		return nil, err
	}

	if r[0] == 0 {
		return nil, ErrZeroEnergy
	}

	a := make([]float64, order+1)
	k := make([]float64, order)
	a[0] = 1
	e := r[0]

	for i := 1; i <= order; i++ {
		if e == 0 {
			return nil, fmt.Errorf("%w: prediction error vanished at stage %d", ErrZeroEnergy, i)
		}

		acc := r[i]
		for j := 1; j < i; j++ {
			acc += a[j] * r[i-j]
		}

		ki := -acc / e
		k[i-1] = ki
		a[i] = ki

		// Update coefficients in symmetric pairs so every term uses the
		// previous stage's values.
		for lo, hi := 1, i-1; lo <= hi; lo, hi = lo+1, hi-1 {
			alo := a[lo] + ki*a[hi]
			ahi := a[hi] + ki*a[lo]
			a[lo] = alo

			if hi != lo {
				a[hi] = ahi
			}
		}

		e *= 1 - ki*ki
	}

	return &Result{
		Coefficients:   a,
		Reflection:     k,
		Gain:           math.Sqrt(e),
		ResidualEnergy: e,
		Order:          order,
	}, nil
}

// Stable reports whether the all-pole filter 1/A(z) described by
// a[0..order] (a[0] == 1) is stable. It runs the inverse Levinson
// step-down and checks that every recovered reflection coefficient has
// magnitude below 1.
func Stable(a []float64) bool {
	order := len(a) - 1
	if order < 1 {
		return true
	}

	b := append([]float64(nil), a[1:]...)

	for i := order; i >= 1; i-- {
		ki := b[i-1]
		if math.Abs(ki) >= 1 {
			return false
		}

		denom := 1 - ki*ki

		next := make([]float64, i-1)
		for j := 0; j < i-1; j++ {
			next[j] = (b[j] - ki*b[i-2-j]) / denom
		}

		b = next
	}

	return true
}
