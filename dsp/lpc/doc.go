// Package lpc provides linear-prediction analysis utilities: frame
// autocorrelation, Levinson-Durbin coefficient estimation, a
// reflection-coefficient stability test, and FFT-based evaluation of
// the model's spectral envelope.
//
// [Analyze] produces filter coefficients in the denominator convention
// A(z) = 1 + a1*z^-1 + ... + ap*z^-p, directly consumable by the LSP
// converter in dsp/lsp.
package lpc
