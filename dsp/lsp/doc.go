// Package lsp converts between Linear Prediction Coefficients (LPC) and
// Line Spectrum Pair (LSP) frequencies.
//
// LSPs describe an all-pole filter A(z) through the root angles of two
// polynomials P(z) and Q(z) derived from it via
//
//	A(z) = 0.5*[P(z)(z+z^-1) + Q(z)(z-z^-1)]
//
// Both polynomials have all of their roots on the unit circle and the
// roots interlace, which makes LSPs well suited for quantization: small
// coefficient errors move individual spectral lines instead of
// destabilizing the whole filter.
//
// [LpcToLsp] locates the roots with a decreasing grid scan over the
// cosine domain followed by bisection refinement, and reports how many
// roots it found. A count below the filter order means the grid was too
// coarse for a closely spaced root pair; the caller decides whether to
// reuse the previous frame or rescan. [LspToLpc] reconstructs the
// coefficients by clocking an impulse through a cascade of second-order
// sections built from the LSP angles.
//
// The package also carries the two LSP vector hygiene helpers codecs
// apply between quantization and synthesis: [CheckOrder] and
// [BandwidthExpand].
package lsp
