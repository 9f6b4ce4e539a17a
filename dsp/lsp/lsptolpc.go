package lsp

import (
	"fmt"
	"math"
)

// section holds the delay taps of one second-order stage of the
// synthesis cascade: two samples of history for the symmetric (P)
// branch and two for the antisymmetric (Q) branch.
type section struct {
	p1, p2 float64
	q1, q2 float64
}

// LspToLpc reconstructs LPC coefficients from LSP frequencies.
//
// lsp holds the order frequencies in radians (ascending); ak receives
// order+1 coefficients with ak[0] == 1. The reconstruction clocks an
// impulse through order/2 cascaded second-order sections, each
// contributing a factor 1 - 2*cos(w)*z^-1 + z^-2 to P(z) or Q(z), for
// order+1 time steps; the impulse response of
// 0.5*[P(z)(z+z^-1) + Q(z)(z-z^-1)] is the coefficient sequence.
//
// The call is pure: all cascade state is created fresh, so identical
// inputs produce bit-identical outputs.
func LspToLpc(lsp, ak []float64) error {
	order := len(lsp)
	if err := checkOrder(order); err != nil {
		return err
	}

	if len(ak) < order+1 {
		return fmt.Errorf("lsp: coefficient buffer too short: %d < %d", len(ak), order+1)
	}

	m := order / 2

	var xf [MaxOrder]float64
	for i, w := range lsp {
		xf[i] = math.Cos(w)
	}

	var st [MaxOrder / 2]section

	// prevP and prevQ carry the previous time step's cascade outputs
	// into the final z+z^-1 / z-z^-1 combination.
	var prevP, prevQ float64

	xin1 := 1.0
	xin2 := 1.0

	for j := 0; j <= order; j++ {
		for i := 0; i < m; i++ {
			s := &st[i]

			xout1 := xin1 - 2*xf[2*i]*s.p1 + s.p2
			xout2 := xin2 - 2*xf[2*i+1]*s.q1 + s.q2

			s.p2 = s.p1
			s.q2 = s.q1
			s.p1 = xin1
			s.q1 = xin2
			xin1 = xout1
			xin2 = xout2
		}

		xout1 := xin1 + prevP
		xout2 := xin2 - prevQ
		ak[j] = (xout1 + xout2) * 0.5

		prevP = xin1
		prevQ = xin2
		xin1 = 0
		xin2 = 0
	}

	return nil
}
