package lsp

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-lsp/dsp/core"
)

// LpcToLsp converts LPC coefficients to LSP frequencies.
//
// a holds order+1 coefficients with a[0] == 1; the order is taken from
// len(a)-1 and must be even. The order LSP frequencies are written to
// freq in radians, strictly increasing over (0, pi) when the search
// succeeds. nb is the number of extra bisection refinements per root and
// delta the cosine-domain grid spacing ([DefaultSubdivisions] and
// [DefaultGridStep] match common codec settings).
//
// The returned count is the number of roots actually bracketed. A count
// below the order means delta was too coarse to separate a close root
// pair; entries of freq past the failure point are meaningless. This is
// a soft signal, not an error: the caller chooses the fallback policy.
func LpcToLsp(a, freq []float64, nb int, delta float64) (int, error) {
	order := len(a) - 1
	if err := checkOrder(order); err != nil {
		return 0, err
	}

	if len(freq) < order {
		return 0, fmt.Errorf("lsp: frequency buffer too short: %d < %d", len(freq), order)
	}

	if delta <= 0 {
		return 0, fmt.Errorf("lsp: grid step must be > 0: %v", delta)
	}

	if nb < 0 {
		return 0, fmt.Errorf("lsp: subdivision count must be >= 0: %d", nb)
	}

	m := order / 2

	// Derive P'(z) = P(z)/(1+z^-1) and Q'(z) = Q(z)/(1-z^-1) from the
	// symmetric/antisymmetric split of A(z). All coefficients except the
	// last are doubled.
	var pBuf, qBuf [MaxOrder/2 + 1]float64

	p := pBuf[:m+1]
	q := qBuf[:m+1]
	p[0] = 1
	q[0] = 1

	for i := 1; i <= m; i++ {
		p[i] = a[i] + a[order+1-i] - p[i-1]
		q[i] = a[i] - a[order+1-i] + q[i-1]
	}

	for i := 0; i < m; i++ {
		p[i] *= 2
		q[i] *= 2
	}

	// Sweep downward from x = 1, alternating between P' and Q' since
	// their roots interlace. Each found root becomes the left boundary
	// for the next slot.
	roots := 0
	xl := 1.0
	xr := 0.0

	for j := 0; j < order; j++ {
		pt := p
		if j%2 == 1 {
			pt = q
		}

		psuml := chebEval(pt, xl, m)

		found := false
		for !found && xr >= -1.0 {
			xr = xl - delta
			psumr := chebEval(pt, xr, m)

			if psumr*psuml < 0 || psumr == 0 {
				roots++

				// Bracket found: bisect nb+1 times, keeping whichever
				// half still straddles the sign change.
				xm := 0.0
				for k := 0; k <= nb; k++ {
					xm = (xl + xr) / 2

					psumm := chebEval(pt, xm, m)
					if psumm*psuml > 0 {
						psuml = psumm
						xl = xm
					} else {
						xr = xm
					}
				}

				freq[j] = xm
				xl = xm
				found = true
			} else {
				psuml = psumr
				xl = xr
			}
		}
	}

	// Convert from the cosine domain to radians. Bisection midpoints can
	// land a hair outside [-1, 1]; clamp so acos never yields NaN.
	for i := 0; i < order; i++ {
		freq[i] = math.Acos(core.Clamp(freq[i], -1, 1))
	}

	return roots, nil
}
