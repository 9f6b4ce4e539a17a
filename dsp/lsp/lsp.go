package lsp

import (
	"errors"
	"fmt"
)

const (
	// MaxOrder is the largest supported filter order. Speech codecs use
	// orders between 10 and 16; the cap keeps all scratch buffers on the
	// stack.
	MaxOrder = 32

	// DefaultSubdivisions is the bisection refinement count commonly used
	// by speech codecs.
	DefaultSubdivisions = 4

	// DefaultGridStep is the cosine-domain scan spacing commonly used by
	// speech codecs.
	DefaultGridStep = 0.02
)

// ErrOrder is returned when a coefficient or frequency vector implies a
// filter order that is odd, too small, or above [MaxOrder].
var ErrOrder = errors.New("lsp: unsupported filter order")

func checkOrder(order int) error {
	if order < 2 || order > MaxOrder || order%2 != 0 {
		return fmt.Errorf("%w: %d", ErrOrder, order)
	}

	return nil
}
