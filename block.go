package fastlog

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"
)

// ErrLengthMismatch is returned when dst and src have different lengths.
var ErrLengthMismatch = errors.New("fastlog: slice length mismatch")

// Log2Block writes the approximate base-2 logarithm of each src element
// into dst. Scalar semantics apply elementwise, including the special-value
// handling of [Order.Log2]. dst and src may be the same slice.
func (o Order) Log2Block(dst, src []float64) error {
	if len(dst) != len(src) {
		return ErrLengthMismatch
	}

	c := o.coeffs()
	for i, x := range src {
		dst[i] = c.log2(x)
	}

	return nil
}

// LnBlock writes the approximate natural logarithm of each src element
// into dst.
func (o Order) LnBlock(dst, src []float64) error {
	if err := o.Log2Block(dst, src); err != nil {
		return err
	}
	vecmath.ScaleBlockInPlace(dst, Ln2)

	return nil
}

// Log10Block writes the approximate base-10 logarithm of each src element
// into dst.
func (o Order) Log10Block(dst, src []float64) error {
	if err := o.Log2Block(dst, src); err != nil {
		return err
	}
	vecmath.ScaleBlockInPlace(dst, Log10Of2)

	return nil
}
