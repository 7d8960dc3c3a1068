package fft

import (
	imath "github.com/cwbudde/algo-dft/internal/math"
)

// ConvolvePow2 computes the circular convolution of x and y into dst:
// dst[k] = Σ_i x[i]·y[(k−i) mod n]. All three slices must share one
// power-of-two length.
//
// The inputs are copied into owned scratch buffers and never mutated. The
// primitive calls the radix-2 engine directly rather than going through
// arbitrary-length dispatch; Bluestein depends on that to never re-enter
// itself. On failure dst's contents are unspecified.
func ConvolvePow2[T Complex](dst, x, y []T) error {
	n := len(x)
	if !imath.IsPowerOf2(n) {
		return ErrInvalidLength
	}

	xv := make([]T, n)
	copy(xv, x)
	yv := make([]T, n)
	copy(yv, y)

	if err := TransformRadix2(xv, false); err != nil {
		return err
	}

	if err := TransformRadix2(yv, false); err != nil {
		return err
	}

	for i := range xv {
		xv[i] *= yv[i]
	}

	if err := TransformRadix2(xv, true); err != nil {
		return err
	}

	// The radix-2 engine omits inverse scaling; undo it here.
	copy(dst, xv)
	ScaleInPlace(dst, 1/float64(n))

	return nil
}
