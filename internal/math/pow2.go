package math

import "math"

// IsPowerOf2 reports whether n is a positive power of two.
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextConvolutionLength returns the smallest power of two m with m >= 2n+1,
// the padded length Bluestein's algorithm convolves at. It reports false when
// doubling would overflow the platform's int before reaching the bound.
func NextConvolutionLength(n int) (int, bool) {
	m := 1
	for m/2 <= n {
		if m > math.MaxInt/2 {
			return 0, false
		}

		m *= 2
	}

	return m, true
}

// MaxElems returns the largest element count of elemSize-byte elements whose
// total byte size is still representable. Length computations are checked
// against it before any allocation so oversized requests fail cleanly instead
// of wrapping around.
func MaxElems(elemSize int) int {
	return math.MaxInt / elemSize
}
