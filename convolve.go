package algodft

import (
	"github.com/cwbudde/algo-dft/internal/fft"
	imath "github.com/cwbudde/algo-dft/internal/math"
)

// Convolve computes the circular convolution of x and y into dst:
//
//	dst[k] = Σ_i x[i]·y[(k−i) mod n]
//
// dst, x, and y must share one common length n; any n is supported. x and y
// are never mutated, and dst may alias either input. On a non-nil error the
// contents of dst are unspecified and must not be relied upon.
func Convolve[T Complex](dst, x, y []T) error {
	switch {
	case dst == nil || x == nil || y == nil:
		return ErrNilSlice
	case len(x) != len(y) || len(dst) != len(x):
		return ErrLengthMismatch
	}

	n := len(x)
	if n == 0 {
		return nil
	}

	if imath.IsPowerOf2(n) {
		return fft.ConvolvePow2(dst, x, y)
	}

	// Arbitrary lengths run through the dispatching transform, which routes
	// each of the three transforms below to Bluestein.
	xv := make([]T, n)
	copy(xv, x)
	yv := make([]T, n)
	copy(yv, y)

	if err := Transform(xv, Forward); err != nil {
		return err
	}

	if err := Transform(yv, Forward); err != nil {
		return err
	}

	for i := range xv {
		xv[i] *= yv[i]
	}

	if err := Transform(xv, Inverse); err != nil {
		return err
	}

	copy(dst, xv)
	fft.ScaleInPlace(dst, 1/float64(n))

	return nil
}
