package algodft

import (
	"github.com/cwbudde/algo-dft/internal/fft"
	imath "github.com/cwbudde/algo-dft/internal/math"
)

// Direction selects between the forward and inverse transform.
type Direction int

const (
	// Forward computes the DFT X[k] = Σ_j x[j]·exp(-2πi·jk/n).
	Forward Direction = iota

	// Inverse computes the unnormalized inverse DFT: the twiddle sign is
	// flipped but no 1/n scaling is applied, so Forward followed by Inverse
	// yields the original sequence multiplied by n.
	Inverse
)

// Transform computes the in-place DFT of vec in the given direction. Every
// length is supported: a power of two is routed to the radix-2 Cooley-Tukey
// engine, anything else to Bluestein's chirp-z algorithm. A length of zero
// is a no-op.
//
// vec is only borrowed for the duration of the call; the engine keeps no
// reference to it and caches nothing between calls. On a non-nil error vec
// is left unmodified.
func Transform[T Complex](vec []T, dir Direction) error {
	n := len(vec)
	switch {
	case n == 0:
		return nil
	case imath.IsPowerOf2(n):
		return fft.TransformRadix2(vec, dir == Inverse)
	default:
		return fft.TransformBluestein(vec, dir == Inverse)
	}
}

// TransformRadix2 computes the in-place DFT of vec using the radix-2 engine
// alone. It returns ErrInvalidLength when len(vec) is not a power of two;
// use Transform for arbitrary lengths.
func TransformRadix2[T Complex](vec []T, dir Direction) error {
	return fft.TransformRadix2(vec, dir == Inverse)
}

// TransformBluestein computes the in-place DFT of vec using Bluestein's
// algorithm alone, regardless of length. Transform prefers the radix-2
// engine for powers of two; this entry point exists for callers that want
// to cross-check the two engines against each other.
func TransformBluestein[T Complex](vec []T, dir Direction) error {
	return fft.TransformBluestein(vec, dir == Inverse)
}
