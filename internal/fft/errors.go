package fft

import "errors"

// Sentinel errors reported by the engine. The root package re-exports them.
var (
	// ErrInvalidLength is returned when the radix-2 engine is given a length
	// that is not a power of two.
	ErrInvalidLength = errors.New("algodft: invalid transform length")

	// ErrLengthOverflow is returned when a derived length or byte-size
	// computation exceeds the platform's representable range.
	ErrLengthOverflow = errors.New("algodft: length overflow")
)
