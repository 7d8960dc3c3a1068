package algodft

import (
	"errors"

	"github.com/cwbudde/algo-dft/internal/fft"
)

// Sentinel errors returned by transform and convolution operations.
var (
	// ErrInvalidLength is returned when the radix-2 engine is invoked with a
	// length that is not a power of two. The dispatching Transform entry
	// point supports every length and never returns it.
	ErrInvalidLength = fft.ErrInvalidLength

	// ErrLengthOverflow is returned when a derived buffer length, such as
	// Bluestein's padded convolution size, cannot be represented on the
	// platform. The input sequence is left unmodified in that case.
	ErrLengthOverflow = fft.ErrLengthOverflow

	// ErrNilSlice is returned when a nil slice is passed to Convolve.
	ErrNilSlice = errors.New("algodft: nil slice")

	// ErrLengthMismatch is returned when Convolve's input and output slices
	// do not share one common length.
	ErrLengthMismatch = errors.New("algodft: slice length mismatch")
)
