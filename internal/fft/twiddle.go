package fft

import (
	stdmath "math"
	"math/bits"
)

// ComputeTwiddleFactors returns the n/2 twiddle factors (roots of unity) for
// a size-n radix-2 transform: entry i is exp(±2πi·i/n), with the negative
// sign for the forward direction. The table is built fresh for each call and
// never shared.
func ComputeTwiddleFactors[T Complex](n int, inverse bool) []T {
	half := n / 2
	twiddle := make([]T, half)

	sign := -2.0
	if inverse {
		sign = 2.0
	}

	for i := range half {
		angle := sign * stdmath.Pi * float64(i) / float64(n)
		sin, cos := stdmath.Sincos(angle)
		twiddle[i] = complexFromFloat64[T](cos, sin)
	}

	return twiddle
}

// ComputeChirpTable returns Bluestein's length-n quadratic-phase chirp:
// entry i is exp(jθ) with θ = ±π·(i² mod 2n)/n, positive for the inverse
// direction. Reducing i² modulo 2n keeps the argument bounded for large
// indices without changing the phase; the 128-bit product avoids overflow
// in i² itself.
func ComputeChirpTable[T Complex](n int, inverse bool) []T {
	chirp := make([]T, n)

	for i := range n {
		hi, lo := bits.Mul64(uint64(i), uint64(i))
		rem := bits.Rem64(hi, lo, uint64(n)*2)

		angle := stdmath.Pi * float64(rem) / float64(n)
		if !inverse {
			angle = -angle
		}

		sin, cos := stdmath.Sincos(angle)
		chirp[i] = complexFromFloat64[T](cos, sin)
	}

	return chirp
}
