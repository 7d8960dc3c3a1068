package fft

import (
	imath "github.com/cwbudde/algo-dft/internal/math"
)

// TransformRadix2 computes the in-place DFT of vec using the decimation-in-
// time radix-2 Cooley-Tukey algorithm. len(vec) must be a power of two;
// ErrInvalidLength is returned otherwise and vec is left unmodified.
//
// Neither direction applies amplitude scaling: a forward transform followed
// by an inverse transform yields the original sequence multiplied by n.
func TransformRadix2[T Complex](vec []T, inverse bool) error {
	n := len(vec)
	if !imath.IsPowerOf2(n) {
		return ErrInvalidLength
	}

	if n == 1 {
		return nil
	}

	twiddle := ComputeTwiddleFactors[T](n, inverse)

	kernels := SelectKernels[T](DetectFeatures())

	kern := kernels.Forward
	if inverse {
		kern = kernels.Inverse
	}

	if kern != nil && kern(vec, twiddle) {
		return nil
	}

	radix2Generic(vec, twiddle)

	return nil
}

// radix2Generic runs the bit-reversal permutation followed by log2(n)
// butterfly stages. twiddle must hold the n/2 direction-signed factors.
func radix2Generic[T Complex](vec, twiddle []T) {
	n := len(vec)
	levels := imath.Log2(n)

	// Bit-reversed addressing permutation, one swap per unique pair.
	for i := range n {
		j := imath.ReverseBits(i, levels)
		if j > i {
			vec[i], vec[j] = vec[j], vec[i]
		}
	}

	// Butterfly stages of block size 2, 4, ..., n.
	for size := 2; ; size *= 2 {
		halfsize := size / 2
		tablestep := n / size

		for i := 0; i < n; i += size {
			k := 0
			for j := i; j < i+halfsize; j++ {
				l := j + halfsize
				t := vec[l] * twiddle[k]
				vec[l] = vec[j] - t
				vec[j] += t
				k += tablestep
			}
		}

		if size == n { // Prevent overflow in 'size *= 2'
			break
		}
	}
}
