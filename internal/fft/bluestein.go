package fft

import (
	imath "github.com/cwbudde/algo-dft/internal/math"
)

// TransformBluestein computes the in-place DFT of vec for arbitrary length
// using Bluestein's chirp-z algorithm: the transform is re-expressed as a
// circular convolution at the padded power-of-two length m >= 2n+1 and
// delegated to ConvolvePow2.
//
// Like the radix-2 engine it applies no amplitude scaling in either
// direction. On any failure path vec is left unmodified; all writes back to
// vec happen only after the convolution has succeeded.
func TransformBluestein[T Complex](vec []T, inverse bool) error {
	n := len(vec)
	if n == 0 {
		return nil
	}

	m, ok := imath.NextConvolutionLength(n)
	if !ok || m > imath.MaxElems(elemSize[T]()) {
		return ErrLengthOverflow
	}

	chirp := ComputeChirpTable[T](n, inverse)

	// Chirp-modulated input, zero-padded to m.
	avec := make([]T, m)
	for i := range n {
		avec[i] = vec[i] * chirp[i]
	}

	// Conjugate-symmetric chirp kernel, zero elsewhere.
	bvec := make([]T, m)
	bvec[0] = chirp[0]

	for i := 1; i < n; i++ {
		c := conj(chirp[i])
		bvec[i] = c
		bvec[m-i] = c
	}

	cvec := make([]T, m)
	if err := ConvolvePow2(cvec, avec, bvec); err != nil {
		return err
	}

	for i := range n {
		vec[i] = cvec[i] * chirp[i]
	}

	return nil
}
