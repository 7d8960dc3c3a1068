package fft

// Hand-unrolled decimation-in-time codelets for the smallest power-of-two
// sizes. Each works in place on vec, folding the bit-reversal permutation
// into its load order. twiddle holds the n/2 direction-signed factors.

func smallSizeKernel[T Complex](vec, twiddle []T) bool {
	switch len(vec) {
	case 2:
		return dit2(vec)
	case 4:
		return dit4(vec, twiddle)
	case 8:
		return dit8(vec, twiddle)
	default:
		return false
	}
}

func dit2[T Complex](vec []T) bool {
	x0, x1 := vec[0], vec[1]
	vec[0], vec[1] = x0+x1, x0-x1

	return true
}

func dit4[T Complex](vec, twiddle []T) bool {
	w1 := twiddle[1]

	// Stage 1 (size 2) - bit-reversed load order 0,2,1,3
	x0, x1 := vec[0], vec[2]
	a0, a1 := x0+x1, x0-x1
	x0, x1 = vec[1], vec[3]
	a2, a3 := x0+x1, x0-x1

	// Stage 2 (size 4)
	t := w1 * a3
	vec[0], vec[2] = a0+a2, a0-a2
	vec[1], vec[3] = a1+t, a1-t

	return true
}

func dit8[T Complex](vec, twiddle []T) bool {
	w1, w2, w3 := twiddle[1], twiddle[2], twiddle[3]

	// Stage 1 (size 2) - bit-reversed load order 0,4,2,6,1,5,3,7
	x0, x1 := vec[0], vec[4]
	a0, a1 := x0+x1, x0-x1
	x0, x1 = vec[2], vec[6]
	a2, a3 := x0+x1, x0-x1
	x0, x1 = vec[1], vec[5]
	a4, a5 := x0+x1, x0-x1
	x0, x1 = vec[3], vec[7]
	a6, a7 := x0+x1, x0-x1

	// Stage 2 (size 4)
	b0, b2 := a0+a2, a0-a2
	t := w2 * a3
	b1, b3 := a1+t, a1-t
	b4, b6 := a4+a6, a4-a6
	t = w2 * a7
	b5, b7 := a5+t, a5-t

	// Stage 3 (size 8)
	vec[0], vec[4] = b0+b4, b0-b4
	t = w1 * b5
	vec[1], vec[5] = b1+t, b1-t
	t = w2 * b6
	vec[2], vec[6] = b2+t, b2-t
	t = w3 * b7
	vec[3], vec[7] = b3+t, b3-t

	return true
}
