package spectrum

import (
	vecmath "github.com/cwbudde/algo-vecmath"
)

// Magnitude returns |X[k]| for each complex spectrum bin.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	MagnitudeTo(out, in)

	return out
}

// MagnitudeTo computes |X[k]| into dst, which must have len(in) elements.
func MagnitudeTo(dst []float64, in []complex128) {
	re, im := unpack(in)
	vecmath.Magnitude(dst, re, im)
}

// Power returns |X[k]|² for each complex spectrum bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	PowerTo(out, in)

	return out
}

// PowerTo computes |X[k]|² into dst, which must have len(in) elements.
func PowerTo(dst []float64, in []complex128) {
	re, im := unpack(in)
	vecmath.Power(dst, re, im)
}

// unpack splits complex bins into separate real and imaginary planes, the
// layout the vecmath kernels operate on.
func unpack(in []complex128) (re, im []float64) {
	n := len(in)
	buf := make([]float64, 2*n)
	re, im = buf[:n], buf[n:]

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	return re, im
}
