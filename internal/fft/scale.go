package fft

// ScaleInPlace multiplies each element of dst by scale.
func ScaleInPlace[T Complex](dst []T, scale float64) {
	if scale == 1 {
		return
	}

	factor := complexFromFloat64[T](scale, 0)
	for i := range dst {
		dst[i] *= factor
	}
}
