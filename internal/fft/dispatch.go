package fft

// Kernel performs an in-place transform for one specific length, using a
// twiddle table that already carries the direction sign. It reports whether
// it handled the length; on false the caller falls back to the generic
// stage loop.
type Kernel[T Complex] func(vec, twiddle []T) bool

// Kernels groups the kernels bound for each transform direction.
type Kernels[T Complex] struct {
	Forward Kernel[T]
	Inverse Kernel[T]
}

// Features describes CPU capabilities relevant to kernel selection.
type Features struct {
	HasAVX2      bool
	HasSSE2      bool
	HasNEON      bool
	ForceGeneric bool
	Architecture string
}

// SelectKernels returns the best kernels available for the detected features.
// Only the scalar small-size codelets are bound today; SIMD variants slot in
// here once implemented. ForceGeneric disables codelets entirely, which the
// tests use to cross-check codelet output against the generic stage loop.
func SelectKernels[T Complex](features Features) Kernels[T] {
	if features.ForceGeneric {
		return Kernels[T]{}
	}

	// The twiddle table encodes the direction, so one codelet set serves both.
	return Kernels[T]{
		Forward: smallSizeKernel[T],
		Inverse: smallSizeKernel[T],
	}
}
