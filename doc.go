// Package algodft implements discrete Fourier transforms and circular
// convolution for sequences of arbitrary length.
//
// Power-of-two lengths use an in-place radix-2 Cooley-Tukey FFT; every other
// length is handled by Bluestein's chirp-z algorithm, which re-expresses the
// transform as a power-of-two circular convolution. Transform selects the
// engine automatically.
//
// # Normalization
//
// Neither transform direction applies amplitude scaling: a forward transform
// followed by an inverse transform yields the original sequence multiplied by
// its length n. Callers needing a normalized inverse divide by n themselves.
// Convolve performs this scaling internally and returns the mathematically
// exact circular convolution.
//
// # Concurrency
//
// Every call allocates its twiddle tables and scratch buffers fresh and
// releases them before returning; the package holds no global mutable state.
// Concurrent calls operating on distinct slices are therefore safe without
// locking. Passing the same slice to two simultaneous calls is a data race
// the caller must prevent.
package algodft
