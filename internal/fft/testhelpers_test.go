package fft

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"
)

// Shared helpers for the engine tests.

func randomComplex128(n int, seed int64) []complex128 {
	rng := rand.New(rand.NewSource(seed))

	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
	}

	return out
}

// naiveDFT is the O(n²) summation definition of the unnormalized DFT.
func naiveDFT(x []complex128, inverse bool) []complex128 {
	n := len(x)

	sign := -2.0
	if inverse {
		sign = 2.0
	}

	out := make([]complex128, n)
	for k := range n {
		var sum complex128
		for j := range n {
			angle := sign * math.Pi * float64(j*k) / float64(n)
			sum += x[j] * cmplx.Exp(complex(0, angle))
		}

		out[k] = sum
	}

	return out
}

func assertClose(t *testing.T, got, want []complex128, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(want))
	}

	for i := range want {
		if diff := cmplx.Abs(got[i] - want[i]); diff > tol {
			t.Fatalf("element %d: got %v want %v (diff=%v)", i, got[i], want[i], diff)
		}
	}
}
