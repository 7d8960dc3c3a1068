package algodft

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"
)

// Shared test helpers used across multiple test files.

func randomComplex128(n int, seed int64) []complex128 {
	rng := rand.New(rand.NewSource(seed))

	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
	}

	return out
}

// naiveDFT computes the O(n²) summation definition of the (unnormalized)
// DFT, the reference every engine is validated against.
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

// naiveCircularConvolve computes out[k] = Σ_i x[i]·y[(k−i) mod n] directly.
func naiveCircularConvolve(x, y []complex128) []complex128 {
	n := len(x)

	out := make([]complex128, n)
	for k := range n {
		var sum complex128
		for i := range n {
			sum += x[i] * y[((k-i)%n+n)%n]
		}

		out[k] = sum
	}

	return out
}

func assertApproxComplex128Tolf(t *testing.T, got, want complex128, tol float64, format string, args ...any) {
	t.Helper()

	if cmplx.Abs(got-want) > tol {
		t.Fatalf(format+": got %v want %v (diff=%v)", append(args, got, want, cmplx.Abs(got-want))...)
	}
}

func assertComplex128SlicesClose(t *testing.T, got, want []complex128, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(want))
	}

	for i := range want {
		assertApproxComplex128Tolf(t, got[i], want[i], tol, "element %d", i)
	}
}
