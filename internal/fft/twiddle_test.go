package fft

import (
	"fmt"
	"math"
	"math/cmplx"
	"testing"
)

func TestComputeTwiddleFactorsSize4(t *testing.T) {
	t.Parallel()

	forward := ComputeTwiddleFactors[complex128](4, false)
	assertClose(t, forward, []complex128{1, -1i}, 1e-15)

	inverse := ComputeTwiddleFactors[complex128](4, true)
	assertClose(t, inverse, []complex128{1, 1i}, 1e-15)
}

func TestComputeTwiddleFactorsUnitMagnitude(t *testing.T) {
	t.Parallel()

	twiddle := ComputeTwiddleFactors[complex128](256, false)

	if len(twiddle) != 128 {
		t.Fatalf("table length = %d, want 128", len(twiddle))
	}

	for i, w := range twiddle {
		if diff := math.Abs(cmplx.Abs(w) - 1); diff > 1e-15 {
			t.Fatalf("|twiddle[%d]| deviates from 1 by %v", i, diff)
		}
	}
}

func TestComputeChirpTableSmallSizes(t *testing.T) {
	t.Parallel()

	// For i² < 2n the modular reduction is a no-op, so the table must equal
	// exp(±iπ·i²/n) directly.
	for _, n := range []int{1, 2, 3, 5} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			for _, inverse := range []bool{false, true} {
				chirp := ComputeChirpTable[complex128](n, inverse)

				for i := range n {
					if i*i >= 2*n {
						continue
					}

					angle := math.Pi * float64(i*i) / float64(n)
					if !inverse {
						angle = -angle
					}

					want := cmplx.Exp(complex(0, angle))
					if diff := cmplx.Abs(chirp[i] - want); diff > 1e-15 {
						t.Fatalf("chirp[%d] (inverse=%v) = %v, want %v", i, inverse, chirp[i], want)
					}
				}
			}
		})
	}
}

func TestComputeChirpTableModularReduction(t *testing.T) {
	t.Parallel()

	const n = 611

	chirp := ComputeChirpTable[complex128](n, false)

	if chirp[0] != 1 {
		t.Fatalf("chirp[0] = %v, want 1", chirp[0])
	}

	// The reduced and unreduced phases must agree: i² and i² mod 2n differ
	// by a multiple of 2n, i.e. the angle shifts by a multiple of 2π.
	for _, i := range []int{40, 123, 610} {
		angle := -math.Pi * float64((i*i)%(2*n)) / float64(n)
		want := cmplx.Exp(complex(0, angle))

		if diff := cmplx.Abs(chirp[i] - want); diff > 1e-12 {
			t.Fatalf("chirp[%d] = %v, want %v (diff=%v)", i, chirp[i], want, diff)
		}

		if diff := math.Abs(cmplx.Abs(chirp[i]) - 1); diff > 1e-15 {
			t.Fatalf("|chirp[%d]| deviates from 1 by %v", i, diff)
		}
	}
}
