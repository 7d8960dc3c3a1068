// Command benchdft times the transform engines across a list of sizes,
// comparing the dispatcher's choice against a forced Bluestein run on
// powers of two.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	algodft "github.com/cwbudde/algo-dft"
	imath "github.com/cwbudde/algo-dft/internal/math"
)

func main() {
	var (
		sizeList = flag.String("sizes", "64,1000,1024,4096,10000", "comma-separated sizes")
		iters    = flag.Int("iters", 200, "benchmark iterations")
		warmup   = flag.Int("warmup", 10, "warmup iterations")
		seed     = flag.Int64("seed", 1, "rng seed")
	)
	flag.Parse()

	sizes := parseSizes(*sizeList)
	if len(sizes) == 0 {
		fmt.Println("no sizes specified")
		return
	}

	rnd := rand.New(rand.NewSource(*seed))

	fmt.Printf("iters=%d warmup=%d\n", *iters, *warmup)
	fmt.Printf("%8s  %10s  %12s\n", "size", "engine", "ns/op")

	for _, n := range sizes {
		vec := make([]complex128, n)
		for i := range vec {
			vec[i] = complex(rnd.Float64()*2-1, rnd.Float64()*2-1)
		}

		report(n, dispatchName(n), benchTransform(vec, *iters, *warmup, algodft.Transform[complex128]))

		if imath.IsPowerOf2(n) {
			report(n, "bluestein", benchTransform(vec, *iters, *warmup, algodft.TransformBluestein[complex128]))
		}
	}
}

func dispatchName(n int) string {
	if imath.IsPowerOf2(n) {
		return "radix2"
	}

	return "bluestein"
}

func benchTransform(vec []complex128, iters, warmup int, transform func([]complex128, algodft.Direction) error) float64 {
	work := make([]complex128, len(vec))

	for range warmup {
		copy(work, vec)

		if err := transform(work, algodft.Forward); err != nil {
			panic(err)
		}
	}

	start := time.Now()

	for range iters {
		copy(work, vec)

		if err := transform(work, algodft.Forward); err != nil {
			panic(err)
		}
	}

	return float64(time.Since(start).Nanoseconds()) / float64(iters)
}

func report(n int, engine string, nsPerOp float64) {
	fmt.Printf("%8d  %10s  %12.1f\n", n, engine, nsPerOp)
}

func parseSizes(list string) []int {
	var sizes []int

	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil || n <= 0 {
			continue
		}

		sizes = append(sizes, n)
	}

	return sizes
}
