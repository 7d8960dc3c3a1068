// Package fftypes holds the shared type constraints of the transform engine.
//
// The constraint lives in its own leaf package so that the root package and
// the internal engine packages can reference one canonical definition without
// import cycles.
package fftypes

// Complex is the constraint for complex sample types supported by the engine.
type Complex interface {
	~complex64 | ~complex128
}

// Float is the constraint for the matching real component types.
type Float interface {
	~float32 | ~float64
}
