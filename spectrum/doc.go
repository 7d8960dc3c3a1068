// Package spectrum provides magnitude and power helpers over DFT output
// bins, for callers such as audio-analysis pipelines that feed sample blocks
// through the transform engine and inspect the resulting spectrum.
//
// Unlike the engine itself these helpers are conveniences: they allocate
// scratch per call and hold no state, so they inherit the engine's
// concurrency contract.
package spectrum
