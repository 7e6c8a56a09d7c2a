// Package cordic implements a CORDIC engine: circular and
// hyperbolic rotation/vectoring iterations driven by pre-computed
// arctangent/arctanh lookup tables, plus the range reduction and
// decomposition each elementary function needs before the iteration
// proper. Every function here operates on plain int64 stored integers
// at a caller-supplied fractional width; it knows nothing about Format,
// Descriptor, or policy — the root package wires those in.
package cordic
