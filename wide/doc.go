// Package wide provides SIMD-friendly wide lane types for batch barycentric
// evaluation.
//
// This package implements wide types (F4, F64) designed to enable Go
// compiler auto-vectorization. By using fixed-size arrays and simple loops,
// these types let the compiler generate SIMD instructions on supported
// architectures (SSE, AVX, NEON) without unsafe or assembly.
//
// # Wide Types
//
// F4: 4 float32 lanes arranged as a 2x2 pixel grid, used for tile-level
// accept/reject tests.
//
// F64: 64 float32 lanes arranged as an 8x8 pixel grid (a "group"), used for
// per-pixel coverage and depth evaluation.
//
// Both types support bit-reinterpretation to matching-width uint32 lanes and
// lane-bitmask extraction (the sign bit of each lane, packed LSB-first),
// which the barycentric engine uses to build inside/outside tests without
// branching per lane.
package wide
