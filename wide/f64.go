package wide

import "math"

// F64 holds 64 float32 lanes arranged as an 8x8 pixel grid, row-major:
// lane index = dy*8 + dx. This is the "group" granularity at which
// coverage masks and attribute interpolation are evaluated (§4.4).
type F64 [64]float32

// U64 holds 64 uint32 lanes, the bit-reinterpreted form of F64.
type U64 [64]uint32

// SplatF64 returns an F64 with every lane set to v.
func SplatF64(v float32) F64 {
	var r F64
	for i := range r {
		r[i] = v
	}
	return r
}

// RangeF64X builds the 8x8 grid of X sample coordinates: base + (lane%8)*step.
func RangeF64X(base, step float32) F64 {
	var r F64
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			r[y*8+x] = base + float32(x)*step
		}
	}
	return r
}

// RangeF64Y builds the 8x8 grid of Y sample coordinates: base + (lane/8)*step.
func RangeF64Y(base, step float32) F64 {
	var r F64
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			r[y*8+x] = base + float32(y)*step
		}
	}
	return r
}

// Add returns the element-wise sum.
func (v F64) Add(o F64) F64 {
	var r F64
	for i := range v {
		r[i] = v[i] + o[i]
	}
	return r
}

// Sub returns the element-wise difference.
func (v F64) Sub(o F64) F64 {
	var r F64
	for i := range v {
		r[i] = v[i] - o[i]
	}
	return r
}

// Mul returns the element-wise product.
func (v F64) Mul(o F64) F64 {
	var r F64
	for i := range v {
		r[i] = v[i] * o[i]
	}
	return r
}

// Neg returns the element-wise negation.
func (v F64) Neg() F64 {
	var r F64
	for i := range v {
		r[i] = -v[i]
	}
	return r
}

// Lt reports, per lane, whether v < o. It is a plain boolean helper; the
// coverage path builds its masks from sign bits instead and does not call
// Lt.
func (v F64) Lt(o F64) [64]bool {
	var r [64]bool
	for i := range v {
		r[i] = v[i] < o[i]
	}
	return r
}

// Bits reinterprets each lane's bit pattern as uint32.
func (v F64) Bits() U64 {
	var r U64
	for i := range v {
		r[i] = math.Float32bits(v[i])
	}
	return r
}

// Bitmask packs the sign bit of each of the 64 lanes into a uint64, LSB =
// lane 0 (top-left of the 8x8 group). A set bit means the lane is negative.
func (u U64) Bitmask() uint64 {
	var m uint64
	for i, b := range u {
		if b&0x8000_0000 != 0 {
			m |= 1 << uint(i)
		}
	}
	return m
}
