package wide

import "math"

// F4 holds 4 float32 lanes arranged as a 2x2 grid:
//
//	lane 0 = (0,0)  lane 1 = (1,0)
//	lane 2 = (0,1)  lane 3 = (1,1)
//
// Used for cheap tile-level accept/reject tests (§4.3 tile_fast_reject /
// tile_covered): evaluating a triangle edge function at the four corners of
// a tile is enough to classify the whole tile without visiting every pixel.
type F4 [4]float32

// U4 holds 4 uint32 lanes, the bit-reinterpreted form of F4.
type U4 [4]uint32

// SplatF4 returns an F4 with every lane set to v.
func SplatF4(v float32) F4 {
	return F4{v, v, v, v}
}

// RangeF4 builds the 2x2 coordinate grid of X or Y sample positions,
// starting at base and advancing by step per grid column (x) or row (y).
// axisY selects whether the 0/1 step pattern varies along Y (true) or X
// (false), matching f32x4::range_x / range_y in the original source.
func RangeF4(base, step float32, axisY bool) F4 {
	if axisY {
		return F4{base, base, base + step, base + step}
	}
	return F4{base, base + step, base, base + step}
}

// Add returns the element-wise sum.
func (v F4) Add(o F4) F4 { return F4{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]} }

// Sub returns the element-wise difference.
func (v F4) Sub(o F4) F4 { return F4{v[0] - o[0], v[1] - o[1], v[2] - o[2], v[3] - o[3]} }

// Mul returns the element-wise product.
func (v F4) Mul(o F4) F4 { return F4{v[0] * o[0], v[1] * o[1], v[2] * o[2], v[3] * o[3]} }

// Div returns the element-wise quotient.
func (v F4) Div(o F4) F4 { return F4{v[0] / o[0], v[1] / o[1], v[2] / o[2], v[3] / o[3]} }

// Bits reinterprets each lane's bit pattern as uint32, without numeric
// conversion. Used for sign-bit extraction, never for arithmetic.
func (v F4) Bits() U4 {
	return U4{
		math.Float32bits(v[0]),
		math.Float32bits(v[1]),
		math.Float32bits(v[2]),
		math.Float32bits(v[3]),
	}
}

// Bitmask packs the sign bit of each lane into the low 4 bits of the
// result, LSB = lane 0. A set bit means the lane's value is negative (or
// -0.0), which the barycentric engine uses as the "outside" indicator.
func (u U4) Bitmask() uint32 {
	var m uint32
	for i, b := range u {
		if b&0x8000_0000 != 0 {
			m |= 1 << uint(i)
		}
	}
	return m
}

// AndSelf ANDs all four lanes of a bitmask-producing vector together,
// matching u32x4::and_self in the original source: used to test "all
// corners agree this edge is outside".
func (u U4) AndSelf() uint32 {
	return u[0] & u[1] & u[2] & u[3]
}

// OrSelf ORs all four lanes together: "at least one corner is outside".
func (u U4) OrSelf() uint32 {
	return u[0] | u[1] | u[2] | u[3]
}
