package wide

// F4Vec2 is a 2D vector of F4 lanes: one F4 per component, evaluated
// across all 4 sample points at once.
type F4Vec2 [2]F4

// BroadcastF4Vec2 splats a single (x, y) pair across all 4 lanes.
func BroadcastF4Vec2(x, y float32) F4Vec2 {
	return F4Vec2{SplatF4(x), SplatF4(y)}
}

// RangeF4Vec2 builds the 2x2 sample-point grid at step (sx, sy) from (x, y).
func RangeF4Vec2(x, y, sx, sy float32) F4Vec2 {
	return F4Vec2{RangeF4(x, sx, false), RangeF4(y, sy, true)}
}

// Sub returns the element-wise vector difference.
func (v F4Vec2) Sub(o F4Vec2) F4Vec2 {
	return F4Vec2{v[0].Sub(o[0]), v[1].Sub(o[1])}
}

// Dot returns the lane-wise dot product.
func (v F4Vec2) Dot(o F4Vec2) F4 {
	return v[0].Mul(o[0]).Add(v[1].Mul(o[1]))
}

// F4Vec3 is a 3D vector of F4 lanes.
type F4Vec3 [3]F4

// Dot returns the lane-wise dot product.
func (v F4Vec3) Dot(o F4Vec3) F4 {
	return v[0].Mul(o[0]).Add(v[1].Mul(o[1])).Add(v[2].Mul(o[2]))
}

// F64Vec2 is a 2D vector of F64 lanes, one per sample point in an 8x8 group.
type F64Vec2 [2]F64

// BroadcastF64Vec2 splats a single (x, y) pair across all 64 lanes.
func BroadcastF64Vec2(x, y float32) F64Vec2 {
	return F64Vec2{SplatF64(x), SplatF64(y)}
}

// RangeF64Vec2 builds the 8x8 sample-point grid at step (sx, sy) from (x, y).
func RangeF64Vec2(x, y, sx, sy float32) F64Vec2 {
	return F64Vec2{RangeF64X(x, sx), RangeF64Y(y, sy)}
}

// Sub returns the element-wise vector difference.
func (v F64Vec2) Sub(o F64Vec2) F64Vec2 {
	return F64Vec2{v[0].Sub(o[0]), v[1].Sub(o[1])}
}

// Dot returns the lane-wise dot product.
func (v F64Vec2) Dot(o F64Vec2) F64 {
	return v[0].Mul(o[0]).Add(v[1].Mul(o[1]))
}

// F64Vec3 is a 3D vector of F64 lanes, one per sample point in an 8x8
// group. The barycentric engine does not use it: EvalF64 returns its
// three weights as separate F64 values.
type F64Vec3 [3]F64

// BroadcastF64Vec3 splats a single 3-vector across all 64 lanes.
func BroadcastF64Vec3(x, y, z float32) F64Vec3 {
	return F64Vec3{SplatF64(x), SplatF64(y), SplatF64(z)}
}

// Dot returns the lane-wise dot product.
func (v F64Vec3) Dot(o F64Vec3) F64 {
	return v[0].Mul(o[0]).Add(v[1].Mul(o[1])).Add(v[2].Mul(o[2]))
}
