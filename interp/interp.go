// Package interp implements the attribute-interpolation capability used by
// the rasterization kernel: given a triangle of attribute values and three
// barycentric weights, produce the interpolated value at a sample point.
//
// Go has no Rust-style associated-type traits, so the capability is
// expressed as an F-bounded generic interface: a type T implements
// Interpolator[T] by providing its own Interpolate method, and the free
// function Interpolate dispatches to it at compile time (no boxing, no
// reflection). Built-in implementations cover the shapes spec.md requires:
// plain float32 (F32), fixed 2/3/4-float vectors, Flat (first-vertex-wins),
// and Pair/Triple for product types.
package interp

// Triangle holds three attribute values in vertex order; weight index i
// corresponds to Triangle[i].
type Triangle[T any] [3]T

// Interpolator is implemented by attribute types that know how to combine
// themselves across a triangle given barycentric weights [w0, w1, w2].
type Interpolator[T any] interface {
	Interpolate(tri Triangle[T], w [3]float32) T
}

// Interpolate evaluates tri at weights w via T's own Interpolate method.
// This is the single entry point the rasterization kernel calls per pixel.
func Interpolate[T Interpolator[T]](tri Triangle[T], w [3]float32) T {
	return tri[0].Interpolate(tri, w)
}

// F32 is a scalar attribute (e.g. a single light intensity or depth value).
type F32 float32

// Interpolate returns w0*x + w1*y + w2*z.
func (F32) Interpolate(tri Triangle[F32], w [3]float32) F32 {
	return F32(float32(tri[0])*w[0] + float32(tri[1])*w[1] + float32(tri[2])*w[2])
}

// Vec2 is a 2-component attribute (e.g. texture coordinates).
type Vec2 [2]float32

// Interpolate combines each component independently.
func (Vec2) Interpolate(tri Triangle[Vec2], w [3]float32) Vec2 {
	var out Vec2
	for i := range out {
		out[i] = tri[0][i]*w[0] + tri[1][i]*w[1] + tri[2][i]*w[2]
	}
	return out
}

// Vec3 is a 3-component attribute (e.g. RGB color or a surface normal).
type Vec3 [3]float32

// Interpolate combines each component independently.
func (Vec3) Interpolate(tri Triangle[Vec3], w [3]float32) Vec3 {
	var out Vec3
	for i := range out {
		out[i] = tri[0][i]*w[0] + tri[1][i]*w[1] + tri[2][i]*w[2]
	}
	return out
}

// Vec4 is a 4-component attribute (e.g. RGBA color or homogeneous position).
type Vec4 [4]float32

// Interpolate combines each component independently.
func (Vec4) Interpolate(tri Triangle[Vec4], w [3]float32) Vec4 {
	var out Vec4
	for i := range out {
		out[i] = tri[0][i]*w[0] + tri[1][i]*w[1] + tri[2][i]*w[2]
	}
	return out
}

// Flat wraps an attribute that is not interpolated: the value carried by
// the triangle's first vertex wins verbatim, regardless of weights. Used
// for per-primitive data such as a flat face color or a material index.
type Flat[T any] struct {
	V T
}

// Interpolate ignores w and returns the first vertex's value.
func (Flat[T]) Interpolate(tri Triangle[Flat[T]], _ [3]float32) Flat[T] {
	return tri[0]
}

// Pair combines two independently-interpolated attributes into one
// product type, standing in for the Rust tuple impls in original_source
// (e.g. ([f32;4], A)). Go generics have no variadic tuples, so Pair/Triple
// cover the arities original_source actually exercised.
type Pair[A Interpolator[A], B Interpolator[B]] struct {
	X A
	Y B
}

// Interpolate combines X and Y independently via their own Interpolate.
func (Pair[A, B]) Interpolate(tri Triangle[Pair[A, B]], w [3]float32) Pair[A, B] {
	ta := Triangle[A]{tri[0].X, tri[1].X, tri[2].X}
	tb := Triangle[B]{tri[0].Y, tri[1].Y, tri[2].Y}
	return Pair[A, B]{X: Interpolate(ta, w), Y: Interpolate(tb, w)}
}

// Triple combines three independently-interpolated attributes.
type Triple[A Interpolator[A], B Interpolator[B], C Interpolator[C]] struct {
	X A
	Y B
	Z C
}

// Interpolate combines X, Y, and Z independently.
func (Triple[A, B, C]) Interpolate(tri Triangle[Triple[A, B, C]], w [3]float32) Triple[A, B, C] {
	ta := Triangle[A]{tri[0].X, tri[1].X, tri[2].X}
	tb := Triangle[B]{tri[0].Y, tri[1].Y, tri[2].Y}
	tc := Triangle[C]{tri[0].Z, tri[1].Z, tri[2].Z}
	return Triple[A, B, C]{X: Interpolate(ta, w), Y: Interpolate(tb, w), Z: Interpolate(tc, w)}
}
