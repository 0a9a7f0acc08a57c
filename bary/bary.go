// Package bary implements the barycentric coordinate engine: given a
// screen-space 2D triangle, precompute the constants needed to evaluate
// barycentric weights at arbitrary sample points, plus cheap tile-level
// accept/reject tests built on wide.F4 sign-bit masks.
package bary

import (
	"math"

	"github.com/gogpu/rastercore/wide"
)

// Barycentric holds the per-triangle constants derived from the two edge
// vectors v0 = P1-P0 and v1 = P2-P0, following spec.md's data model
// exactly: Base = P0, InvDenom = 1/(d00*d11 - d01*d01).
type Barycentric struct {
	V0, V1, Base [2]float32
	d00, d01, d11 float32
	InvDenom      float32
}

// New precomputes the barycentric constants for the triangle (p0, p1, p2)
// in 2D screen space. ok is false when the triangle is degenerate
// (collinear vertices produce a zero or non-finite denominator) — callers
// must have already culled such triangles via a screen-space area check
// (spec.md §4.3); New re-validates defensively rather than silently
// returning NaN-producing weights.
func New(p0, p1, p2 [2]float32) (Barycentric, bool) {
	v0 := [2]float32{p1[0] - p0[0], p1[1] - p0[1]}
	v1 := [2]float32{p2[0] - p0[0], p2[1] - p0[1]}

	d00 := dot2(v0, v0)
	d01 := dot2(v0, v1)
	d11 := dot2(v1, v1)
	denom := d00*d11 - d01*d01
	invDenom := 1 / denom
	d, id := float64(denom), float64(invDenom)
	if math.IsNaN(d) || math.IsInf(d, 0) || math.IsInf(id, 0) {
		return Barycentric{}, false
	}

	return Barycentric{
		V0: v0, V1: v1, Base: p0,
		d00: d00, d01: d01, d11: d11,
		InvDenom: invDenom,
	}, true
}

func dot2(a, b [2]float32) float32 { return a[0]*b[0] + a[1]*b[1] }

// Eval, EvalF4, and EvalF64 return their weights as (w0, w1, w2) triples:
// w0 = 1-u-v, w1 = u, w2 = v (spec.md §4.3 weight-ordering convention: w[i]
// corresponds to vertex i of the source triangle).

// Eval computes the scalar barycentric weights at sample point p.
func (b Barycentric) Eval(p [2]float32) (w0, w1, w2 float32) {
	v2 := [2]float32{p[0] - b.Base[0], p[1] - b.Base[1]}
	d02 := dot2(b.V0, v2)
	d12 := dot2(b.V1, v2)

	u := (b.d11*d02 - b.d01*d12) * b.InvDenom
	v := (b.d00*d12 - b.d01*d02) * b.InvDenom
	return 1 - u - v, u, v
}

// EvalF4 evaluates the barycentric weights at the 2x2 grid of sample
// points starting at (x, y) stepping by (sx, sy), used for tile-level
// accept/reject tests.
func (b Barycentric) EvalF4(x, y, sx, sy float32) (w0, w1, w2 wide.F4) {
	p := wide.RangeF4Vec2(x, y, sx, sy)
	base := wide.BroadcastF4Vec2(b.Base[0], b.Base[1])
	v2 := p.Sub(base)

	v0 := wide.F4Vec2{wide.SplatF4(b.V0[0]), wide.SplatF4(b.V0[1])}
	v1 := wide.F4Vec2{wide.SplatF4(b.V1[0]), wide.SplatF4(b.V1[1])}

	d02 := v0.Dot(v2)
	d12 := v1.Dot(v2)

	d11 := wide.SplatF4(b.d11)
	d01 := wide.SplatF4(b.d01)
	d00 := wide.SplatF4(b.d00)
	invDenom := wide.SplatF4(b.InvDenom)

	u := d11.Mul(d02).Sub(d01.Mul(d12)).Mul(invDenom)
	v := d00.Mul(d12).Sub(d01.Mul(d02)).Mul(invDenom)
	w1 = u
	w2 = v
	w0 = wide.SplatF4(1).Sub(u).Sub(v)
	return
}

// EvalF64 evaluates the barycentric weights at the 8x8 grid of sample
// points starting at (x, y) stepping by (sx, sy) — one "group" (§4.4).
func (b Barycentric) EvalF64(x, y, sx, sy float32) (w0, w1, w2 wide.F64) {
	p := wide.RangeF64Vec2(x, y, sx, sy)
	base := wide.BroadcastF64Vec2(b.Base[0], b.Base[1])
	v2 := p.Sub(base)

	v0 := wide.F64Vec2{wide.SplatF64(b.V0[0]), wide.SplatF64(b.V0[1])}
	v1 := wide.F64Vec2{wide.SplatF64(b.V1[0]), wide.SplatF64(b.V1[1])}

	d02 := v0.Dot(v2)
	d12 := v1.Dot(v2)

	d11 := wide.SplatF64(b.d11)
	d01 := wide.SplatF64(b.d01)
	d00 := wide.SplatF64(b.d00)
	invDenom := wide.SplatF64(b.InvDenom)

	u := d11.Mul(d02).Sub(d01.Mul(d12)).Mul(invDenom)
	v := d00.Mul(d12).Sub(d01.Mul(d02)).Mul(invDenom)
	w1 = u
	w2 = v
	w0 = wide.SplatF64(1).Sub(u).Sub(v)
	return
}

// TileFastReject reports whether the tile footprint at (x, y, sx, sy) — a
// 2x2 grid spanning the tile's corners — lies entirely outside one of the
// triangle's three edges. It evaluates the barycentric weights at the 4
// corners and checks whether every corner is on the outside of the same
// edge (all four sign bits set for one of w0, u, v), matching
// and_self over sign bits in the original source.
func (b Barycentric) TileFastReject(x, y, sx, sy float32) bool {
	w0, w1, w2 := b.EvalF4(x, y, sx, sy)
	return w0.Bits().AndSelf()&0x8000_0000 != 0 ||
		w1.Bits().AndSelf()&0x8000_0000 != 0 ||
		w2.Bits().AndSelf()&0x8000_0000 != 0
}

// TileCovered reports whether the tile footprint lies entirely inside the
// triangle: every corner has non-negative w0, w1, and w2, the or_self
// counterpart to TileFastReject. A caller can use this to skip per-pixel
// edge tests when the whole tile is guaranteed covered.
func (b Barycentric) TileCovered(x, y, sx, sy float32) bool {
	w0, w1, w2 := b.EvalF4(x, y, sx, sy)
	return w0.Bits().OrSelf()&0x8000_0000 == 0 &&
		w1.Bits().OrSelf()&0x8000_0000 == 0 &&
		w2.Bits().OrSelf()&0x8000_0000 == 0
}
