package tile

import (
	"math/bits"

	"github.com/gogpu/rastercore/bary"
	"github.com/gogpu/rastercore/wide"
)

// Group is an 8x8 depth slab, the unit of SIMD coverage evaluation
// (spec.md §3, §4.4). Depth ranges over [0,1]; a fresh Group starts at 1.0
// everywhere (the far plane). A Group is created once per frame as part of
// its owning TileGroup and is mutated only by whichever worker currently
// owns that tile.
type Group struct {
	Depth [64]float32
}

// NewGroup returns a Group with every depth lane initialized to 1.0.
func NewGroup() *Group {
	g := &Group{}
	for i := range g.Depth {
		g.Depth[i] = 1
	}
	return g
}

// Cover evaluates the triangle described by b against this group's 8x8
// pixel-center grid starting at (x, y) with unit pixel step, tests each
// lane for barycentric inside-ness AND passing depth against zTri
// (interpolated via the same weights), and atomically (with respect to
// this tile's single owning worker) overwrites the depths of pixels that
// pass. It returns a Coverage iterator over the surviving pixels and
// their weights, implementing spec.md §4.4 steps 1-4.
func (g *Group) Cover(b bary.Barycentric, x, y float32, zTri [3]float32) Coverage {
	w0, w1, w2 := b.EvalF64(x, y, 1, 1)

	z0 := wide.SplatF64(zTri[0])
	z1 := wide.SplatF64(zTri[1])
	z2 := wide.SplatF64(zTri[2])
	newDepth := w0.Mul(z0).Add(w1.Mul(z1)).Add(w2.Mul(z2))

	cur := wide.F64(g.Depth)
	depthDelta := newDepth.Sub(cur) // negative iff newDepth < cur (new pixel nearer)

	mask := ^(w0.Bits().Bitmask() | w1.Bits().Bitmask() | w2.Bits().Bitmask()) & negSignMask(depthDelta)

	for lane := 0; lane < 64; lane++ {
		if mask&(uint64(1)<<uint(lane)) != 0 {
			g.Depth[lane] = newDepth[lane]
		}
	}

	return Coverage{mask: mask, w0: w0, w1: w1, w2: w2}
}

// negSignMask returns the bitmask of lanes where v is NEGATIVE. Applied to
// newDepth-cur in Cover, a set bit means the depth test passed (newDepth <
// cur); an exact tie gives +0, whose sign bit is 0, so a tie fails. Cover
// ANDs this with the NOT-OR of the barycentric sign bits, so a lane
// contributes 1 to the final mask only when it is inside the triangle and
// strictly nearer than the stored depth.
func negSignMask(v wide.F64) uint64 {
	return v.Bits().Bitmask()
}

// Coverage is the per-group result of a coverage test: a 64-bit mask
// (spec.md GLOSSARY) plus the barycentric weight lanes needed to
// interpolate attributes at each surviving pixel.
type Coverage struct {
	mask   uint64
	w0, w1, w2 wide.F64
}

// Mask returns the raw 64-bit coverage mask, one bit per pixel, LSB =
// (dx=0, dy=0).
func (c Coverage) Mask() uint64 { return c.mask }

// Next pops the lowest set bit of the remaining mask and returns its
// (dx, dy) offset within the group plus its barycentric weights. ok is
// false once all covered pixels have been consumed.
func (c *Coverage) Next() (dx, dy int, w [3]float32, ok bool) {
	if c.mask == 0 {
		return 0, 0, [3]float32{}, false
	}
	lane := bits.TrailingZeros64(c.mask)
	c.mask &^= uint64(1) << uint(lane)
	return lane & 7, lane >> 3, [3]float32{c.w0[lane], c.w1[lane], c.w2[lane]}, true
}
