// Package kernel implements the per-tile rasterization kernel: given one
// tile's owned TileGroup and a triangle already expressed in screen space,
// it produces 8x8 coverage masks group by group, updates depth, and
// invokes the caller's fragment procedure on every surviving pixel
// (spec.md §4.4, §4.5).
package kernel

import "github.com/gogpu/rastercore/interp"

// Command carries one triangle's rasterization inputs: its screen-space
// 2D position (ClipXY) plus clip-space depth (ClipZ) per vertex, and the untouched
// original per-vertex attributes used for interpolation (Original). This
// is spec.md's RasterCommand.
type Command[A interp.Interpolator[A]] struct {
	// ClipXY holds each vertex's screen-space (x, y) position, already
	// perspective-divided and mapped to pixel coordinates.
	ClipXY [3][2]float32
	// ClipZ holds each vertex's clip-space z (post perspective divide),
	// used for affine depth interpolation (spec.md §4.4: not
	// perspective-correct, a deliberate simplification).
	ClipZ [3]float32
	// Original carries the caller's attribute values, untouched, for
	// interpolation via interp.Interpolate.
	Original interp.Triangle[A]
}

// IsBackface reports whether the 2D screen-space triangle (p0, p1, p2)
// faces away from the viewer, per spec.md §4.5: n.z = (p2-p0) x (p1-p0);
// the triangle is back-facing when n.z >= 0 under the renderer's
// flipped-Y screen convention (Y increases downward in pixel space, the
// opposite of the NDC convention the projection math assumes).
func IsBackface(p0, p1, p2 [2]float32) bool {
	e0 := [2]float32{p2[0] - p0[0], p2[1] - p0[1]}
	e1 := [2]float32{p1[0] - p0[0], p1[1] - p0[1]}
	nz := e0[0]*e1[1] - e0[1]*e1[0]
	return nz >= 0
}
