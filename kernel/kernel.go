package kernel

import (
	"github.com/gogpu/rastercore/bary"
	"github.com/gogpu/rastercore/interp"
	"github.com/gogpu/rastercore/tile"
)

// RasterTile runs one triangle against one tile's owned TileGroup,
// implementing spec.md §4.5: derive the screen-space Barycentric, then
// for each of the tile's 16 groups, run TileFastReject and, if not
// rejected, evaluate coverage, update depth, interpolate attributes, and
// invoke frag for every surviving pixel. tileOriginX/Y are the tile's
// top-left pixel coordinates in the destination framebuffer; local is the
// tile-local pixel coordinate written into tg.
func RasterTile[A interp.Interpolator[A], P any](tg *tile.TileGroup[P], tileOriginX, tileOriginY int, cmd Command[A], frag Fragment[A, P]) {
	b, ok := bary.New(cmd.ClipXY[0], cmd.ClipXY[1], cmd.ClipXY[2])
	if !ok {
		return // degenerate triangle, dropped silently per spec.md §7
	}

	for gy := 0; gy < tile.GroupsPerSide; gy++ {
		for gx := 0; gx < tile.GroupsPerSide; gx++ {
			localX, localY := tile.GroupOrigin(gx, gy)
			baseX := float32(tileOriginX+localX) + 0.5
			baseY := float32(tileOriginY+localY) + 0.5

			if b.TileFastReject(baseX, baseY, float32(tile.GroupSize-1), float32(tile.GroupSize-1)) {
				continue
			}

			g := tg.GroupAt(gx, gy)
			cov := g.Cover(b, baseX, baseY, cmd.ClipZ)

			for {
				dx, dy, w, more := cov.Next()
				if !more {
					break
				}
				attrs := interp.Interpolate(cmd.Original, w)
				tg.SetPixel(localX+dx, localY+dy, frag.Fragment(attrs))
			}
		}
	}
}
