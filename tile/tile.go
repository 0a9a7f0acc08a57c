// Package tile implements the tile framebuffer: the 32x32 Tile (sixteen
// 8x8 Groups), the TileGroup that pairs a Tile's depth storage with its
// color output, and OwnedSlot, the future-like handle the scheduler uses
// to hand a TileGroup to exactly one worker at a time.
package tile

// Size is the edge length of a tile in pixels (spec.md §2: 32x32 tiles).
const Size = 32

// GroupSize is the edge length of a group in pixels (8x8).
const GroupSize = 8

// GroupsPerSide is how many groups make up one tile edge: 32/8 = 4.
const GroupsPerSide = Size / GroupSize

// Tile is a 32x32 pixel region composed of 16 Groups arranged 4x4. A Tile
// is owned by at most one worker at a time (spec.md §3 invariant); that
// invariant is enforced by OwnedSlot, not by Tile itself.
type Tile struct {
	Groups [GroupsPerSide][GroupsPerSide]*Group
}

// NewTile allocates a Tile with all 16 groups initialized to far depth.
func NewTile() *Tile {
	var t Tile
	for gy := range t.Groups {
		for gx := range t.Groups[gy] {
			t.Groups[gy][gx] = NewGroup()
		}
	}
	return &t
}

// Reset restores every group's depth to the far plane (1.0), for reuse by
// Clear between frames.
func (t *Tile) Reset() {
	for gy := range t.Groups {
		for gx := range t.Groups[gy] {
			g := t.Groups[gy][gx]
			for i := range g.Depth {
				g.Depth[i] = 1
			}
		}
	}
}

// GroupOrigin returns the pixel offset, relative to the tile's own
// origin, of group (gx, gy)'s top-left pixel.
func GroupOrigin(gx, gy int) (x, y int) {
	return gx * GroupSize, gy * GroupSize
}
