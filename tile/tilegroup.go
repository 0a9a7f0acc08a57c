package tile

// Pixels is the number of pixels in a tile (32*32).
const Pixels = Size * Size

// TileGroup pairs a Tile's depth storage with the color output for the
// same 32x32 region, parameterized over the pixel type P (spec.md §3).
// It is allocated once per grid cell at frame creation, cleared by Clear,
// written during rasterization, and read during image export.
type TileGroup[P any] struct {
	Depth *Tile
	Color [Pixels]P
}

// NewTileGroup allocates a TileGroup with depth initialized to the far
// plane and color initialized to fill.
func NewTileGroup[P any](fill P) *TileGroup[P] {
	tg := &TileGroup[P]{Depth: NewTile()}
	for i := range tg.Color {
		tg.Color[i] = fill
	}
	return tg
}

// Clear resets depth to the far plane and fills every pixel with fill.
func (tg *TileGroup[P]) Clear(fill P) {
	tg.Depth.Reset()
	for i := range tg.Color {
		tg.Color[i] = fill
	}
}

// SetPixel writes the color at local tile coordinates (x, y), 0<=x,y<32.
func (tg *TileGroup[P]) SetPixel(x, y int, c P) {
	tg.Color[y*Size+x] = c
}

// PixelAt returns the color at local tile coordinates (x, y).
func (tg *TileGroup[P]) PixelAt(x, y int) P {
	return tg.Color[y*Size+x]
}

// GroupAt returns the Group at group index (gx, gy) within the tile's 4x4
// grid of groups.
func (tg *TileGroup[P]) GroupAt(gx, gy int) *Group {
	return tg.Depth.Groups[gy][gx]
}
