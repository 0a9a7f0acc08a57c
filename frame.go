package rastercore

import (
	"math"
	"sync"

	"github.com/gogpu/rastercore/interp"
	"github.com/gogpu/rastercore/kernel"
	"github.com/gogpu/rastercore/tile"
)

// Frame is a depth-buffered color framebuffer divided into a grid of
// 32x32 tiles. Width and height must be positive multiples of
// tile.Size. The zero value is not usable; construct with NewFrame.
type Frame[P any] struct {
	width, height  int
	tilesX, tilesY int
	slots          [][]*tile.OwnedSlot[*tile.TileGroup[P]]
	pool           *workerPool

	// scratchCounts is a per-tile triangle-count scratch buffer reused
	// across Raster calls, sized once at construction. It is the one
	// piece of Raster's binning state that can be reused across calls:
	// everything else the binning pass needs (the per-tile command
	// lists) is shaped by the attribute type A, which varies per Raster
	// call and cannot live on Frame[P] (Go generics have no
	// per-instantiation package-level state to key a cache on A by).
	scratchCounts []int
}

// NewFrame allocates a Frame of the given pixel dimensions, with every
// pixel initialized to fill and every depth value initialized to the
// far plane (1.0). It panics if width or height is not a positive
// multiple of 32 (spec.md §7: malformed dimensions are a programmer
// error, not a runtime condition to recover from).
func NewFrame[P any](width, height int, fill P, opts ...Option) *Frame[P] {
	if width <= 0 || height <= 0 || width%tile.Size != 0 || height%tile.Size != 0 {
		panic("rastercore: width and height must be positive multiples of 32")
	}

	cfg := frameConfig{workers: 0}
	for _, o := range opts {
		o(&cfg)
	}

	tilesX, tilesY := width/tile.Size, height/tile.Size
	slots := make([][]*tile.OwnedSlot[*tile.TileGroup[P]], tilesY)
	for ty := range slots {
		row := make([]*tile.OwnedSlot[*tile.TileGroup[P]], tilesX)
		for tx := range row {
			row[tx] = tile.NewOwnedSlot(tile.NewTileGroup(fill))
		}
		slots[ty] = row
	}

	f := &Frame[P]{
		width: width, height: height,
		tilesX: tilesX, tilesY: tilesY,
		slots:         slots,
		pool:          newWorkerPool(cfg.workers),
		scratchCounts: make([]int, tilesX*tilesY),
	}
	Logger().Debug("frame created", "width", width, "height", height, "tiles_x", tilesX, "tiles_y", tilesY)
	return f
}

// Close flushes all in-flight tile work and shuts down f's worker pool.
// Callers own a Frame's worker goroutines the same way the teacher's
// WorkerPool is owned by its caller: construct with NewFrame, defer
// Close. A Frame must not be used after Close.
func (f *Frame[P]) Close() {
	f.Flush()
	f.pool.Close()
}

// Width returns the framebuffer width in pixels.
func (f *Frame[P]) Width() int { return f.width }

// Height returns the framebuffer height in pixels.
func (f *Frame[P]) Height() int { return f.height }

// Clear resets every tile's color to fill and depth to the far plane.
// Clear dispatches work to tile workers and returns without waiting for
// it to finish; callers that need the reset visible synchronously
// should call Flush afterward.
func (f *Frame[P]) Clear(fill P) {
	for ty := 0; ty < f.tilesY; ty++ {
		for tx := 0; tx < f.tilesX; tx++ {
			slot := f.slots[ty][tx]
			tg := slot.Acquire()
			f.pool.Submit(func() {
				tg.Clear(fill)
				slot.Release(tg)
			})
		}
	}
}

// Flush blocks until every tile's in-flight work has completed.
func (f *Frame[P]) Flush() {
	for ty := 0; ty < f.tilesY; ty++ {
		for tx := 0; tx < f.tilesX; tx++ {
			f.slots[ty][tx].Flush()
		}
	}
}

// Vertex is one triangle corner: a clip-space homogeneous position plus
// an attribute value to interpolate across the triangle.
type Vertex[A interp.Interpolator[A]] struct {
	Pos   [4]float32
	Attrs A
}

// Tri is a triangle submitted to Raster.
type Tri[A interp.Interpolator[A]] [3]Vertex[A]

// Raster projects, culls, bins, and rasterizes each triangle in tris
// against f, invoking frag for every surviving fragment and writing its
// result through SetPixel. Degenerate and back-facing triangles, and
// triangles whose bounding box does not intersect the framebuffer, are
// dropped silently (spec.md §7).
//
// Raster dispatches each touched tile's work to a worker goroutine and
// returns without waiting for it to complete. Commands that land on the
// same tile are always applied in the order they appear in tris,
// because binning acquires that tile's storage synchronously, in tris
// order, before handing the computation to a worker (spec.md §5, §9).
//
// Binning runs in two passes over the surviving triangles rather than
// growing a per-tile list one append at a time: the first pass counts
// how many commands land in each tile (into f.scratchCounts, a reused
// buffer sized once at Frame construction), then each touched tile's
// command slice is allocated exactly once, at its final size, before
// being filled. This avoids the repeated reallocation-and-copy an
// incrementally grown slice pays for on the hot path. The command
// slices themselves cannot be cached on Frame across calls, because
// their element type is Command[A] and A varies per Raster call.
func Raster[A interp.Interpolator[A], P any](f *Frame[P], tris []Tri[A], frag kernel.Fragment[A, P]) {
	type triInfo struct {
		cmd                kernel.Command[A]
		tx0, ty0, tx1, ty1 int
	}
	infos := make([]triInfo, 0, len(tris))

	for i := range f.scratchCounts {
		f.scratchCounts[i] = 0
	}

	for _, tr := range tris {
		var screen [3][2]float32
		var z [3]float32
		for i, v := range tr {
			w := v.Pos[3]
			x := v.Pos[0] / w
			y := v.Pos[1] / w
			screen[i] = [2]float32{
				x*float32(f.width)/2 + float32(f.width)/2,
				y*float32(f.height)/2 + float32(f.height)/2,
			}
			z[i] = v.Pos[2] / w
		}

		if kernel.IsBackface(screen[0], screen[1], screen[2]) {
			continue
		}

		tx0, ty0, tx1, ty1, ok := tileBounds(screen, f.tilesX, f.tilesY)
		if !ok {
			continue
		}

		cmd := kernel.Command[A]{
			ClipXY:   screen,
			ClipZ:    z,
			Original: interp.Triangle[A]{tr[0].Attrs, tr[1].Attrs, tr[2].Attrs},
		}
		infos = append(infos, triInfo{cmd: cmd, tx0: tx0, ty0: ty0, tx1: tx1, ty1: ty1})
		for ty := ty0; ty <= ty1; ty++ {
			for tx := tx0; tx <= tx1; tx++ {
				f.scratchCounts[ty*f.tilesX+tx]++
			}
		}
	}

	cmds := make([][]kernel.Command[A], len(f.scratchCounts))
	for idx, n := range f.scratchCounts {
		if n > 0 {
			cmds[idx] = make([]kernel.Command[A], 0, n)
		}
	}
	for _, info := range infos {
		for ty := info.ty0; ty <= info.ty1; ty++ {
			for tx := info.tx0; tx <= info.tx1; tx++ {
				idx := ty*f.tilesX + tx
				cmds[idx] = append(cmds[idx], info.cmd)
			}
		}
	}

	for idx, c := range cmds {
		if len(c) == 0 {
			continue
		}
		ty, tx := idx/f.tilesX, idx%f.tilesX
		slot := f.slots[ty][tx]
		tg := slot.Acquire()
		originX, originY := tx*tile.Size, ty*tile.Size
		c := c
		f.pool.Submit(func() {
			for _, cmd := range c {
				kernel.RasterTile(tg, originX, originY, cmd, frag)
			}
			slot.Release(tg)
		})
	}
}

// tileBounds computes the tile index range [tx0,tx1] x [ty0,ty1]
// touched by a screen-space triangle's bounding box, snapped outward to
// tile boundaries and clamped to the framebuffer. ok is false when the
// bounding box does not intersect the framebuffer at all.
func tileBounds(screen [3][2]float32, tilesX, tilesY int) (tx0, ty0, tx1, ty1 int, ok bool) {
	minX, maxX := screen[0][0], screen[0][0]
	minY, maxY := screen[0][1], screen[0][1]
	for _, p := range screen[1:] {
		minX, maxX = fmin(minX, p[0]), fmax(maxX, p[0])
		minY, maxY = fmin(minY, p[1]), fmax(maxY, p[1])
	}

	width, height := tilesX*tile.Size, tilesY*tile.Size
	loX := clampInt(int(math.Floor(float64(minX))), 0, width)
	hiX := clampInt(int(math.Ceil(float64(maxX))), 0, width)
	loY := clampInt(int(math.Floor(float64(minY))), 0, height)
	hiY := clampInt(int(math.Ceil(float64(maxY))), 0, height)

	if loX >= hiX || loY >= hiY {
		return 0, 0, 0, 0, false
	}

	tx0 = loX / tile.Size
	ty0 = loY / tile.Size
	tx1 = (hiX - 1) / tile.Size
	ty1 = (hiY - 1) / tile.Size
	return tx0, ty0, tx1, ty1, true
}

func fmin(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func fmax(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Byter is implemented by pixel types that can be exported to packed
// 4-byte RGBA rows via ToImage.
type Byter interface {
	Bytes() [4]byte
}

// ToImage flushes f and returns its color buffer as packed, row-major
// RGBA bytes (4 bytes per pixel, top row first).
func ToImage[P Byter](f *Frame[P]) []byte {
	buf := make([]byte, f.width*f.height*4)
	var wg sync.WaitGroup
	for ty := 0; ty < f.tilesY; ty++ {
		for tx := 0; tx < f.tilesX; tx++ {
			ty, tx := ty, tx
			slot := f.slots[ty][tx]
			wg.Add(1)
			tg := slot.Acquire()
			f.pool.Submit(func() {
				defer wg.Done()
				originX, originY := tx*tile.Size, ty*tile.Size
				for ly := 0; ly < tile.Size; ly++ {
					rowOff := (originY+ly)*f.width + originX
					for lx := 0; lx < tile.Size; lx++ {
						b := tg.PixelAt(lx, ly).Bytes()
						off := (rowOff + lx) * 4
						copy(buf[off:off+4], b[:])
					}
				}
				slot.Release(tg)
			})
		}
	}
	wg.Wait()
	return buf
}

// Map applies fn to every pixel of src and writes the result into dst.
// dst and src must have identical dimensions; Map panics otherwise.
// dst and src may be the same Frame.
func Map[P any](dst, src *Frame[P], fn func(P) P) {
	if dst.width != src.width || dst.height != src.height {
		panic("rastercore: Map requires matching Frame dimensions")
	}
	var wg sync.WaitGroup
	for ty := 0; ty < dst.tilesY; ty++ {
		for tx := 0; tx < dst.tilesX; tx++ {
			dstSlot := dst.slots[ty][tx]
			srcSlot := src.slots[ty][tx]
			wg.Add(1)
			dtg := dstSlot.Acquire()
			var stg *tile.TileGroup[P]
			sameSlot := dstSlot == srcSlot
			if sameSlot {
				stg = dtg
			} else {
				stg = srcSlot.Acquire()
			}
			dst.pool.Submit(func() {
				defer wg.Done()
				for i := range dtg.Color {
					dtg.Color[i] = fn(stg.Color[i])
				}
				if !sameSlot {
					srcSlot.Release(stg)
				}
				dstSlot.Release(dtg)
			})
		}
	}
	wg.Wait()
}
