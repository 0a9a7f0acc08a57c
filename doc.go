// Package rastercore implements a tile-based, parallel, depth-buffered
// software triangle rasterizer core.
//
// # Overview
//
// A Frame owns a grid of 32x32-pixel tiles, each subdivided into sixteen
// 8x8 groups. Submitted triangles are perspective-divided, back-face
// culled, and binned against the tiles their screen-space bounding box
// touches; each tile's work is dispatched to a worker goroutine that
// owns that tile's color and depth storage for the duration of the
// dispatch. Coverage and depth tests run per 8x8 group using the
// fixed-size lane types in the wide package, which lean on the Go
// compiler's auto-vectorizer rather than unsafe or assembly.
//
// # Quick Start
//
//	import "github.com/gogpu/rastercore"
//
//	f := rastercore.NewFrame(64, 64, rastercore.RGBA8{})
//	rastercore.Raster(f, triangles, frag)
//	f.Flush()
//	pixels := rastercore.ToImage(f)
//
// # Architecture
//
// The module is organized into:
//   - wide: fixed-width SIMD-shaped lane types (F4, F64) and bitmask ops
//   - interp: generic per-vertex attribute interpolation
//   - bary: barycentric coordinate setup and per-lane evaluation
//   - tile: tile/group storage, coverage iteration, and the OwnedSlot
//     ownership-handoff primitive
//   - kernel: the per-tile-per-triangle rasterization kernel
//   - rastercore (this package): Frame, the tile scheduler, and the
//     public drawing API
//
// # Coordinate System
//
// Screen space has its origin at the top-left, X increasing right and Y
// increasing down. Depth is in [0, 1], with 0 the near plane; occluded
// fragments (depth >= the stored value) are dropped.
//
// # Concurrency
//
// Tiles are processed independently and concurrently; there is no
// ordering guarantee between tiles. Commands that land on the same
// tile are always processed in the order they were submitted, because
// each tile's storage is owned by exactly one worker at a time (see
// tile.OwnedSlot). Raster and Clear dispatch work and return without
// waiting for it; Flush, ToImage, and Map wait for every tile to settle
// before reading or returning.
package rastercore
