// Package render draws the maze scene through an abstract pixel
// surface.
//
// The package is organized around three pieces:
//
//   - [Surface]: the draw-primitive contract a frontend implements
//     (set a pixel, draw a tile, report the drawable size)
//   - [Pipeline]: deterministic full-scene redraw in a fixed
//     compositing order plus single-segment drawing for the animator
//   - [Canvas]: a Braille-cell Surface for terminal frontends
//
// Pixels are opaque role handles ([PixelPath], [PixelErase], ...);
// each Surface maps roles to concrete colors via the active theme, so
// the pipeline never touches color values directly.
//
// # Compositing order
//
// RedrawAll always draws margin strips, then the tile grid, then the
// revealed path segments, then the entry/exit portal rings. The order
// is load-bearing: tiles drawn after the path would hide it, and the
// path drawn after the rings would overlap them.
package render
