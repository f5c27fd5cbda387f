package render

// Pixel is an opaque role handle for a drawn pixel. Surfaces resolve
// roles to concrete colors through the active theme; PixelErase
// restores the background.
type Pixel int

const (
	PixelMargin Pixel = iota
	PixelWall
	PixelPath
	PixelErase
	PixelEntry
	PixelExit
)

// Surface is the draw-primitive contract provided by a frontend.
// Implementations tolerate out-of-range coordinates by clipping.
type Surface interface {
	// SetPixel plots one pixel at (x, y) in the given role.
	SetPixel(x, y int, p Pixel)

	// DrawTile renders the tile for a 4-bit cell value with its
	// top-left corner at (x, y).
	DrawTile(cell uint8, x, y int)

	// Size reports the drawable width and height in pixels.
	Size() (w, h int)
}
