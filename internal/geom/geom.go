package geom

import "math"

// GridCoord identifies a maze cell by row and column.
type GridCoord struct {
	Row, Col int
}

// Point is a pixel location in window space.
type Point struct {
	X, Y int
}

// CellCenter maps a grid cell to the pixel at its center.
func CellCenter(pos GridCoord, margin, tileSize int) Point {
	return Point{
		X: margin + pos.Col*tileSize + tileSize/2,
		Y: margin + pos.Row*tileSize + tileSize/2,
	}
}

// OffsetTowards returns the point distance pixels from p0 along the
// direction of p1. Coordinates are truncated to integers, so offsetting
// back and forth is not exactly reversible. A zero-length direction
// returns p0 unchanged.
func OffsetTowards(p0, p1 Point, distance int) Point {
	dx := float64(p1.X - p0.X)
	dy := float64(p1.Y - p0.Y)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return p0
	}
	return Point{
		X: p0.X + int(float64(distance)*dx/length),
		Y: p0.Y + int(float64(distance)*dy/length),
	}
}
