// Package raster implements integer line and ring rasterization over an
// injected pixel primitive. Clipping is the primitive's problem.
package raster

import "github.com/san-kum/mazeviz/internal/geom"

// PutFunc plots a single pixel.
type PutFunc func(x, y int)

// Line draws the segment from p0 to p1 inclusive using Bresenham's
// algorithm. For thickness > 1 every stepped point becomes a filled
// square of side 2*(thickness/2)+1, so even thicknesses truncate
// asymmetrically.
func Line(p0, p1 geom.Point, thickness int, put PutFunc) {
	x0, y0 := p0.X, p0.Y
	x1, y1 := p1.X, p1.Y

	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy

	for {
		if thickness <= 1 {
			put(x0, y0)
		} else {
			t := thickness / 2
			for oy := -t; oy <= t; oy++ {
				for ox := -t; ox <= t; ox++ {
					put(x0+ox, y0+oy)
				}
			}
		}

		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Ring plots every pixel whose squared distance from center falls in
// [inner², outer²].
func Ring(center geom.Point, inner, outer int, put PutFunc) {
	inner2 := inner * inner
	outer2 := outer * outer
	for dy := -outer; dy <= outer; dy++ {
		for dx := -outer; dx <= outer; dx++ {
			d2 := dx*dx + dy*dy
			if d2 >= inner2 && d2 <= outer2 {
				put(center.X+dx, center.Y+dy)
			}
		}
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
