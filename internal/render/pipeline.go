package render

import (
	"github.com/san-kum/mazeviz/internal/geom"
	"github.com/san-kum/mazeviz/internal/maze"
	"github.com/san-kum/mazeviz/internal/raster"
)

// Layout defaults, matching the classic 32px tile skin.
const (
	DefaultTileSize        = 32
	DefaultMargin          = 2
	DefaultThickness       = 4
	DefaultPortalOuter     = 10
	DefaultPortalInner     = 7
	DefaultPortalClearance = 12
)

// Layout fixes the pixel geometry of one rendered maze.
type Layout struct {
	Margin          int
	TileSize        int
	Thickness       int
	PortalInner     int
	PortalOuter     int
	PortalClearance int
}

// DefaultLayout returns the default pixel geometry.
func DefaultLayout() Layout {
	return Layout{
		Margin:          DefaultMargin,
		TileSize:        DefaultTileSize,
		Thickness:       DefaultThickness,
		PortalInner:     DefaultPortalInner,
		PortalOuter:     DefaultPortalOuter,
		PortalClearance: DefaultPortalClearance,
	}
}

// WindowSize reports the window dimensions for a maze under this
// layout.
func (l Layout) WindowSize(m *maze.Model) (w, h int) {
	return l.Margin*2 + m.Cols()*l.TileSize, l.Margin*2 + m.Rows()*l.TileSize
}

// Pipeline composites the full maze scene onto a Surface and draws the
// individual path segments the animator reveals or erases.
type Pipeline struct {
	Maze    *maze.Model
	Surface Surface
	Layout  Layout
}

// NewPipeline wires a pipeline for one loaded maze.
func NewPipeline(m *maze.Model, s Surface, l Layout) *Pipeline {
	return &Pipeline{Maze: m, Surface: s, Layout: l}
}

// DrawSegment draws the path segment ending at path[index] in the
// given pixel role. The first segment of the path is shortened at its
// start and the last at its end by the portal clearance, so the line
// never runs into the portal rings; for a two-point path both rules
// apply to the single segment. Interior segments join at exact cell
// centers.
func (p *Pipeline) DrawSegment(index int, px Pixel) {
	pth := p.Maze.Path
	if index < 1 || index >= len(pth) {
		return
	}

	l := p.Layout
	start := geom.CellCenter(pth[index-1], l.Margin, l.TileSize)
	end := geom.CellCenter(pth[index], l.Margin, l.TileSize)

	if index == 1 {
		start = geom.OffsetTowards(start, end, l.PortalClearance)
	}
	if index == len(pth)-1 {
		end = geom.OffsetTowards(end, start, l.PortalClearance)
	}

	raster.Line(start, end, l.Thickness, func(x, y int) {
		p.Surface.SetPixel(x, y, px)
	})
}

// RedrawAll repaints the whole scene for the given animation progress:
// margin strips, tile grid, revealed path segments, portal rings. Each
// phase is idempotent and the order is an invariant.
func (p *Pipeline) RedrawAll(progress int) {
	p.fillMargins()
	p.drawTiles()
	for i := 1; i < progress; i++ {
		p.DrawSegment(i, PixelPath)
	}
	p.drawPortal(p.Maze.Entry, PixelEntry)
	p.drawPortal(p.Maze.Exit, PixelExit)
}

// fillMargins paints the four margin strips. The corners are covered
// twice, which is harmless for a constant fill.
func (p *Pipeline) fillMargins() {
	w, h := p.Surface.Size()
	m := p.Layout.Margin

	for y := 0; y < m; y++ {
		for x := 0; x < w; x++ {
			p.Surface.SetPixel(x, y, PixelMargin)
			p.Surface.SetPixel(x, h-1-y, PixelMargin)
		}
	}
	for x := 0; x < m; x++ {
		for y := 0; y < h; y++ {
			p.Surface.SetPixel(x, y, PixelMargin)
			p.Surface.SetPixel(w-1-x, y, PixelMargin)
		}
	}
}

func (p *Pipeline) drawTiles() {
	l := p.Layout
	for row := range p.Maze.Grid {
		for col, cell := range p.Maze.Grid[row] {
			p.Surface.DrawTile(cell&0xF, l.Margin+col*l.TileSize, l.Margin+row*l.TileSize)
		}
	}
}

func (p *Pipeline) drawPortal(pos geom.GridCoord, px Pixel) {
	l := p.Layout
	center := geom.CellCenter(pos, l.Margin, l.TileSize)
	raster.Ring(center, l.PortalInner, l.PortalOuter, func(x, y int) {
		p.Surface.SetPixel(x, y, px)
	})
}
