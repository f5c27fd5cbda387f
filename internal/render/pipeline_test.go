package render

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/san-kum/mazeviz/internal/geom"
	"github.com/san-kum/mazeviz/internal/maze"
)

// recordSurface logs every draw call in order.
type recordSurface struct {
	w, h  int
	calls []string
}

func (r *recordSurface) SetPixel(x, y int, p Pixel) {
	r.calls = append(r.calls, fmt.Sprintf("px %d %d %d", x, y, p))
}

func (r *recordSurface) DrawTile(cell uint8, x, y int) {
	r.calls = append(r.calls, fmt.Sprintf("tile %x %d %d", cell, x, y))
}

func (r *recordSurface) Size() (int, int) { return r.w, r.h }

func testMaze(t *testing.T, data string) *maze.Model {
	t.Helper()
	m, err := maze.Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return m
}

func testPipeline(t *testing.T) (*Pipeline, *recordSurface) {
	m := testMaze(t, "111\n111\n111\n0,0\n2,2\nEESS\n")
	l := DefaultLayout()
	w, h := l.WindowSize(m)
	s := &recordSurface{w: w, h: h}
	return NewPipeline(m, s, l), s
}

func TestRedrawAllIdempotent(t *testing.T) {
	p, s := testPipeline(t)

	p.RedrawAll(3)
	first := append([]string(nil), s.calls...)
	s.calls = s.calls[:0]
	p.RedrawAll(3)

	if !reflect.DeepEqual(first, s.calls) {
		t.Errorf("redraw produced a different call sequence: %d vs %d calls",
			len(first), len(s.calls))
	}
}

func TestRedrawAllPhaseOrder(t *testing.T) {
	p, s := testPipeline(t)
	p.RedrawAll(len(p.Maze.Path))

	phase := func(call string) int {
		switch {
		case call[:2] == "px" && call[len(call)-1] == '0'+byte(PixelMargin):
			return 0
		case call[:4] == "tile":
			return 1
		case call[len(call)-1] == '0'+byte(PixelPath):
			return 2
		default:
			return 3 // portal rings
		}
	}

	last := 0
	for i, call := range s.calls {
		ph := phase(call)
		if ph < last {
			t.Fatalf("call %d (%q) in phase %d after phase %d", i, call, ph, last)
		}
		last = ph
	}
	if last != 3 {
		t.Error("portal rings never drawn")
	}
}

func TestRedrawAllProgressGating(t *testing.T) {
	p, s := testPipeline(t)

	// progress <= 1 draws no path pixels
	for _, progress := range []int{0, 1} {
		s.calls = s.calls[:0]
		p.RedrawAll(progress)
		for _, call := range s.calls {
			if call[:2] == "px" && call[len(call)-1] == '0'+byte(PixelPath) {
				t.Errorf("progress %d drew path pixels", progress)
				break
			}
		}
	}
}

// pixelSurface records pixels per role for geometric checks.
type pixelSurface struct {
	w, h int
	px   map[Pixel]map[geom.Point]bool
}

func newPixelSurface(w, h int) *pixelSurface {
	return &pixelSurface{w: w, h: h, px: make(map[Pixel]map[geom.Point]bool)}
}

func (ps *pixelSurface) SetPixel(x, y int, p Pixel) {
	if ps.px[p] == nil {
		ps.px[p] = make(map[geom.Point]bool)
	}
	ps.px[p][geom.Point{X: x, Y: y}] = true
}

func (ps *pixelSurface) DrawTile(cell uint8, x, y int) {}
func (ps *pixelSurface) Size() (int, int)              { return ps.w, ps.h }

func TestDrawSegmentShortensFirst(t *testing.T) {
	m := testMaze(t, "111\n111\n111\n0,0\n2,2\nEESS\n")
	l := DefaultLayout()
	w, h := l.WindowSize(m)
	s := newPixelSurface(w, h)
	p := NewPipeline(m, s, l)

	p.DrawSegment(1, PixelPath)

	start := geom.CellCenter(m.Path[0], l.Margin, l.TileSize)
	end := geom.CellCenter(m.Path[1], l.Margin, l.TileSize)
	shortened := geom.OffsetTowards(start, end, l.PortalClearance)

	if s.px[PixelPath][start] {
		t.Errorf("true cell center %v should stay clear of the line", start)
	}
	if !s.px[PixelPath][shortened] {
		t.Errorf("shortened start %v not drawn", shortened)
	}
	// nothing to the portal side of the shortened start (minus the
	// thickness halo)
	halo := l.Thickness / 2
	for pt := range s.px[PixelPath] {
		if pt.X < shortened.X-halo {
			t.Errorf("pixel %v drawn inside the portal clearance", pt)
		}
	}
	// the far endpoint is not the last segment here and stays exact
	if !s.px[PixelPath][end] {
		t.Errorf("segment must still reach the far cell center %v", end)
	}
}

func TestDrawSegmentInteriorFullLength(t *testing.T) {
	m := testMaze(t, "111\n111\n111\n0,0\n2,2\nEESS\n")
	l := DefaultLayout()
	w, h := l.WindowSize(m)
	s := newPixelSurface(w, h)
	p := NewPipeline(m, s, l)

	p.DrawSegment(2, PixelPath)

	a := geom.CellCenter(m.Path[1], l.Margin, l.TileSize)
	b := geom.CellCenter(m.Path[2], l.Margin, l.TileSize)
	if !s.px[PixelPath][a] || !s.px[PixelPath][b] {
		t.Error("interior segment must reach both true cell centers")
	}
}

func TestDrawSegmentTwoPointPath(t *testing.T) {
	m := testMaze(t, "11\n0,0\n0,1\nE\n")
	l := DefaultLayout()
	w, h := l.WindowSize(m)
	s := newPixelSurface(w, h)
	p := NewPipeline(m, s, l)

	// single segment: index 1 is both first and last, shortened at
	// both ends
	p.DrawSegment(1, PixelPath)

	a := geom.CellCenter(m.Path[0], l.Margin, l.TileSize)
	b := geom.CellCenter(m.Path[1], l.Margin, l.TileSize)
	if s.px[PixelPath][a] {
		t.Error("two-point path: start cell center should be clear")
	}
	if s.px[PixelPath][b] {
		t.Error("two-point path: end cell center should be clear")
	}
}

func TestDrawSegmentIndexOutOfRange(t *testing.T) {
	m := testMaze(t, "11\n0,0\n0,1\nE\n")
	l := DefaultLayout()
	s := newPixelSurface(100, 100)
	p := NewPipeline(m, s, l)

	p.DrawSegment(0, PixelPath)
	p.DrawSegment(2, PixelPath)
	p.DrawSegment(-1, PixelPath)

	if len(s.px[PixelPath]) != 0 {
		t.Error("out-of-range segment indices must draw nothing")
	}
}
