package render

import (
	"strings"
	"testing"
)

func TestCanvasSetAndErase(t *testing.T) {
	c := NewCanvas(16, 16, 8)

	c.SetPixel(3, 5, PixelPath)
	if c.Grid[1][1] == 0x2800 {
		t.Fatal("pixel not set")
	}
	if c.Class[1][1] != PixelPath {
		t.Errorf("class = %d, want PixelPath", c.Class[1][1])
	}

	c.SetPixel(3, 5, PixelErase)
	if c.Grid[1][1] != 0x2800 {
		t.Error("erase did not clear the dot")
	}
	if c.Class[1][1] != PixelErase {
		t.Error("empty cell should fall back to the erase class")
	}
}

func TestCanvasEraseKeepsSiblingDots(t *testing.T) {
	c := NewCanvas(8, 8, 8)
	c.SetPixel(0, 0, PixelPath)
	c.SetPixel(1, 0, PixelPath)

	c.SetPixel(0, 0, PixelErase)
	if c.Grid[0][0] == 0x2800 {
		t.Error("erasing one dot cleared the whole cell")
	}
	if c.Class[0][0] != PixelPath {
		t.Error("cell with remaining dots keeps its class")
	}
}

func TestCanvasClipping(t *testing.T) {
	c := NewCanvas(8, 8, 8)
	c.SetPixel(-1, 0, PixelPath)
	c.SetPixel(0, -4, PixelPath)
	c.SetPixel(100, 0, PixelPath)
	c.SetPixel(0, 100, PixelPath)

	for row := range c.Grid {
		for col := range c.Grid[row] {
			if c.Grid[row][col] != 0x2800 {
				t.Fatalf("out-of-range plot landed at cell (%d,%d)", row, col)
			}
		}
	}
}

func TestCanvasSize(t *testing.T) {
	c := NewCanvas(33, 18, 8)
	w, h := c.Size()
	if w != 33 || h != 18 {
		t.Errorf("Size() = %d,%d, want 33,18", w, h)
	}
	// cells round up
	if c.Width != 17 || c.Height != 5 {
		t.Errorf("cells = %dx%d, want 17x5", c.Width, c.Height)
	}
}

func TestCanvasDrawTileEdges(t *testing.T) {
	c := NewCanvas(8, 8, 8)

	// north + west walls only
	c.DrawTile(0x1|0x8, 0, 0)

	has := func(x, y int) bool {
		return c.Grid[y/4][x/2]&rune(pixelMap[y%4][x%2]) != 0
	}
	for i := 0; i < 8; i++ {
		if !has(i, 0) {
			t.Errorf("north wall missing pixel (%d,0)", i)
		}
		if !has(0, i) {
			t.Errorf("west wall missing pixel (0,%d)", i)
		}
		if i > 0 && has(i, 7) {
			t.Errorf("south wall pixel (%d,7) should be empty", i)
		}
		if i > 0 && has(7, i) {
			t.Errorf("east wall pixel (7,%d) should be empty", i)
		}
	}
}

func TestCanvasRenderLineCount(t *testing.T) {
	c := NewCanvas(16, 16, 8)
	out := c.String()
	if n := strings.Count(out, "\n"); n != c.Height {
		t.Errorf("String() has %d lines, want %d", n, c.Height)
	}
}
