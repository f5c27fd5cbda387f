package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a Braille-cell Surface for terminal frontends. Pixels are
// sub-pixel dots packed 2x4 per character cell; each cell additionally
// remembers the role of the last pixel drawn into it so the renderer
// can color it from the active theme.
type Canvas struct {
	Width, Height int // character cells
	subW, subH    int // drawable pixels
	tileSize      int
	Grid          [][]rune
	Class         [][]Pixel
}

// NewCanvas creates a canvas covering w x h pixels. tileSize is the
// tile edge length in pixels, used by DrawTile.
func NewCanvas(w, h, tileSize int) *Canvas {
	c := &Canvas{
		Width:    (w + 1) / 2,
		Height:   (h + 3) / 4,
		subW:     w,
		subH:     h,
		tileSize: tileSize,
		Grid:     make([][]rune, (h+3)/4),
		Class:    make([][]Pixel, (h+3)/4),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, c.Width)
		c.Class[i] = make([]Pixel, c.Width)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800 // Empty braille char
			c.Class[i][j] = PixelErase
		}
	}
	return c
}

// Size reports the drawable area in pixels.
func (c *Canvas) Size() (int, int) { return c.subW, c.subH }

// TileSize reports the tile edge length the canvas was built for.
func (c *Canvas) TileSize() int { return c.tileSize }

// SetPixel plots one pixel. The erase role clears the dot instead of
// setting it, restoring the background. Out-of-range coordinates are
// clipped.
func (c *Canvas) SetPixel(x, y int, p Pixel) {
	if x < 0 || y < 0 {
		return
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	subX := x % 2
	subY := y % 4

	if p == PixelErase {
		mask := ^rune(pixelMap[subY][subX])
		c.Grid[row][col] &= mask
		if c.Grid[row][col] < 0x2800 {
			c.Grid[row][col] = 0x2800
		}
		if c.Grid[row][col] == 0x2800 {
			c.Class[row][col] = PixelErase
		}
		return
	}

	c.Grid[row][col] |= rune(pixelMap[subY][subX])
	c.Class[row][col] = p
}

// DrawTile draws the wall edges encoded by a 4-bit cell value for the
// tile whose top-left pixel is (x, y). Bit 0 is the north wall, bit 1
// south, bit 2 east, bit 3 west.
func (c *Canvas) DrawTile(cell uint8, x, y int) {
	ts := c.tileSize
	if cell&0x1 != 0 { // north
		for i := 0; i < ts; i++ {
			c.SetPixel(x+i, y, PixelWall)
		}
	}
	if cell&0x2 != 0 { // south
		for i := 0; i < ts; i++ {
			c.SetPixel(x+i, y+ts-1, PixelWall)
		}
	}
	if cell&0x4 != 0 { // east
		for i := 0; i < ts; i++ {
			c.SetPixel(x+ts-1, y+i, PixelWall)
		}
	}
	if cell&0x8 != 0 { // west
		for i := 0; i < ts; i++ {
			c.SetPixel(x, y+i, PixelWall)
		}
	}
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
			c.Class[i][j] = PixelErase
		}
	}
}

// Render returns the canvas as themed terminal text.
func (c *Canvas) Render(t Theme) string {
	styles := map[Pixel]lipgloss.Style{
		PixelMargin: lipgloss.NewStyle().Foreground(t.Margin),
		PixelWall:   lipgloss.NewStyle().Foreground(t.Wall),
		PixelPath:   lipgloss.NewStyle().Foreground(t.Path),
		PixelEntry:  lipgloss.NewStyle().Foreground(t.Entry),
		PixelExit:   lipgloss.NewStyle().Foreground(t.Exit),
		PixelErase:  lipgloss.NewStyle().Foreground(t.Muted),
	}

	var b strings.Builder
	for row := range c.Grid {
		// batch runs of equal class to keep escape sequences down
		runStart := 0
		for col := 1; col <= c.Width; col++ {
			if col < c.Width && c.Class[row][col] == c.Class[row][runStart] {
				continue
			}
			run := string(c.Grid[row][runStart:col])
			b.WriteString(styles[c.Class[row][runStart]].Render(run))
			runStart = col
		}
		b.WriteString("\n")
	}
	return b.String()
}

// String renders the canvas without color, one line per cell row.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}
