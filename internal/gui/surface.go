package gui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/mazeviz/internal/render"
)

// Surface draws into a raylib render texture so revealed segments
// persist across frames. All methods must run between BeginTextureMode
// and EndTextureMode on the target.
type Surface struct {
	w, h     int
	tileSize int
	theme    *render.Theme
}

func newSurface(w, h, tileSize int, theme *render.Theme) *Surface {
	return &Surface{w: w, h: h, tileSize: tileSize, theme: theme}
}

func (s *Surface) Size() (int, int) { return s.w, s.h }

// SetPixel plots one pixel in the role's theme color. Raylib clips
// out-of-window coordinates itself.
func (s *Surface) SetPixel(x, y int, p render.Pixel) {
	var c rl.Color
	if p == render.PixelErase {
		c = toRaylib(s.theme.Background)
	} else {
		c = toRaylib(s.theme.Color(p))
	}
	rl.DrawPixel(int32(x), int32(y), c)
}

// DrawTile fills the tile interior with a shade derived from the cell
// value and draws the wall edges the 4-bit value encodes.
func (s *Surface) DrawTile(cell uint8, x, y int) {
	ts := int32(s.tileSize)
	bg := toRaylib(s.theme.Background)
	// subtle per-value shading keeps distinct cell values tellable
	shade := uint8(cell) * 4
	fill := rl.NewColor(bg.R+shade, bg.G+shade, bg.B+shade, 255)
	rl.DrawRectangle(int32(x), int32(y), ts, ts, fill)

	wall := toRaylib(s.theme.Wall)
	if cell&0x1 != 0 { // north
		rl.DrawLine(int32(x), int32(y), int32(x)+ts-1, int32(y), wall)
	}
	if cell&0x2 != 0 { // south
		rl.DrawLine(int32(x), int32(y)+ts-1, int32(x)+ts-1, int32(y)+ts-1, wall)
	}
	if cell&0x4 != 0 { // east
		rl.DrawLine(int32(x)+ts-1, int32(y), int32(x)+ts-1, int32(y)+ts-1, wall)
	}
	if cell&0x8 != 0 { // west
		rl.DrawLine(int32(x), int32(y), int32(x), int32(y)+ts-1, wall)
	}
}

// toRaylib converts a "#rrggbb" lipgloss color to a raylib color.
func toRaylib(c lipgloss.Color) rl.Color {
	hex := string(c)
	if len(hex) != 7 || hex[0] != '#' {
		return rl.Black
	}
	r, _ := strconv.ParseUint(hex[1:3], 16, 8)
	g, _ := strconv.ParseUint(hex[3:5], 16, 8)
	b, _ := strconv.ParseUint(hex[5:7], 16, 8)
	return rl.NewColor(uint8(r), uint8(g), uint8(b), 255)
}
