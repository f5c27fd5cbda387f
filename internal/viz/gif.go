package viz

import (
	"image"
	"image/color"
	"image/gif"
	"os"
	"strconv"

	"github.com/san-kum/mazeviz/internal/render"
)

var gifPixelMap = [4][2]int{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// gifRoles fixes the palette order; index 0 is the theme background,
// roles follow at 1..n.
var gifRoles = []render.Pixel{
	render.PixelMargin,
	render.PixelWall,
	render.PixelPath,
	render.PixelEntry,
	render.PixelExit,
	render.PixelErase,
}

func (m *Model) captureFrame() {
	charW, charH := 8, 16
	imgW, imgH := m.canvas.Width*charW, m.canvas.Height*charH

	palette := color.Palette{hexToColor(string(m.theme.Background))}
	roleIndex := make(map[render.Pixel]uint8, len(gifRoles))
	for i, role := range gifRoles {
		palette = append(palette, hexToColor(string(m.theme.Color(role))))
		roleIndex[role] = uint8(i + 1)
	}

	img := image.NewPaletted(image.Rect(0, 0, imgW, imgH), palette)

	for row := 0; row < m.canvas.Height; row++ {
		for col := 0; col < m.canvas.Width; col++ {
			r := m.canvas.Grid[row][col]
			if r <= 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)
			idx := roleIndex[m.canvas.Class[row][col]]

			dotW, dotH := charW/2, charH/4
			baseX, baseY := col*charW, row*charH
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&gifPixelMap[dy][dx] == 0 {
						continue
					}
					for py := 0; py < dotH; py++ {
						for px := 0; px < dotW; px++ {
							img.SetColorIndex(baseX+dx*dotW+px, baseY+dy*dotH+py, idx)
						}
					}
				}
			}
		}
	}

	m.frames = append(m.frames, img)
}

func (m *Model) saveGIF() {
	if len(m.frames) == 0 {
		return
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range m.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, 2)
	}
	f, err := os.Create("mazeviz.gif")
	if err != nil {
		return
	}
	defer f.Close()
	gif.EncodeAll(f, &anim)
}

// hexToColor parses "#rrggbb"; anything else comes back black.
func hexToColor(hex string) color.Color {
	if len(hex) != 7 || hex[0] != '#' {
		return color.Black
	}
	r, err1 := strconv.ParseUint(hex[1:3], 16, 8)
	g, err2 := strconv.ParseUint(hex[3:5], 16, 8)
	b, err3 := strconv.ParseUint(hex[5:7], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return color.Black
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}
