package window

import (
	"image/color"

	"PongBot/core"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer draws onto one frame's screen image.
type Renderer struct {
	screen *ebiten.Image
	fonts  *Fonts
}

func NewRenderer(screen *ebiten.Image, fonts *Fonts) *Renderer {
	return &Renderer{screen: screen, fonts: fonts}
}

func (r *Renderer) DrawRect(rect core.Rect, c color.Color) {
	vector.FillRect(r.screen, float32(rect.X), float32(rect.Y), float32(rect.Width), float32(rect.Height), c, false)
}

func (r *Renderer) DrawCircle(x, y, radius float64, c color.Color) {
	vector.FillCircle(r.screen, float32(x), float32(y), float32(radius), c, true)
}

func (r *Renderer) DrawText(s string, x, y, size float64, c color.Color, align core.Align) {
	face, scale := r.fonts.Face(size)

	op := &text.DrawOptions{}
	if align == core.AlignCenter {
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
	}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(r.screen, s, face, op)
}
