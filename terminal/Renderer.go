package terminal

import (
	"image/color"
	"math"

	"PongBot/core"
	"github.com/gdamore/tcell"
	"github.com/mattn/go-runewidth"
)

const BallSymbol = 0x25CF   // 球符號
const PaddleSymbol = 0x2588 // 球拍符號

// Renderer maps the 1280x720 world onto the terminal's cell grid.
type Renderer struct {
	screen tcell.Screen
	cols   int
	rows   int
}

func NewRenderer(screen tcell.Screen) *Renderer {
	cols, rows := screen.Size()
	return &Renderer{screen: screen, cols: cols, rows: rows}
}

func (r *Renderer) col(x float64) int {
	return int(math.Floor(x * float64(r.cols) / core.WindowWidth))
}

func (r *Renderer) row(y float64) int {
	return int(math.Floor(y * float64(r.rows) / core.WindowHeight))
}

func style(c color.Color) tcell.Style {
	cr, cg, cb, _ := c.RGBA()
	fg := tcell.NewRGBColor(int32(cr>>8), int32(cg>>8), int32(cb>>8))
	return tcell.StyleDefault.Foreground(fg).Background(tcell.ColorBlack)
}

func (r *Renderer) DrawRect(rect core.Rect, c color.Color) {
	left, top := r.col(rect.X), r.row(rect.Y)
	right, bottom := r.col(rect.Right()), r.row(rect.Bottom())
	//至少要畫一格
	if right <= left {
		right = left + 1
	}
	if bottom <= top {
		bottom = top + 1
	}
	st := style(c)
	for row := top; row < bottom; row++ {
		for col := left; col < right; col++ {
			r.screen.SetContent(col, row, PaddleSymbol, nil, st)
		}
	}
}

func (r *Renderer) DrawCircle(x, y, radius float64, c color.Color) {
	r.screen.SetContent(r.col(x), r.row(y), BallSymbol, nil, style(c))
}

// DrawText ignores size; a terminal cell has one glyph size.
func (r *Renderer) DrawText(s string, x, y, size float64, c color.Color, align core.Align) {
	col, row := r.col(x), r.row(y)
	if align == core.AlignCenter {
		col -= runewidth.StringWidth(s) / 2
	}
	st := style(c)
	for _, ch := range s {
		r.screen.SetContent(col, row, ch, nil, st)
		col += runewidth.RuneWidth(ch)
	}
}
