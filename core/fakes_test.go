package core

import (
	"image/color"
	"io"
	"os"
	"testing"

	"PongBot/logger"
)

func TestMain(m *testing.M) {
	logger.Log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

type fakeInput struct {
	down    map[Key]bool
	closing bool
}

func newInput(keys ...Key) *fakeInput {
	in := &fakeInput{down: map[Key]bool{}}
	for _, k := range keys {
		in.down[k] = true
	}
	return in
}

func (f *fakeInput) IsKeyPressed(k Key) bool { return f.down[k] }
func (f *fakeInput) CloseRequested() bool    { return f.closing }

// seqRand replays values, repeating the last one once exhausted.
type seqRand struct {
	values []float64
	i      int
}

func (r *seqRand) Float64() float64 {
	v := r.values[r.i]
	if r.i < len(r.values)-1 {
		r.i++
	}
	return v
}

type drawnText struct {
	text  string
	x, y  float64
	color color.Color
	align Align
}

type recordRenderer struct {
	rects   []Rect
	circles int
	texts   []drawnText
}

func (r *recordRenderer) DrawRect(rect Rect, c color.Color) { r.rects = append(r.rects, rect) }

func (r *recordRenderer) DrawCircle(x, y, radius float64, c color.Color) { r.circles++ }

func (r *recordRenderer) DrawText(s string, x, y, size float64, c color.Color, align Align) {
	r.texts = append(r.texts, drawnText{text: s, x: x, y: y, color: c, align: align})
}

type recordSound struct {
	cues []Cue
}

func (s *recordSound) Play(c Cue) { s.cues = append(s.cues, c) }

func (s *recordSound) count(c Cue) int {
	n := 0
	for _, got := range s.cues {
		if got == c {
			n++
		}
	}
	return n
}
