package core

import "image/color"

// Key is one of the logical keys the game reads.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyStart // start and restart
	KeyQuit
)

// Input reports the keyboard state sampled for the current frame.
type Input interface {
	IsKeyPressed(k Key) bool
	// CloseRequested is true when the window or terminal asked to close this frame.
	CloseRequested() bool
}

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Renderer draws primitives in window coordinates.
type Renderer interface {
	DrawRect(r Rect, c color.Color)
	// DrawCircle takes the circle's center.
	DrawCircle(x, y, radius float64, c color.Color)
	// DrawText places text at (x, y). With AlignCenter the point is the text's center,
	// otherwise its top-left corner.
	DrawText(text string, x, y, size float64, c color.Color, align Align)
}

// Rand is the part of *rand.Rand the game draws from.
type Rand interface {
	Float64() float64
}

type Cue int

const (
	CuePaddle Cue = iota
	CueWall
	CueScore
	CueGameOver
)

// Sound plays short cues. Implementations must not block the frame.
type Sound interface {
	Play(c Cue)
}

type nopSound struct{}

func (nopSound) Play(Cue) {}
