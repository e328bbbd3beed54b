package window

import (
	"PongBot/core"
	"github.com/hajimehoshi/ebiten/v2"
)

// keyBindings lists the physical keys behind each logical key.
var keyBindings = map[core.Key][]ebiten.Key{
	core.KeyUp:    {ebiten.KeyW, ebiten.KeyUp},
	core.KeyDown:  {ebiten.KeyS, ebiten.KeyDown},
	core.KeyStart: {ebiten.KeySpace},
	core.KeyQuit:  {ebiten.KeyQ},
}

// Input reads the keyboard through ebiten. pressed is swappable in tests.
type Input struct {
	pressed func(ebiten.Key) bool
	closing func() bool
}

func NewInput() *Input {
	return &Input{pressed: ebiten.IsKeyPressed, closing: ebiten.IsWindowBeingClosed}
}

func (in *Input) IsKeyPressed(k core.Key) bool {
	for _, key := range keyBindings[k] {
		if in.pressed(key) {
			return true
		}
	}
	return false
}

func (in *Input) CloseRequested() bool { return in.closing() }
