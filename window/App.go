package window

import (
	"image/color"

	"PongBot/core"
	"github.com/hajimehoshi/ebiten/v2"
)

var background = color.RGBA{A: 0xff}

// App adapts the scene controller to ebiten's Update/Draw/Layout loop.
type App struct {
	game  *core.Game
	input core.Input
	clock core.Clock
	fonts *Fonts
}

func NewApp(game *core.Game, fonts *Fonts) *App {
	return &App{
		game:  game,
		input: NewInput(),
		clock: core.FixedClock{Step: 1 / float64(ebiten.TPS())},
		fonts: fonts,
	}
}

func (a *App) Update() error {
	a.game.Update(a.clock.Elapsed(), a.input)
	if a.game.Closed() {
		return ebiten.Termination
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	a.game.Render(NewRenderer(screen, a.fonts))
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return core.WindowWidth, core.WindowHeight
}

// Run opens the fixed-size window and blocks until the game closes.
func Run(game *core.Game, fontPath string) error {
	ebiten.SetWindowSize(core.WindowWidth, core.WindowHeight)
	ebiten.SetWindowTitle(core.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(NewApp(game, NewFonts(fontPath))); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}
