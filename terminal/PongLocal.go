package terminal

import (
	"context"
	"fmt"
	"time"

	"PongBot/core"
	"PongBot/logger"
	"github.com/gdamore/tcell"
)

func initScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	if e := screen.Init(); e != nil {
		return nil, fmt.Errorf("init screen: %w", e)
	}

	defaultStyle := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite)
	screen.SetStyle(defaultStyle)
	return screen, nil
}

// Run plays game in the current terminal, one frame per interval, until the game
// closes or ctx is done.
func Run(ctx context.Context, game *core.Game, interval time.Duration) error {
	screen, err := initScreen()
	if err != nil {
		logger.Log.Error(logger.TerminalInitFailedMsg)
		return err
	}
	defer screen.Fini()

	return Loop(ctx, screen, game, NewInput(nil), core.NewWallClock(nil), interval)
}

// Loop drives game on an already initialized screen.
func Loop(ctx context.Context, screen tcell.Screen, game *core.Game, in *Input, clock core.Clock, interval time.Duration) error {
	done := make(chan struct{})
	defer close(done)
	in.Listen(screen, done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for !game.Closed() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		if in.Drain() {
			screen.Sync()
		}
		game.Update(clock.Elapsed(), in)
		drawView(screen, game)
	}
	return nil
}

func drawView(screen tcell.Screen, game *core.Game) {
	screen.Clear()
	game.Render(NewRenderer(screen))
	screen.Show()
}
