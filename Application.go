package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"PongBot/config"
	"PongBot/core"
	"PongBot/logger"
	"PongBot/sound"
	"PongBot/terminal"
	"PongBot/window"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := config.Flags()
	if err := flags.Parse(args); err != nil {
		return err
	}

	settings, err := config.Load(afero.NewOsFs(), "", flags)
	if err != nil {
		return err
	}

	if err := logger.Log.Init(settings.LogDir); err != nil {
		return err
	}
	if settings.Frontend == config.FrontendTerminal {
		logger.Log.SetConsole(false)
	}

	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Log.InfoFields(logrus.Fields{
		"frontend": settings.Frontend,
		"seed":     seed,
		"maxScore": settings.MaxScore,
		"launch":   settings.LaunchPolicy,
	}, logger.ConfigLoadedMsg)

	var opts []core.Option
	if settings.Sound {
		player := sound.New(-1)
		if err := player.Init(); err != nil {
			logger.Log.WarnFields(logrus.Fields{"error": err.Error()}, logger.SoundInitFailedMsg)
		} else {
			defer player.Close()
			opts = append(opts, core.WithSound(player))
		}
	}

	game := core.NewGame(settings.Game(), rand.New(rand.NewSource(seed)), opts...)

	switch settings.Frontend {
	case config.FrontendTerminal:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return terminal.Run(ctx, game, settings.FrameInterval)
	default:
		return window.Run(game, settings.FontPath)
	}
}
