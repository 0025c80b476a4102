package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappybird-tui/internal/config"
	"github.com/vovakirdan/flappybird-tui/internal/core"
	"github.com/vovakirdan/flappybird-tui/internal/game"
	"github.com/vovakirdan/flappybird-tui/internal/platform/tui"
)

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappybird",
	})

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("could not load config", "error", err)
	}

	if flagFPS <= 0 {
		logger.Fatal("fps must be positive", "fps", flagFPS)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Probe the terminal; fall back to a classic 80x24 when not a TTY.
	runtimeCfg := core.DefaultRuntimeConfig()
	runtimeCfg.TickRate = flagFPS
	runtimeCfg.Seed = seed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtimeCfg.ScreenW = w
		runtimeCfg.ScreenH = h
	} else {
		logger.Warn("could not detect terminal size, using defaults", "error", termErr)
	}

	session := game.NewSession(gameCfg, seed)

	if runErr := tui.Run(session, runtimeCfg); runErr != nil {
		logger.Fatal("error running game", "error", runErr)
	}

	logger.Info("thanks for playing", "score", session.Score(), "seed", seed)
}
