package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snek/internal/core"
	"github.com/vovakirdan/snek/internal/platform/tui"
	"github.com/vovakirdan/snek/internal/snake"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in the terminal",
	Long: `Start a game of snake.

Controls:
  Arrows/WASD/HJKL  - Steer
  Space/R           - Restart (once the snake is gone)
  P/Esc             - Pause
  ?                 - Show all keys
  Q/Ctrl+C          - Quit

Logs are discarded unless --log-file is given.

Examples:
  snek play
  snek play --speed 20
  snek play --config ./my-snake.yaml --log-file snek.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The alternate screen owns stdout
	logger, closeLog, err := openLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game, err := snake.New(cfg.Settings(),
		snake.WithSeed(seed),
		snake.WithObserver(tui.NewLogObserver(logger)),
	)
	if err != nil {
		return err
	}
	logger.Debug("config loaded",
		"board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		"move_every", cfg.MoveThreshold(),
		"seed", seed,
	)

	return tui.Run(game, tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:      width,
			ScreenH:      height,
			TickInterval: cfg.Loop.TickInterval,
			Seed:         seed,
		},
		Render: cfg.RenderOptions(),
		Logger: logger,
	})
}
