package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/snek/internal/core"
	"github.com/vovakirdan/snek/internal/platform/tui"
	"github.com/vovakirdan/snek/internal/snake"
)

var (
	flagTicks int
	flagMoves string
	flagDelta time.Duration
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game and print the result",
	Long: `Run the simulation without a terminal UI for a fixed number of ticks,
then print the board and a YAML snapshot of the game state.

Each character of --moves is the input for one tick:
  u d l r   - Steer
  p         - Toggle pause
  x         - Restart
  .         - No input
Ticks past the end of --moves get no input.

Each tick advances the clock by --delta, which defaults to one snake move.

Examples:
  snek sim --ticks 20
  snek sim --seed 3 --moves uuuurrrrdddd --ticks 12
  snek sim --width 10 --height 10 --delta 15ms --ticks 500`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 100, "Number of ticks to simulate")
	simCmd.Flags().StringVar(&flagMoves, "moves", "", "Scripted input, one character per tick")
	simCmd.Flags().DurationVar(&flagDelta, "delta", 0, "Elapsed time per tick (0 = one move per tick)")
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	frames, err := parseMoves(flagMoves)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	delta := flagDelta
	if delta <= 0 {
		delta = cfg.MoveThreshold()
	}

	game, err := snake.New(cfg.Settings(),
		snake.WithSeed(seed),
		snake.WithObserver(tui.NewLogObserver(logger)),
	)
	if err != nil {
		return err
	}
	game.Start()
	defer game.Stop()

	logger.Info("simulating", "ticks", flagTicks, "delta", delta, "seed", seed)
	for i := 0; i < flagTicks; i++ {
		in := core.NewInputFrame()
		if i < len(frames) {
			in = frames[i]
		}

		wasWon := game.State().Won
		res, err := game.Step(in, delta)
		if err != nil {
			return err
		}
		tui.LogStep(logger, game, res, wasWon)
	}
	if err := game.Validate(); err != nil {
		return fmt.Errorf("board inconsistent after %d ticks: %w", flagTicks, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, game.BoardString())
	fmt.Fprintln(out)

	data, err := yaml.Marshal(game.Snapshot())
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

// parseMoves turns a move script into one input frame per character.
func parseMoves(script string) ([]core.InputFrame, error) {
	frames := make([]core.InputFrame, 0, len(script))
	for i, c := range strings.ToLower(script) {
		in := core.NewInputFrame()
		switch c {
		case 'u':
			in.Set(core.ActionUp)
		case 'd':
			in.Set(core.ActionDown)
		case 'l':
			in.Set(core.ActionLeft)
		case 'r':
			in.Set(core.ActionRight)
		case 'p':
			in.Set(core.ActionPause)
		case 'x':
			in.Set(core.ActionRestart)
		case '.':
		default:
			return nil, fmt.Errorf("invalid move %q at position %d", c, i)
		}
		frames = append(frames, in)
	}
	return frames, nil
}
