// snek is a terminal snake game.
//
// Usage:
//
//	snek play     - Play in the terminal
//	snek sim      - Run a headless game and print the final board
//	snek config   - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.snek/configs/snake.yaml, ./configs/snake.yaml)
//	--seed <value>      - RNG seed for reproducible food placement
//	--width, --height   - Override the board size
//	--speed <factor>    - Override the speed factor
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagWidth    int
	flagHeight   int
	flagSpeed    float64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snek",
	Short: "snek - the classic snake game in your terminal",
	Long: `snek is a terminal snake game. Eat food to grow, avoid the walls
and your own body, and fill the board to win.

Available commands:
  play     - Play in the terminal
  sim      - Run a headless game
  config   - Print the effective configuration

Examples:
  snek play
  snek play --width 20 --height 15 --speed 15
  snek sim --ticks 40 --moves uuuullll --seed 7
  snek config > ~/.snek/configs/snake.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", 0, "Board width in tiles (0 = from config)")
	rootCmd.PersistentFlags().IntVar(&flagHeight, "height", 0, "Board height in tiles (0 = from config)")
	rootCmd.PersistentFlags().Float64Var(&flagSpeed, "speed", 0, "Speed factor (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
