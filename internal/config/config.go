// Package config provides YAML-based configuration loading for snek.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/snek/internal/snake"
)

// CenterStart marks a start coordinate that should be placed mid-board.
const CenterStart = -1

// SnakeConfig contains all configuration for a game of snake.
type SnakeConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Snake  SnakeSection `yaml:"snake"`
	Food   FoodConfig   `yaml:"food"`
	Loop   LoopConfig   `yaml:"loop"`
	Render RenderConfig `yaml:"render"`
}

// BoardConfig defines the playing field in tiles.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeSection defines the snake spawned on every (re)start.
type SnakeSection struct {
	Length      int             `yaml:"length"`
	SpeedFactor float64         `yaml:"speed_factor"` // Higher is faster; 10 moves every 10 ticks
	StartX      int             `yaml:"start_x"`      // -1 = center
	StartY      int             `yaml:"start_y"`      // -1 = center
	Direction   snake.Direction `yaml:"direction"`
}

// FoodConfig defines food behaviour.
type FoodConfig struct {
	GrowAmount int `yaml:"grow_amount"`
}

// LoopConfig defines the host clock.
type LoopConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"`
}

// RenderConfig defines how tiles are drawn in a terminal.
type RenderConfig struct {
	TileWidth int `yaml:"tile_width"`
}

// MoveThreshold returns the elapsed time between two snake moves.
func (c SnakeConfig) MoveThreshold() time.Duration {
	if c.Snake.SpeedFactor <= 0 {
		return 0
	}
	return time.Duration(100 / c.Snake.SpeedFactor * float64(c.Loop.TickInterval))
}

// Start resolves the configured head position, centering unset axes.
func (c SnakeConfig) Start() snake.Point {
	p := snake.CenterStart(c.Board.Width, c.Board.Height)
	if c.Snake.StartX != CenterStart {
		p.X = c.Snake.StartX
	}
	if c.Snake.StartY != CenterStart {
		p.Y = c.Snake.StartY
	}
	return p
}

// Validate reports values that cannot produce a playable game.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Board.Width <= 0 || c.Board.Height <= 0:
		return fmt.Errorf("config: board size must be positive, got %dx%d", c.Board.Width, c.Board.Height)
	case c.Snake.Length < 1:
		return fmt.Errorf("config: snake length must be at least 1, got %d", c.Snake.Length)
	case c.Snake.SpeedFactor <= 0:
		return fmt.Errorf("config: speed factor must be positive, got %g", c.Snake.SpeedFactor)
	case c.Food.GrowAmount < 0:
		return fmt.Errorf("config: grow amount must not be negative, got %d", c.Food.GrowAmount)
	case c.Loop.TickInterval <= 0:
		return fmt.Errorf("config: tick interval must be positive, got %s", c.Loop.TickInterval)
	case c.Render.TileWidth < 1:
		return fmt.Errorf("config: tile width must be at least 1, got %d", c.Render.TileWidth)
	}

	start := c.Start()
	if start.X < 0 || start.Y < 0 || start.X >= c.Board.Width || start.Y >= c.Board.Height {
		return fmt.Errorf("config: start (%d, %d) outside %dx%d board", start.X, start.Y, c.Board.Width, c.Board.Height)
	}
	if c.MoveThreshold() <= 0 {
		return fmt.Errorf("config: speed factor %g too high for tick %s", c.Snake.SpeedFactor, c.Loop.TickInterval)
	}
	return nil
}

// Settings converts the configuration into game settings.
func (c SnakeConfig) Settings() snake.Settings {
	return snake.Settings{
		Width:      c.Board.Width,
		Height:     c.Board.Height,
		Length:     c.Snake.Length,
		GrowAmount: c.Food.GrowAmount,
		Speed:      c.MoveThreshold(),
		Start:      c.Start(),
		Direction:  c.Snake.Direction,
	}
}

// RenderOptions converts the render section for the game renderer.
func (c SnakeConfig) RenderOptions() snake.RenderOptions {
	return snake.RenderOptions{TileWidth: c.Render.TileWidth}
}
