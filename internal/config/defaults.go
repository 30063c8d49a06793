package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/snek/internal/snake"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:  30,
			Height: 30,
		},
		Snake: SnakeSection{
			Length:      15,
			SpeedFactor: 10, // 150ms per move at a 15ms tick
			StartX:      CenterStart,
			StartY:      CenterStart,
			Direction:   snake.DirUp,
		},
		Food: FoodConfig{
			GrowAmount: 3,
		},
		Loop: LoopConfig{
			TickInterval: 15 * time.Millisecond,
		},
		Render: RenderConfig{
			TileWidth: 2,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
