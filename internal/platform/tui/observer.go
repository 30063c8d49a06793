package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snek/internal/snake"
)

// LogObserver writes game lifecycle events to a logger.
type LogObserver struct {
	logger *log.Logger
}

// NewLogObserver returns an observer logging to logger.
func NewLogObserver(logger *log.Logger) LogObserver {
	return LogObserver{logger: logger}
}

func (o LogObserver) GameStarted() {
	o.logger.Info("game started")
}

func (o LogObserver) GameStopped() {
	o.logger.Info("game stopped")
}

// LogStep reports the notable outcomes of one tick. wasWon is the win
// flag before the tick, so a win is only logged once.
func LogStep(logger *log.Logger, g *snake.Game, res snake.StepResult, wasWon bool) {
	s := g.Snake()
	if res.Restarted {
		logger.Info("game restarted", "tick", g.Tick())
	}
	if res.Ate {
		logger.Debug("food eaten", "score", res.State.Score, "length", s.Length())
	}
	if res.Died {
		head, _ := s.Head()
		logger.Info("snake died", "score", res.State.Score, "length", s.Length(), "x", head.X, "y", head.Y)
	}
	if res.Won && !wasWon {
		logger.Info("board full", "score", res.State.Score, "length", s.Length())
	}
}
