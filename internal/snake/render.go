package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/snek/internal/core"
)

const hudHeight = 2 // status line + separator

// RenderOptions control how the board is laid out on a screen.
type RenderOptions struct {
	TileWidth int // Characters per tile horizontally (terminal cells are tall)
}

// DefaultRenderOptions returns square-looking tiles on a typical terminal.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{TileWidth: 2}
}

// RequiredSize returns the screen size needed to draw the whole board.
func (g *Game) RequiredSize(opts RenderOptions) (w, h int) {
	tw := max(opts.TileWidth, 1)
	return g.board.Width()*tw + 2, g.board.Height() + hudHeight + 2
}

// Render draws the HUD, the framed board and any overlay into dst.
func (g *Game) Render(dst *core.Screen, opts RenderOptions) {
	dst.Clear()
	g.renderHUD(dst)

	needW, needH := g.RequiredSize(opts)
	if dst.Width() < needW || dst.Height() < needH {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", needW, needH))
		return
	}

	tw := max(opts.TileWidth, 1)
	frame := core.NewRect((dst.Width()-needW)/2, hudHeight, needW, g.board.Height()+2)
	dst.DrawBox(frame, core.ColorGray)

	head, hasHead := g.snake.Head()
	for x := 0; x < g.board.Width(); x++ {
		for y := 0; y < g.board.Height(); y++ {
			t := g.board.tiles[x][y]
			r, c := tileGlyph(t, hasHead && head == (Point{X: x, Y: y}), g.snake.Dead())
			sx := frame.X + 1 + x*tw
			for i := 0; i < tw; i++ {
				dst.SetColored(sx+i, frame.Y+1+y, r, c)
			}
		}
	}

	switch {
	case g.paused:
		renderOverlay(dst, "Paused", "Press P to continue")
	case g.won:
		renderOverlay(dst, "You Win!", fmt.Sprintf("Length: %d", g.snake.Length()))
	case g.snake.Gone():
		renderOverlay(dst, "Game Over", "Press Space to restart")
	}
}

func tileGlyph(t Tile, isHead, dead bool) (rune, core.Color) {
	switch t.Occupant() {
	case OccupantBody:
		switch {
		case dead:
			return '▒', core.ColorGray
		case isHead:
			return '█', core.ColorBrightGreen
		default:
			return '▓', core.ColorGreen
		}
	case OccupantFood:
		return '●', core.ColorBrightRed
	default:
		return ' ', core.ColorDefault
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	status := "alive"
	switch {
	case g.won:
		status = "won"
	case g.snake.Gone():
		status = "game over"
	case g.snake.Dead():
		status = "dying"
	}
	hud := fmt.Sprintf(" snek | Score: %d  Length: %d  %s", g.snake.Meals(), g.snake.Length(), status)
	dst.DrawText(0, 0, hud, core.ColorWhite)
	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

func renderOverlay(dst *core.Screen, line1, line2 string) {
	w := core.Clamp(max(len([]rune(line1)), len([]rune(line2)))+4, 2, dst.Width())
	box := dst.Bounds().Centered(w, 5)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorWhite)
}

// BoardString returns the board as plain text, one row per line:
// 'O' head, 'o' body, '*' food, '.' empty.
func (g *Game) BoardString() string {
	head, hasHead := g.snake.Head()

	var sb strings.Builder
	sb.Grow((g.board.Width() + 1) * g.board.Height())
	for y := 0; y < g.board.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.board.Width(); x++ {
			switch g.board.tiles[x][y].Occupant() {
			case OccupantBody:
				if hasHead && head == (Point{X: x, Y: y}) {
					sb.WriteByte('O')
				} else {
					sb.WriteByte('o')
				}
			case OccupantFood:
				sb.WriteByte('*')
			default:
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
