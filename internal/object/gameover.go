package object

import "github.com/tomz197/spacegarbage/internal/draw"

// GameOver keeps the game-over banner centred on the canvas until the
// process exits.
type GameOver struct {
	frame         string
	width, height int
}

// NewGameOver creates the game-over task.
func NewGameOver(frame string) *GameOver {
	w, h := draw.FrameSize(frame)
	return &GameOver{frame: frame, width: w, height: h}
}

// Update redraws the banner every tick, on top of anything that flew over it.
func (g *GameOver) Update(ctx UpdateContext) (bool, error) {
	ctx.markOver()
	rows, cols := ctx.Canvas.Size()
	row := float64(rows/2 - g.height/2)
	col := float64(cols/2 - g.width/2)
	draw.Frame(ctx.Canvas, row, col, g.frame, false)
	return false, nil
}
