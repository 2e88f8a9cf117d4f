package snake

import (
	"github.com/vovakirdan/autosnake/internal/core"
	"github.com/vovakirdan/autosnake/internal/grid"
)

// cellWidth is the number of terminal columns per board cell. Terminal
// characters are roughly twice as tall as they are wide.
const cellWidth = 2

// ScreenSize returns the character dimensions needed to draw b with a border.
func ScreenSize(b grid.Board) (w, h int) {
	return b.Cols()*cellWidth + 2, b.Rows() + 2
}

// ScreenRenderer draws frames onto a character screen. The board is framed
// by a box and each cell is cellWidth characters wide.
type ScreenRenderer struct {
	screen *core.Screen
	board  grid.Board
}

// NewScreenRenderer creates a renderer for board b drawing into screen.
func NewScreenRenderer(screen *core.Screen, b grid.Board) *ScreenRenderer {
	return &ScreenRenderer{screen: screen, board: b}
}

// Screen returns the target buffer.
func (r *ScreenRenderer) Screen() *core.Screen {
	return r.screen
}

// Clear paints the border and the checkered background.
func (r *ScreenRenderer) Clear() {
	r.screen.Clear()
	w, h := ScreenSize(r.board)
	r.screen.DrawBox(core.NewRect(0, 0, w, h), core.ColorBoard)

	for row := 0; row < r.board.Rows(); row++ {
		for col := 0; col < r.board.Cols(); col++ {
			if (row+col)%2 == 1 {
				r.fill(col, row, '·', core.ColorBoard)
			}
		}
	}
}

// DrawFood marks the food cell.
func (r *ScreenRenderer) DrawFood(c grid.Cell) {
	col, row := r.board.Grid(c)
	r.put(col, row, "()", core.ColorFood)
}

// DrawSnake draws the body with a distinct head.
func (r *ScreenRenderer) DrawSnake(body []grid.Cell) {
	for i := len(body) - 1; i >= 0; i-- {
		col, row := r.board.Grid(body[i])
		if i == 0 {
			r.put(col, row, "██", core.ColorSnakeHead)
		} else {
			r.put(col, row, "▓▓", core.ColorSnakeBody)
		}
	}
}

// DrawGameOver overlays a centered banner.
func (r *ScreenRenderer) DrawGameOver() {
	const msg = " GAME OVER "
	w, h := ScreenSize(r.board)
	box := core.NewRect(0, 0, w, h).Centered(len(msg)+2, 3)
	inner := box.Inset(1)

	r.screen.DrawRect(box, ' ')
	r.screen.DrawBox(box, core.ColorBanner)
	r.screen.DrawTextColor(inner.X, inner.Y, msg, core.ColorBanner)
}

// put writes s at cell (col, row), skipping cells off the board.
func (r *ScreenRenderer) put(col, row int, s string, c core.Color) {
	if col < 0 || col >= r.board.Cols() || row < 0 || row >= r.board.Rows() {
		return
	}
	r.screen.DrawTextColor(1+col*cellWidth, 1+row, s, c)
}

func (r *ScreenRenderer) fill(col, row int, ch rune, c core.Color) {
	for i := 0; i < cellWidth; i++ {
		r.screen.SetColor(1+col*cellWidth+i, 1+row, ch, c)
	}
}
