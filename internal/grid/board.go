// Package grid models the snake board as a discrete grid of unit-sized cells.
// Coordinates are kept in board units (canvas pixels), so
// every valid cell has X and Y that are non-negative multiples of Board.Unit.
package grid

import (
	"errors"
	"fmt"
)

// ErrInvalidBoard is returned when board dimensions cannot form a grid.
var ErrInvalidBoard = errors.New("grid: invalid board")

// Cell is one discrete grid position. Cells compare by value and can be used
// directly as map keys.
type Cell struct {
	X, Y int
}

// Add returns the cell reached by moving c by v.
func (c Cell) Add(v Vector) Cell {
	return Cell{X: c.X + v.DX, Y: c.Y + v.DY}
}

// Sub returns the vector that moves from o to c.
func (c Cell) Sub(o Cell) Vector {
	return Vector{DX: c.X - o.X, DY: c.Y - o.Y}
}

// String renders the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Vector is a movement delta. A movement vector has exactly one non-zero
// component whose magnitude equals the board unit.
type Vector struct {
	DX, DY int
}

// IsZero reports whether v does not move at all.
func (v Vector) IsZero() bool {
	return v.DX == 0 && v.DY == 0
}

// Reverse returns the opposite vector.
func (v Vector) Reverse() Vector {
	return Vector{DX: -v.DX, DY: -v.DY}
}

// Direction is one of the four axis-aligned headings.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists headings in neighbor priority order.
var Directions = [4]Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Board is the fixed playing field. Width and Height are in board units and
// must be multiples of Unit.
type Board struct {
	Width  int
	Height int
	Unit   int
}

// NewBoard validates the dimensions and returns a board.
func NewBoard(width, height, unit int) (Board, error) {
	if unit <= 0 {
		return Board{}, fmt.Errorf("%w: unit %d must be positive", ErrInvalidBoard, unit)
	}
	if width <= 0 || height <= 0 {
		return Board{}, fmt.Errorf("%w: size %dx%d must be positive", ErrInvalidBoard, width, height)
	}
	if width%unit != 0 || height%unit != 0 {
		return Board{}, fmt.Errorf("%w: size %dx%d is not a multiple of unit %d", ErrInvalidBoard, width, height, unit)
	}
	return Board{Width: width, Height: height, Unit: unit}, nil
}

// Cols returns the number of cell columns.
func (b Board) Cols() int {
	return b.Width / b.Unit
}

// Rows returns the number of cell rows.
func (b Board) Rows() int {
	return b.Height / b.Unit
}

// Area returns the total number of cells.
func (b Board) Area() int {
	return b.Cols() * b.Rows()
}

// InBounds reports whether c lies inside the board.
func (b Board) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < b.Width && c.Y >= 0 && c.Y < b.Height
}

// Vector returns the one-step movement vector for d.
func (b Board) Vector(d Direction) Vector {
	switch d {
	case Up:
		return Vector{DY: -b.Unit}
	case Down:
		return Vector{DY: b.Unit}
	case Left:
		return Vector{DX: -b.Unit}
	default:
		return Vector{DX: b.Unit}
	}
}

// Neighbors returns the in-bounds cells one step from c, in the order
// up, down, left, right. The order drives pathfinding tie-breaks.
func (b Board) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range Directions {
		n := c.Add(b.Vector(d))
		if b.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Adjacent reports whether a and b are exactly one step apart.
func (b Board) Adjacent(a, c Cell) bool {
	return b.Manhattan(a, c) == 1
}

// Manhattan returns the grid distance between a and c in cell steps.
func (b Board) Manhattan(a, c Cell) int {
	return (abs(a.X-c.X) + abs(a.Y-c.Y)) / b.Unit
}

// Grid converts a board cell into column/row indices.
func (b Board) Grid(c Cell) (col, row int) {
	return c.X / b.Unit, c.Y / b.Unit
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
