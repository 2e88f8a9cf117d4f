package snake

import (
	"math/rand"

	"github.com/vovakirdan/autosnake/internal/grid"
)

// PlaceFood samples random grid cells until one is free of the snake.
// It returns false only when the snake already covers the whole board.
func PlaceFood(b grid.Board, s *Snake, rng *rand.Rand) (grid.Cell, bool) {
	if s.Len() >= b.Area() {
		return grid.Cell{}, false
	}
	for {
		c := grid.Cell{
			X: rng.Intn(b.Cols()) * b.Unit,
			Y: rng.Intn(b.Rows()) * b.Unit,
		}
		if !s.Occupies(c) {
			return c, true
		}
	}
}
