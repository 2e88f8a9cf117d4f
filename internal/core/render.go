package core

import "github.com/vovakirdan/autosnake/internal/grid"

// Renderer is the drawing surface the simulation paints each tick.
// Calls arrive in a fixed order per frame: Clear, DrawFood, DrawSnake, and
// DrawGameOver once when a life ends.
type Renderer interface {
	Clear()
	DrawFood(c grid.Cell)
	DrawSnake(body []grid.Cell)
	DrawGameOver()
}

// Presenter is implemented by renderers that need an end-of-frame signal,
// for example to publish a completed frame to another goroutine.
type Presenter interface {
	Present()
}
