package tui

import (
	"sync"

	"github.com/vovakirdan/autosnake/internal/core"
	"github.com/vovakirdan/autosnake/internal/games/snake"
	"github.com/vovakirdan/autosnake/internal/grid"
)

// Scores is the latest score line published by the scheduler.
type Scores struct {
	Current int
	High    int
	Average float64
}

// FrameBuffer is a renderer that double-buffers frames for the UI. The
// scheduler draws into the back buffer and Present publishes it; the Bubble
// Tea model reads the front buffer from its own goroutine.
type FrameBuffer struct {
	back *snake.ScreenRenderer

	mu     sync.Mutex
	front  *core.Screen
	seq    uint64
	scores Scores
}

// NewFrameBuffer creates a frame buffer sized for board b.
func NewFrameBuffer(b grid.Board) *FrameBuffer {
	w, h := snake.ScreenSize(b)
	return &FrameBuffer{
		back:  snake.NewScreenRenderer(core.NewScreen(w, h), b),
		front: core.NewScreen(w, h),
	}
}

func (f *FrameBuffer) Clear() { f.back.Clear() }
func (f *FrameBuffer) DrawFood(c grid.Cell) { f.back.DrawFood(c) }
func (f *FrameBuffer) DrawSnake(body []grid.Cell) { f.back.DrawSnake(body) }
func (f *FrameBuffer) DrawGameOver() { f.back.DrawGameOver() }

// Present publishes the back buffer.
func (f *FrameBuffer) Present() {
	frame := f.back.Screen().Clone()
	f.mu.Lock()
	f.front = frame
	f.seq++
	f.mu.Unlock()
}

// Scores records the latest score line.
func (f *FrameBuffer) Scores(current, high int, avg float64) {
	f.mu.Lock()
	f.scores = Scores{Current: current, High: high, Average: avg}
	f.mu.Unlock()
}

// Frame returns the latest published frame, its sequence number and the
// scores that came with it. The screen must not be modified.
func (f *FrameBuffer) Frame() (*core.Screen, uint64, Scores) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.front, f.seq, f.scores
}
