// Package canvas renders snake frames to raster images with gg.
package canvas

import (
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/autosnake/internal/grid"
)

const (
	boardLight  = "#FFFFFF"
	boardDark   = "#EDF4F2"
	snakeFill   = "#469E48"
	snakeBorder = "#000000"
	foodFill    = "#FF0000"
)

// Canvas draws the board at one pixel per board unit.
type Canvas struct {
	dc    *gg.Context
	board grid.Board
}

// New creates a canvas the size of board b.
func New(b grid.Board) *Canvas {
	return &Canvas{
		dc:    gg.NewContext(b.Width, b.Height),
		board: b,
	}
}

// Clear paints the checkered background. A cell is light when its column
// and row have the same parity.
func (c *Canvas) Clear() {
	u := float64(c.board.Unit)
	for row := 0; row < c.board.Rows(); row++ {
		for col := 0; col < c.board.Cols(); col++ {
			if col%2 == row%2 {
				c.dc.SetHexColor(boardLight)
			} else {
				c.dc.SetHexColor(boardDark)
			}
			c.dc.DrawRectangle(float64(col)*u, float64(row)*u, u, u)
			c.dc.Fill()
		}
	}
}

// DrawFood fills the food cell.
func (c *Canvas) DrawFood(cell grid.Cell) {
	u := float64(c.board.Unit)
	c.dc.SetHexColor(foodFill)
	c.dc.DrawRectangle(float64(cell.X), float64(cell.Y), u, u)
	c.dc.Fill()
}

// DrawSnake fills every segment and outlines it.
func (c *Canvas) DrawSnake(body []grid.Cell) {
	u := float64(c.board.Unit)
	c.dc.SetLineWidth(1)
	for _, part := range body {
		c.dc.DrawRectangle(float64(part.X), float64(part.Y), u, u)
		c.dc.SetHexColor(snakeFill)
		c.dc.FillPreserve()
		c.dc.SetHexColor(snakeBorder)
		c.dc.Stroke()
	}
}

// DrawGameOver writes the banner in the middle of the board.
func (c *Canvas) DrawGameOver() {
	w, h := float64(c.board.Width), float64(c.board.Height)
	c.dc.SetRGBA(1, 1, 1, 0.6)
	c.dc.DrawRectangle(0, h/2-20, w, 40)
	c.dc.Fill()
	c.dc.SetHexColor(snakeBorder)
	c.dc.DrawStringAnchored("GAME OVER", w/2, h/2, 0.5, 0.5)
}

// Image returns the current frame.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the current frame to path.
func (c *Canvas) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("canvas: save %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes the current frame to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := c.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("canvas: encode: %w", err)
	}
	return nil
}
