package canvas

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/autosnake/internal/grid"
)

var board = grid.Board{Width: 100, Height: 100, Unit: 25}

func rgb(c color.Color) (r, g, b uint8) {
	r32, g32, b32, _ := c.RGBA()
	return uint8(r32 >> 8), uint8(g32 >> 8), uint8(b32 >> 8)
}

func TestClearCheckers(t *testing.T) {
	c := New(board)
	c.Clear()
	img := c.Image()

	if r, g, b := rgb(img.At(12, 12)); r != 0xFF || g != 0xFF || b != 0xFF {
		t.Errorf("cell (0,0) = #%02X%02X%02X, expected white", r, g, b)
	}
	if r, g, b := rgb(img.At(37, 12)); r != 0xED || g != 0xF4 || b != 0xF2 {
		t.Errorf("cell (1,0) = #%02X%02X%02X, expected #EDF4F2", r, g, b)
	}
	if r, g, b := rgb(img.At(37, 37)); r != 0xFF || g != 0xFF || b != 0xFF {
		t.Errorf("cell (1,1) = #%02X%02X%02X, expected white", r, g, b)
	}
}

func TestDrawSnakeAndFood(t *testing.T) {
	c := New(board)
	c.Clear()
	c.DrawFood(grid.Cell{X: 75, Y: 75})
	c.DrawSnake([]grid.Cell{{X: 25, Y: 0}, {X: 0, Y: 0}})
	img := c.Image()

	if r, g, b := rgb(img.At(87, 87)); r != 0xFF || g != 0 || b != 0 {
		t.Errorf("food cell = #%02X%02X%02X, expected red", r, g, b)
	}
	if r, g, b := rgb(img.At(37, 12)); r != 0x46 || g != 0x9E || b != 0x48 {
		t.Errorf("snake cell = #%02X%02X%02X, expected #469E48", r, g, b)
	}
}

func TestSavePNG(t *testing.T) {
	c := New(board)
	c.Clear()
	c.DrawGameOver()

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := c.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("saved file is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 100 {
		t.Errorf("image is %dx%d, expected 100x100", b.Dx(), b.Dy())
	}

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil || buf.Len() == 0 {
		t.Errorf("EncodePNG() = %v, %d bytes", err, buf.Len())
	}
}
