package core

// Color is the palette slot of a screen cell. Front ends map each slot to a
// concrete color; the terminal UI uses ANSI 256-color codes.
type Color uint8

// Palette slots for the snake board.
const (
	ColorDefault Color = iota
	ColorBoard         // border and checker marks
	ColorFood
	ColorSnakeHead
	ColorSnakeBody
	ColorBanner // game over overlay
)
