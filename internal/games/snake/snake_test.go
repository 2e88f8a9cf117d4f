package snake

import (
	"testing"

	"github.com/vovakirdan/autosnake/internal/grid"
)

var testBoard = grid.Board{Width: 600, Height: 500, Unit: 25}

func TestNewSnake(t *testing.T) {
	s := NewSnake(testBoard, 5)

	want := []grid.Cell{{X: 100, Y: 0}, {X: 75, Y: 0}, {X: 50, Y: 0}, {X: 25, Y: 0}, {X: 0, Y: 0}}
	body := s.Body()
	if len(body) != len(want) {
		t.Fatalf("initial body = %v, expected %v", body, want)
	}
	for i := range want {
		if body[i] != want[i] {
			t.Errorf("body[%d] = %v, expected %v", i, body[i], want[i])
		}
	}
	if s.Velocity() != (grid.Vector{DX: 25}) {
		t.Errorf("initial velocity = %+v, expected (+25, 0)", s.Velocity())
	}
	if s.SelfCollision() {
		t.Error("initial straight body should not self-collide")
	}
}

func TestAdvanceLength(t *testing.T) {
	tests := []struct {
		name    string
		grow    bool
		wantLen int
	}{
		{"normal move keeps length", false, 5},
		{"growth move adds one", true, 6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSnake(testBoard, 5)
			tail := s.Body()[4]

			s.Advance(s.Velocity(), tc.grow)

			if s.Len() != tc.wantLen {
				t.Errorf("Len() = %d, expected %d", s.Len(), tc.wantLen)
			}
			if s.Head() != (grid.Cell{X: 125, Y: 0}) {
				t.Errorf("Head() = %v, expected (125,0)", s.Head())
			}
			if s.Occupies(tail) != tc.grow {
				t.Errorf("tail kept = %v, expected %v", s.Occupies(tail), tc.grow)
			}
			body := s.Body()
			for i := 1; i < len(body); i++ {
				if !testBoard.Adjacent(body[i-1], body[i]) {
					t.Errorf("segments %d and %d are not adjacent: %v", i-1, i, body)
				}
			}
		})
	}
}

func TestSelfCollision(t *testing.T) {
	// A 5-segment snake turning down, left, up runs into its own body.
	s := NewSnake(testBoard, 5)
	s.Advance(testBoard.Vector(grid.Down), false)
	s.Advance(testBoard.Vector(grid.Left), false)
	if s.SelfCollision() {
		t.Fatal("no collision expected before closing the loop")
	}
	s.Advance(testBoard.Vector(grid.Up), false)
	if !s.SelfCollision() {
		t.Errorf("expected self collision, body = %v", s.Body())
	}
}

func TestMoveIntoVacatedTail(t *testing.T) {
	// A 4-segment snake in a 2x2 loop chases its own tail legally.
	s := &Snake{
		body:     []grid.Cell{{X: 0, Y: 25}, {X: 25, Y: 25}, {X: 25, Y: 0}, {X: 0, Y: 0}},
		velocity: testBoard.Vector(grid.Up),
	}
	s.Advance(s.Velocity(), false)
	if s.SelfCollision() {
		t.Errorf("moving into the vacated tail cell should be legal, body = %v", s.Body())
	}
}

func TestOutOfBounds(t *testing.T) {
	tests := []struct {
		name string
		head grid.Cell
		want bool
	}{
		{"inside", grid.Cell{X: 0, Y: 0}, false},
		{"last cell", grid.Cell{X: 575, Y: 475}, false},
		{"left wall", grid.Cell{X: -25, Y: 0}, true},
		{"top wall", grid.Cell{X: 0, Y: -25}, true},
		{"right wall", grid.Cell{X: 600, Y: 0}, true},
		{"bottom wall", grid.Cell{X: 0, Y: 500}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := &Snake{body: []grid.Cell{tc.head}}
			if got := s.OutOfBounds(testBoard); got != tc.want {
				t.Errorf("OutOfBounds() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestSteer(t *testing.T) {
	s := NewSnake(testBoard, 5)

	s.Steer([]grid.Cell{{X: 100, Y: 0}, {X: 100, Y: 25}})
	if s.Velocity() != (grid.Vector{DY: 25}) {
		t.Errorf("Steer() velocity = %+v, expected (0, +25)", s.Velocity())
	}

	// Degenerate routes keep the previous heading.
	for _, route := range [][]grid.Cell{nil, {{X: 100, Y: 0}}} {
		s.Steer(route)
		if s.Velocity() != (grid.Vector{DY: 25}) {
			t.Errorf("Steer(%v) changed velocity to %+v", route, s.Velocity())
		}
	}
}

func TestTurnRejectsReversal(t *testing.T) {
	s := NewSnake(testBoard, 5)

	if s.Turn(testBoard.Vector(grid.Left)) {
		t.Error("turning back into the neck should be rejected")
	}
	if s.Velocity() != testBoard.Vector(grid.Right) {
		t.Errorf("rejected turn changed velocity to %+v", s.Velocity())
	}
	if !s.Turn(testBoard.Vector(grid.Down)) {
		t.Error("turning down should be accepted")
	}
	if s.Velocity() != testBoard.Vector(grid.Down) {
		t.Errorf("velocity = %+v, expected down", s.Velocity())
	}
}
