package snake

import "github.com/vovakirdan/autosnake/internal/grid"

// Snake is an ordered body of cells with the head at index 0.
type Snake struct {
	body     []grid.Cell
	velocity grid.Vector
}

// NewSnake seeds a straight horizontal snake on row 0 with its tail at the
// origin, heading right.
func NewSnake(b grid.Board, length int) *Snake {
	length = max(1, length)
	body := make([]grid.Cell, length)
	for i := range body {
		body[i] = grid.Cell{X: (length - 1 - i) * b.Unit, Y: 0}
	}
	return &Snake{
		body:     body,
		velocity: b.Vector(grid.Right),
	}
}

// Head returns the head cell.
func (s *Snake) Head() grid.Cell {
	return s.body[0]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []grid.Cell {
	out := make([]grid.Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Velocity returns the vector applied on the next advance.
func (s *Snake) Velocity() grid.Vector {
	return s.velocity
}

// Occupies reports whether any segment is on c.
func (s *Snake) Occupies(c grid.Cell) bool {
	for _, seg := range s.body {
		if seg == c {
			return true
		}
	}
	return false
}

// Advance moves the head by v. The tail is dropped unless grow is set, so
// length stays constant on a normal move and increases by one on growth.
func (s *Snake) Advance(v grid.Vector, grow bool) {
	s.velocity = v
	head := s.body[0].Add(v)
	if grow {
		s.body = append(s.body, grid.Cell{})
	}
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = head
}

// SelfCollision reports whether the head shares a cell with another segment.
func (s *Snake) SelfCollision() bool {
	head := s.body[0]
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// OutOfBounds reports whether the head has left the board.
func (s *Snake) OutOfBounds(b grid.Board) bool {
	return !b.InBounds(s.body[0])
}

// Steer points the snake along route. A route shorter than two cells leaves
// the current velocity unchanged, so the snake keeps going straight.
func (s *Snake) Steer(route []grid.Cell) {
	if len(route) < 2 {
		return
	}
	s.velocity = route[1].Sub(route[0])
}

// Turn applies a manual heading change. A turn that would put the head onto
// the second segment is rejected and reported as false.
func (s *Snake) Turn(v grid.Vector) bool {
	if v.IsZero() {
		return false
	}
	if len(s.body) > 1 && s.body[0].Add(v) == s.body[1] {
		return false
	}
	s.velocity = v
	return true
}
