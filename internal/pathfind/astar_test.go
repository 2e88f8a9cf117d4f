package pathfind

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/autosnake/internal/grid"
)

func blockSet(cells ...grid.Cell) BlockedFunc {
	set := make(map[grid.Cell]bool, len(cells))
	for _, c := range cells {
		set[c] = true
	}
	return func(c grid.Cell) bool { return set[c] }
}

func assertValidPath(t *testing.T, b grid.Board, path []grid.Cell, start, goal grid.Cell, blocked BlockedFunc) {
	t.Helper()
	if len(path) == 0 {
		t.Fatal("expected a path, got none")
	}
	if path[0] != start {
		t.Errorf("path starts at %v, expected %v", path[0], start)
	}
	if path[len(path)-1] != goal {
		t.Errorf("path ends at %v, expected %v", path[len(path)-1], goal)
	}
	for i := 1; i < len(path); i++ {
		if !b.Adjacent(path[i-1], path[i]) {
			t.Errorf("step %d: %v -> %v is not a single step", i, path[i-1], path[i])
		}
		if !b.InBounds(path[i]) {
			t.Errorf("step %d: %v is out of bounds", i, path[i])
		}
		if blocked(path[i]) {
			t.Errorf("step %d: %v is blocked", i, path[i])
		}
	}
}

// bfsDistance is a reference shortest-path length, -1 when unreachable.
func bfsDistance(b grid.Board, start, goal grid.Cell, blocked BlockedFunc) int {
	dist := map[grid.Cell]int{start: 0}
	queue := []grid.Cell{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			return dist[cur]
		}
		for _, n := range b.Neighbors(cur) {
			if _, seen := dist[n]; seen || blocked(n) {
				continue
			}
			dist[n] = dist[cur] + 1
			queue = append(queue, n)
		}
	}
	return -1
}

func TestFindPathStraight(t *testing.T) {
	b := grid.Board{Width: 600, Height: 500, Unit: 25}
	body := []grid.Cell{{X: 100, Y: 0}, {X: 75, Y: 0}, {X: 50, Y: 0}, {X: 25, Y: 0}, {X: 0, Y: 0}}

	path := FindPath(b, body[0], grid.Cell{X: 200, Y: 0}, blockSet(body...))

	want := []grid.Cell{{X: 100, Y: 0}, {X: 125, Y: 0}, {X: 150, Y: 0}, {X: 175, Y: 0}, {X: 200, Y: 0}}
	if len(path) != len(want) {
		t.Fatalf("FindPath() = %v, expected %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Errorf("path[%d] = %v, expected %v", i, path[i], want[i])
		}
	}
}

func TestFindPathRoutesAroundBody(t *testing.T) {
	b := grid.Board{Width: 600, Height: 500, Unit: 25}
	body := []grid.Cell{{X: 200, Y: 50}, {X: 175, Y: 50}, {X: 150, Y: 50}, {X: 125, Y: 50}, {X: 100, Y: 50}}
	food := grid.Cell{X: 75, Y: 50} // directly behind the tail
	blocked := blockSet(body...)

	path := FindPath(b, body[0], food, blocked)

	assertValidPath(t, b, path, body[0], food, blocked)
	// Straight line is 5 steps but blocked; the detour over or under costs 7.
	if len(path) != 8 {
		t.Errorf("detour has %d cells, expected 8: %v", len(path), path)
	}
}

func TestFindPathBlockedCorridor(t *testing.T) {
	// Single-row board: the body fills the corridor between head and food.
	b := grid.Board{Width: 250, Height: 25, Unit: 25}
	body := []grid.Cell{{X: 200, Y: 0}, {X: 175, Y: 0}, {X: 150, Y: 0}, {X: 125, Y: 0}, {X: 100, Y: 0}}

	if path := FindPath(b, body[0], grid.Cell{X: 50, Y: 0}, blockSet(body...)); path != nil {
		t.Errorf("expected no path through the body, got %v", path)
	}
}

func TestFindPathDisconnected(t *testing.T) {
	b := grid.Board{Width: 125, Height: 125, Unit: 25}
	goal := grid.Cell{X: 100, Y: 100}
	// Wall off the bottom-right corner.
	blocked := blockSet(grid.Cell{X: 75, Y: 100}, grid.Cell{X: 100, Y: 75})

	if path := FindPath(b, grid.Cell{}, goal, blocked); path != nil {
		t.Errorf("expected empty path to walled-off goal, got %v", path)
	}
}

func TestFindPathGoalBlocked(t *testing.T) {
	b := grid.Board{Width: 125, Height: 125, Unit: 25}
	goal := grid.Cell{X: 50, Y: 0}

	if path := FindPath(b, grid.Cell{}, goal, blockSet(goal)); path != nil {
		t.Errorf("expected no path to a blocked goal, got %v", path)
	}
}

func TestFindPathStartIsGoal(t *testing.T) {
	b := grid.Board{Width: 125, Height: 125, Unit: 25}
	start := grid.Cell{X: 50, Y: 50}

	path := FindPath(b, start, start, blockSet(start))
	if len(path) != 1 || path[0] != start {
		t.Errorf("FindPath(start, start) = %v, expected [%v]", path, start)
	}
}

func TestFindPathTieBreak(t *testing.T) {
	b := grid.Board{Width: 100, Height: 100, Unit: 25}
	start := grid.Cell{}
	goal := grid.Cell{X: 50, Y: 50}

	path := FindPath(b, start, goal, blockSet())

	// Earliest inserted wins among equal f, and "down" is expanded before "right".
	want := []grid.Cell{{X: 0, Y: 0}, {X: 0, Y: 25}, {X: 0, Y: 50}, {X: 25, Y: 50}, {X: 50, Y: 50}}
	if len(path) != len(want) {
		t.Fatalf("FindPath() = %v, expected %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Errorf("path[%d] = %v, expected %v", i, path[i], want[i])
		}
	}
}

func TestFindPathRandomObstacles(t *testing.T) {
	b := grid.Board{Width: 300, Height: 250, Unit: 25}
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 200; trial++ {
		set := make(map[grid.Cell]bool)
		for i := 0; i < 40; i++ {
			set[grid.Cell{X: rng.Intn(b.Cols()) * b.Unit, Y: rng.Intn(b.Rows()) * b.Unit}] = true
		}
		start := grid.Cell{X: rng.Intn(b.Cols()) * b.Unit, Y: rng.Intn(b.Rows()) * b.Unit}
		goal := grid.Cell{X: rng.Intn(b.Cols()) * b.Unit, Y: rng.Intn(b.Rows()) * b.Unit}
		delete(set, goal)
		blocked := func(c grid.Cell) bool { return set[c] }

		path := FindPath(b, start, goal, blocked)
		want := bfsDistance(b, start, goal, blocked)

		if want < 0 {
			if path != nil {
				t.Fatalf("trial %d: expected no path, got %v", trial, path)
			}
			continue
		}
		assertValidPath(t, b, path, start, goal, blocked)
		if len(path)-1 != want {
			t.Fatalf("trial %d: path has %d steps, shortest is %d", trial, len(path)-1, want)
		}

		again := FindPath(b, start, goal, blocked)
		for i := range path {
			if again[i] != path[i] {
				t.Fatalf("trial %d: search is not deterministic", trial)
			}
		}
	}
}
