// Package pathfind implements the A* grid search used by the autopilot.
package pathfind

import "github.com/vovakirdan/autosnake/internal/grid"

// Graph supplies the neighbors of a cell and the heuristic distance between
// two cells. grid.Board satisfies it.
type Graph interface {
	Neighbors(c grid.Cell) []grid.Cell
	Manhattan(a, b grid.Cell) int
}

// BlockedFunc reports whether a cell may not be entered.
type BlockedFunc func(c grid.Cell) bool

// FindPath returns a shortest route from start to goal, both inclusive,
// that avoids every cell for which isBlocked returns true. The start cell
// itself is never tested. A nil result means no route exists.
//
// Every step costs 1 and the heuristic is Manhattan distance. The open set is
// scanned in insertion order and the first member with the lowest f wins, so
// results are reproducible for a fixed start, goal and obstacle set.
func FindPath(g Graph, start, goal grid.Cell, isBlocked BlockedFunc) []grid.Cell {
	open := []grid.Cell{start}
	inOpen := map[grid.Cell]bool{start: true}
	closed := make(map[grid.Cell]bool)
	cameFrom := make(map[grid.Cell]grid.Cell)
	gScore := map[grid.Cell]int{start: 0}
	fScore := map[grid.Cell]int{start: g.Manhattan(start, goal)}

	for len(open) > 0 {
		best := 0
		for i := 1; i < len(open); i++ {
			if fScore[open[i]] < fScore[open[best]] {
				best = i
			}
		}
		current := open[best]

		if current == goal {
			return reconstruct(cameFrom, start, current)
		}

		open = append(open[:best], open[best+1:]...)
		delete(inOpen, current)
		closed[current] = true

		for _, n := range g.Neighbors(current) {
			if closed[n] || isBlocked(n) {
				continue
			}

			tentative := gScore[current] + 1
			if !inOpen[n] {
				open = append(open, n)
				inOpen[n] = true
			} else if tentative >= gScore[n] {
				continue
			}

			cameFrom[n] = current
			gScore[n] = tentative
			fScore[n] = tentative + g.Manhattan(n, goal)
		}
	}

	return nil
}

// reconstruct walks the predecessor map back from end to start.
func reconstruct(cameFrom map[grid.Cell]grid.Cell, start, end grid.Cell) []grid.Cell {
	path := []grid.Cell{end}
	for cur := end; cur != start; {
		cur = cameFrom[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
