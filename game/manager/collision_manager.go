package manager

import (
	"snake-modes/game/types"
)

// Collision is the outcome of moving the head onto a candidate cell.
type Collision struct {
	Collided bool
	Head     types.Cell
	Type     types.CollisionType
}

// MotionRules computes head movement and collisions for a grid.
type MotionRules struct {
	grid types.Grid
}

func NewMotionRules(grid types.Grid) *MotionRules {
	return &MotionRules{
		grid: grid,
	}
}

// NextHead steps head one cell in direction d. An unknown direction leaves head where it is.
func (mr *MotionRules) NextHead(head types.Cell, d types.Direction) types.Cell {
	dRow, dCol := d.Delta()
	return types.Cell{Row: head.Row + dRow, Col: head.Col + dCol}
}

// ResolveCollision checks candidate against body (the snake without its head) first,
// then against the grid edges according to mode.
func (mr *MotionRules) ResolveCollision(candidate types.Cell, body []types.Cell, mode types.WallMode) Collision {
	if mr.isSnakeCollision(candidate, body) {
		return Collision{Collided: true, Head: candidate, Type: types.SelfCollision}
	}

	if !mr.grid.InBounds(candidate) {
		if mode == types.PassThrough {
			wrapped := mr.grid.Wrap(candidate)
			// a wrapped head on the body would put one cell in the snake twice
			if mr.isSnakeCollision(wrapped, body) {
				return Collision{Collided: true, Head: wrapped, Type: types.SelfCollision}
			}
			return Collision{Head: wrapped}
		}
		return Collision{Collided: true, Head: candidate, Type: types.WallCollision}
	}

	return Collision{Head: candidate}
}

func (mr *MotionRules) isSnakeCollision(pos types.Cell, body []types.Cell) bool {
	for _, p := range body {
		if p == pos {
			return true
		}
	}
	return false
}
