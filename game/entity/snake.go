package entity

import (
	"snake-modes/game/types"
)

// Snake is an ordered run of cells, head first.
type Snake struct {
	Body []types.Cell
}

func NewSnake(cells []types.Cell) *Snake {
	body := make([]types.Cell, len(cells))
	copy(body, cells)
	return &Snake{Body: body}
}

func (s *Snake) GetHead() types.Cell {
	return s.Body[0]
}

// Tail returns every segment except the head.
func (s *Snake) Tail() []types.Cell {
	return s.Body[1:]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Contains reports whether any segment occupies c.
func (s *Snake) Contains(c types.Cell) bool {
	for _, p := range s.Body {
		if p == c {
			return true
		}
	}
	return false
}

// Advanced returns a new snake with newHead prepended. The tail is kept when grow is set.
// The receiver is left untouched so a tick can be committed as a whole.
func (s *Snake) Advanced(newHead types.Cell, grow bool) *Snake {
	n := len(s.Body)
	if !grow {
		n--
	}
	body := make([]types.Cell, 0, n+1)
	body = append(body, newHead)
	body = append(body, s.Body[:n]...)
	return &Snake{Body: body}
}

// Cells returns a copy of the body.
func (s *Snake) Cells() []types.Cell {
	body := make([]types.Cell, len(s.Body))
	copy(body, s.Body)
	return body
}
