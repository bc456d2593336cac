package types

import "fmt"

// Game constants
const (
	DefaultGridSize     = 20
	DefaultInitialSpeed = 180 // milliseconds between ticks at start
	DefaultSpeedStep    = 10  // milliseconds shaved off per food eaten
	DefaultMinSpeed     = 50  // milliseconds, fastest allowed tick
	InitialSnakeLength  = 3
)

// Cell is a (row, col) position on the grid.
type Cell struct {
	Row int `msgpack:"row" json:"row"`
	Col int `msgpack:"col" json:"col"`
}

// NoCell marks a position that is not on any grid, such as the food once the board is full.
var NoCell = Cell{Row: -1, Col: -1}

func (c Cell) String() string {
	return fmt.Sprintf("[%d,%d]", c.Row, c.Col)
}

// Grid represents the square playing field.
type Grid struct {
	Size int
}

// InBounds reports whether c lies inside the grid.
func (g Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Size && c.Col >= 0 && c.Col < g.Size
}

// Wrap maps c back onto the grid, re-entering from the opposite edge.
func (g Grid) Wrap(c Cell) Cell {
	return Cell{Row: wrap(c.Row, g.Size), Col: wrap(c.Col, g.Size)}
}

// Cells returns the number of cells on the grid.
func (g Grid) Cells() int {
	return g.Size * g.Size
}

func wrap(v, n int) int {
	return ((v % n) + n) % n
}

// Direction is the heading of the snake.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	default:
		return "UNKNOWN"
	}
}

// Opposite returns the reverse heading. Unknown directions are returned as is.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// Delta returns the (row, col) offset of one step in this direction.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// WallMode decides what happens when the head leaves the grid.
type WallMode int

const (
	Walls WallMode = iota
	PassThrough
)

func (m WallMode) String() string {
	switch m {
	case Walls:
		return "walls"
	case PassThrough:
		return "pass-through"
	default:
		return "unknown"
	}
}

// ParseWallMode accepts the names produced by WallMode.String.
func ParseWallMode(s string) (WallMode, error) {
	switch s {
	case "walls", "wall":
		return Walls, nil
	case "pass-through", "passthrough", "wrap":
		return PassThrough, nil
	default:
		return Walls, fmt.Errorf("unknown wall mode %q", s)
	}
}

// Status is the lifecycle stage of a run.
type Status int

const (
	Idle Status = iota
	Running
	GameOver
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "IDLE"
	case Running:
		return "RUNNING"
	case GameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	BoardFull // the snake covers every cell, nowhere left for food
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case BoardFull:
		return "board full"
	default:
		return "none"
	}
}
