package game

import (
	"time"

	"snake-modes/game/types"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by NewEngine for settings the game cannot start with.
var ErrInvalidConfig = errors.New("invalid game configuration")

// Config holds the construction-time settings of an Engine.
type Config struct {
	GridSize     int
	InitialSpeed time.Duration
	SpeedStep    time.Duration
	MinSpeed     time.Duration
	InitialSnake []types.Cell // head first
	Mode         types.WallMode
}

// DefaultConfig returns the standard 20x20 setup.
func DefaultConfig() Config {
	return Config{
		GridSize:     types.DefaultGridSize,
		InitialSpeed: types.DefaultInitialSpeed * time.Millisecond,
		SpeedStep:    types.DefaultSpeedStep * time.Millisecond,
		MinSpeed:     types.DefaultMinSpeed * time.Millisecond,
		InitialSnake: DefaultSnake(types.DefaultGridSize),
		Mode:         types.Walls,
	}
}

// DefaultSnake places a three cell snake in the middle of the grid, head on the right.
// On grids narrower than four the head moves right so the tail stays on the board.
func DefaultSnake(gridSize int) []types.Cell {
	mid := gridSize / 2
	head := mid
	if head < types.InitialSnakeLength-1 {
		head = types.InitialSnakeLength - 1
	}
	return []types.Cell{
		{Row: mid, Col: head},
		{Row: mid, Col: head - 1},
		{Row: mid, Col: head - 2},
	}
}

// Validate reports the first setting that would make the game unplayable.
func (c Config) Validate() error {
	if c.GridSize <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "grid size %d", c.GridSize)
	}
	if c.MinSpeed <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "minimum speed %v", c.MinSpeed)
	}
	if c.InitialSpeed < c.MinSpeed {
		return errors.Wrapf(ErrInvalidConfig, "initial speed %v below minimum %v", c.InitialSpeed, c.MinSpeed)
	}
	if c.SpeedStep < 0 {
		return errors.Wrapf(ErrInvalidConfig, "speed step %v", c.SpeedStep)
	}
	if c.Mode != types.Walls && c.Mode != types.PassThrough {
		return errors.Wrapf(ErrInvalidConfig, "wall mode %d", c.Mode)
	}
	if len(c.InitialSnake) < types.InitialSnakeLength {
		return errors.Wrapf(ErrInvalidConfig, "initial snake has %d cells, need %d", len(c.InitialSnake), types.InitialSnakeLength)
	}

	grid := types.Grid{Size: c.GridSize}
	if len(c.InitialSnake) >= grid.Cells() {
		return errors.Wrapf(ErrInvalidConfig, "initial snake leaves no room for food on a %dx%d grid", c.GridSize, c.GridSize)
	}
	seen := make(map[types.Cell]bool, len(c.InitialSnake))
	for i, p := range c.InitialSnake {
		if !grid.InBounds(p) {
			return errors.Wrapf(ErrInvalidConfig, "initial snake cell %v outside the grid", p)
		}
		if seen[p] {
			return errors.Wrapf(ErrInvalidConfig, "initial snake repeats cell %v", p)
		}
		seen[p] = true
		if i > 0 && manhattan(p, c.InitialSnake[i-1]) != 1 {
			return errors.Wrapf(ErrInvalidConfig, "initial snake cells %v and %v are not adjacent", c.InitialSnake[i-1], p)
		}
	}

	// the neck must not sit straight ahead of the head, or the first tick is a collision
	head, neck := c.InitialSnake[0], c.InitialSnake[1]
	if (types.Cell{Row: head.Row, Col: head.Col + 1}) == neck {
		return errors.Wrapf(ErrInvalidConfig, "initial snake faces into itself at %v", neck)
	}
	return nil
}

func manhattan(a, b types.Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
