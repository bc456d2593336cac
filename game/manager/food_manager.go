package manager

import (
	"snake-modes/game/types"

	"golang.org/x/exp/rand"
)

// maxDrawsPerCell bounds rejection sampling before falling back to enumerating free cells.
const maxDrawsPerCell = 4

// FoodSampler places food on a random free cell.
type FoodSampler struct {
	grid types.Grid
	rng  *rand.Rand
}

func NewFoodSampler(grid types.Grid, rng *rand.Rand) *FoodSampler {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &FoodSampler{
		grid: grid,
		rng:  rng,
	}
}

// Sample returns a uniformly chosen cell not covered by snake.
// It returns false only when the snake fills the whole grid.
func (fm *FoodSampler) Sample(snake []types.Cell) (types.Cell, bool) {
	occupied := make(map[types.Cell]struct{}, len(snake))
	for _, p := range snake {
		occupied[p] = struct{}{}
	}
	if len(occupied) >= fm.grid.Cells() {
		return types.Cell{}, false
	}

	for i := 0; i < fm.grid.Cells()*maxDrawsPerCell; i++ {
		food := types.Cell{
			Row: fm.rng.Intn(fm.grid.Size),
			Col: fm.rng.Intn(fm.grid.Size),
		}
		if _, ok := occupied[food]; !ok {
			return food, true
		}
	}

	free := make([]types.Cell, 0, fm.grid.Cells()-len(occupied))
	for row := 0; row < fm.grid.Size; row++ {
		for col := 0; col < fm.grid.Size; col++ {
			c := types.Cell{Row: row, Col: col}
			if _, ok := occupied[c]; !ok {
				free = append(free, c)
			}
		}
	}
	return free[fm.rng.Intn(len(free))], true
}
