package manager

import (
	"testing"

	"snake-modes/game/types"

	"golang.org/x/exp/rand"
)

func TestSampleAvoidsSnake(t *testing.T) {
	grid := types.Grid{Size: types.DefaultGridSize}
	for seed := uint64(0); seed < 200; seed++ {
		rng := rand.New(rand.NewSource(seed))
		fm := NewFoodSampler(grid, rng)

		snake := randomSnake(rng, grid, 1+rng.Intn(150))
		food, ok := fm.Sample(snake)
		if !ok {
			t.Fatalf("seed %d: no cell sampled", seed)
		}
		if !grid.InBounds(food) {
			t.Fatalf("seed %d: food %v out of bounds", seed, food)
		}
		for _, p := range snake {
			if p == food {
				t.Fatalf("seed %d: food %v on snake", seed, food)
			}
		}
	}
}

func TestSampleNearlyFullGrid(t *testing.T) {
	grid := types.Grid{Size: 4}
	var snake []types.Cell
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if row == 2 && col == 3 {
				continue
			}
			snake = append(snake, types.Cell{Row: row, Col: col})
		}
	}

	fm := NewFoodSampler(grid, rand.New(rand.NewSource(7)))
	for i := 0; i < 20; i++ {
		food, ok := fm.Sample(snake)
		if !ok || food != (types.Cell{Row: 2, Col: 3}) {
			t.Fatalf("Sample = %v, %v; want [2,3]", food, ok)
		}
	}
}

func TestSampleFullGrid(t *testing.T) {
	grid := types.Grid{Size: 2}
	snake := []types.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 1, Col: 0}}
	fm := NewFoodSampler(grid, rand.New(rand.NewSource(1)))
	if _, ok := fm.Sample(snake); ok {
		t.Fatal("expected no free cell")
	}
}

func TestSampleDeterministicForSeed(t *testing.T) {
	grid := types.Grid{Size: types.DefaultGridSize}
	snake := []types.Cell{{Row: 10, Col: 10}, {Row: 10, Col: 9}, {Row: 10, Col: 8}}

	a := NewFoodSampler(grid, rand.New(rand.NewSource(42)))
	b := NewFoodSampler(grid, rand.New(rand.NewSource(42)))
	for i := 0; i < 10; i++ {
		fa, _ := a.Sample(snake)
		fb, _ := b.Sample(snake)
		if fa != fb {
			t.Fatalf("draw %d differs: %v vs %v", i, fa, fb)
		}
	}
}

func randomSnake(rng *rand.Rand, grid types.Grid, n int) []types.Cell {
	seen := make(map[types.Cell]bool)
	var cells []types.Cell
	for len(cells) < n {
		c := types.Cell{Row: rng.Intn(grid.Size), Col: rng.Intn(grid.Size)}
		if seen[c] {
			continue
		}
		seen[c] = true
		cells = append(cells, c)
	}
	return cells
}
