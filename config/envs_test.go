package config

import (
	"testing"
	"time"

	"snake-modes/game"
	"snake-modes/game/types"

	"github.com/pkg/errors"
)

func TestInitConfigDefaults(t *testing.T) {
	c := initConfig()
	if c.GridSize != types.DefaultGridSize || c.InitialSpeedMS != 180 || c.SpeedStepMS != 10 || c.MinSpeedMS != 50 {
		t.Fatalf("unexpected defaults %+v", c)
	}
	if c.Mode != "walls" || c.SpectateAddr != "" {
		t.Fatalf("unexpected defaults %+v", c)
	}
}

func TestInitConfigFromEnv(t *testing.T) {
	t.Setenv("SNAKE_GRID_SIZE", "30")
	t.Setenv("SNAKE_INITIAL_SPEED_MS", "200")
	t.Setenv("SNAKE_MODE", "pass-through")
	t.Setenv("SNAKE_SEED", "99")
	t.Setenv("SNAKE_SPECTATE_ADDR", ":8089")

	c := initConfig()
	if c.GridSize != 30 || c.InitialSpeedMS != 200 || c.Seed != 99 || c.SpectateAddr != ":8089" {
		t.Fatalf("env not applied: %+v", c)
	}

	g, err := c.Game()
	if err != nil {
		t.Fatalf("Game: %v", err)
	}
	if g.Mode != types.PassThrough || g.InitialSpeed != 200*time.Millisecond || g.InitialSnake[0] != (types.Cell{Row: 15, Col: 15}) {
		t.Fatalf("game config = %+v", g)
	}
}

func TestGameRejectsBadSettings(t *testing.T) {
	tests := []Config{
		{GridSize: 20, InitialSpeedMS: 180, SpeedStepMS: 10, MinSpeedMS: 50, Mode: "lava"},
		{GridSize: 0, InitialSpeedMS: 180, SpeedStepMS: 10, MinSpeedMS: 50, Mode: "walls"},
		{GridSize: 20, InitialSpeedMS: 20, SpeedStepMS: 10, MinSpeedMS: 50, Mode: "walls"},
	}
	for _, c := range tests {
		if _, err := c.Game(); errors.Cause(err) != game.ErrInvalidConfig {
			t.Errorf("%+v: err = %v, want ErrInvalidConfig", c, err)
		}
	}
}
