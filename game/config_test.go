package game

import (
	"reflect"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"default", func(c *Config) {}, true},
		{"zero grid", func(c *Config) { c.GridSize = 0 }, false},
		{"negative grid", func(c *Config) { c.GridSize = -3 }, false},
		{"snake off small grid", func(c *Config) { c.GridSize = 8 }, false},
		{"zero floor", func(c *Config) { c.MinSpeed = 0 }, false},
		{"start below floor", func(c *Config) { c.InitialSpeed = 10 * time.Millisecond }, false},
		{"negative step", func(c *Config) { c.SpeedStep = -time.Millisecond }, false},
		{"short snake", func(c *Config) { c.InitialSnake = c.InitialSnake[:2] }, false},
		{"gap in snake", func(c *Config) { c.InitialSnake = cells([2]int{5, 5}, [2]int{5, 4}, [2]int{5, 2}) }, false},
		{"repeated cell", func(c *Config) { c.InitialSnake = cells([2]int{5, 5}, [2]int{5, 4}, [2]int{5, 5}) }, false},
		{"facing the neck", func(c *Config) { c.InitialSnake = cells([2]int{5, 5}, [2]int{5, 6}, [2]int{5, 7}) }, false},
		{"vertical snake", func(c *Config) { c.InitialSnake = cells([2]int{5, 5}, [2]int{6, 5}, [2]int{7, 5}) }, true},
		{"unknown mode", func(c *Config) { c.Mode = 7 }, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok {
				if err == nil {
					t.Fatal("expected error")
				}
				if errors.Cause(err) != ErrInvalidConfig {
					t.Fatalf("error %v does not wrap ErrInvalidConfig", err)
				}
			}
		})
	}
}

func TestNewEngineRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GridSize = 0
	if _, err := NewEngine(cfg, nil); err == nil {
		t.Fatal("expected configuration error")
	}
}

func TestNewEngineCopiesInitialSnake(t *testing.T) {
	cfg := DefaultConfig()
	e := newTestEngine(t, cfg)
	cfg.InitialSnake[0].Row = 0
	e.Reset()
	if head := e.Snapshot().Head(); head.Row != 10 {
		t.Fatalf("engine shares config slice, head = %v", head)
	}
}

func TestDefaultSnakeFitsSmallGrids(t *testing.T) {
	for size := 3; size <= 25; size++ {
		cfg := DefaultConfig()
		cfg.GridSize = size
		cfg.InitialSnake = DefaultSnake(size)
		if err := cfg.Validate(); err != nil {
			t.Fatalf("grid %d: %v", size, err)
		}
	}

	want := cells([2]int{1, 2}, [2]int{1, 1}, [2]int{1, 0})
	if got := DefaultSnake(3); !reflect.DeepEqual(got, want) {
		t.Fatalf("DefaultSnake(3) = %v, want %v", got, want)
	}
}
