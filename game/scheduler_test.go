package game

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"snake-modes/game/types"
)

type nopLogger struct{}

func (nopLogger) Info(string)    {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}

func fastConfig() Config {
	cfg := DefaultConfig()
	cfg.InitialSpeed = 5 * time.Millisecond
	cfg.SpeedStep = time.Millisecond
	cfg.MinSpeed = time.Millisecond
	return cfg
}

func runScheduler(t *testing.T, e *Engine) (stop func() error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- NewScheduler(e, nopLogger{}).Run(ctx)
	}()
	return func() error {
		cancel()
		select {
		case err := <-done:
			return err
		case <-time.After(2 * time.Second):
			t.Fatal("scheduler did not stop")
			return nil
		}
	}
}

func waitFor(t *testing.T, e *Engine, status types.Status) Snapshot {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if snap := e.Snapshot(); snap.Status == status {
			return snap
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("status never reached %v", status)
	return Snapshot{}
}

func TestSchedulerRunsUntilGameOver(t *testing.T) {
	e := newTestEngine(t, fastConfig())
	stop := runScheduler(t, e)

	e.Start()
	over := waitFor(t, e, types.GameOver)
	if over.LastCollision != types.WallCollision {
		t.Fatalf("collision = %v, want wall", over.LastCollision)
	}
	if over.Head().Col != 19 {
		t.Fatalf("head = %v, want last column", over.Head())
	}

	time.Sleep(20 * time.Millisecond)
	if got := e.Snapshot(); got.Status != types.GameOver {
		t.Fatalf("status changed after game over: %v", got.Status)
	}

	if err := stop(); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run returned %v, want context.Canceled", err)
	}
}

func TestSchedulerStopsOnResetAndResumes(t *testing.T) {
	e := newTestEngine(t, fastConfig())

	var mu sync.Mutex
	ticks := 0
	cancel := e.Subscribe(func(s Snapshot) {
		mu.Lock()
		ticks++
		mu.Unlock()
	})
	defer cancel()
	count := func() int {
		mu.Lock()
		defer mu.Unlock()
		return ticks
	}

	stop := runScheduler(t, e)
	defer stop()

	e.Start()
	time.Sleep(15 * time.Millisecond)
	e.Reset()
	after := count()
	time.Sleep(30 * time.Millisecond)
	if got := count(); got != after {
		t.Fatalf("engine changed %d times after reset", got-after)
	}
	if s := e.Snapshot(); s.Status != types.Idle {
		t.Fatalf("status = %v, want IDLE", s.Status)
	}

	e.Start()
	waitFor(t, e, types.GameOver)
}

func TestSchedulerIdleDoesNothing(t *testing.T) {
	e := newTestEngine(t, fastConfig())
	before := e.Snapshot()
	stop := runScheduler(t, e)

	time.Sleep(20 * time.Millisecond)
	stop()

	if got := e.Snapshot(); got.Head() != before.Head() || got.Status != types.Idle {
		t.Fatalf("idle engine moved: %+v", got)
	}
}

func TestSchedulerRestartGetsFullInterval(t *testing.T) {
	cfg := fastConfig()
	cfg.InitialSpeed = 200 * time.Millisecond
	e := newTestEngine(t, cfg)
	initial := e.Snapshot().Head()

	stop := runScheduler(t, e)
	defer stop()

	e.Start()
	time.Sleep(100 * time.Millisecond)
	e.Reset()
	e.Start()

	// the first run's tick would have been due 100ms from now
	time.Sleep(150 * time.Millisecond)
	if head := e.Snapshot().Head(); head != initial {
		t.Fatalf("restarted run ticked early, head = %v", head)
	}

	deadline := time.Now().Add(2 * time.Second)
	for e.Snapshot().Head() == initial {
		if time.Now().After(deadline) {
			t.Fatal("restarted run never ticked")
		}
		time.Sleep(time.Millisecond)
	}
}
