package game

import (
	"context"
	"fmt"
	"time"

	"snake-modes/game/types"
)

// Logger is the logging surface the game loop writes to.
type Logger interface {
	Info(string)
	Warning(string)
	Error(string)
}

// Scheduler drives Engine.Tick while the game is RUNNING, waiting the engine's
// current speed between ticks.
type Scheduler struct {
	engine *Engine
	logger Logger
}

func NewScheduler(engine *Engine, logger Logger) *Scheduler {
	return &Scheduler{
		engine: engine,
		logger: logger,
	}
}

// Run ticks until ctx is done. A snapshot that leaves RUNNING (game over, reset) stops
// the pending tick at once; a speed change re-arms the timer with the new interval, and a
// new run always gets a full first interval.
func (s *Scheduler) Run(ctx context.Context) error {
	updates := make(chan Snapshot, 1)
	cancel := s.engine.Subscribe(func(snap Snapshot) {
		for {
			select {
			case updates <- snap:
				return
			default:
			}
			// keep only the latest snapshot
			select {
			case <-updates:
			default:
			}
		}
	})
	defer cancel()

	timer := time.NewTimer(time.Hour)
	stopTimer(timer)
	armed := false
	var interval time.Duration
	// run is the engine run the pending timer belongs to; a restart must not inherit it.
	run := 0

	arm := func(snap Snapshot) {
		stopTimer(timer)
		timer.Reset(snap.Speed)
		armed = true
		interval = snap.Speed
		run = snap.Run
	}

	if snap := s.engine.Snapshot(); snap.Status == types.Running {
		arm(snap)
	}

	for {
		select {
		case <-ctx.Done():
			stopTimer(timer)
			return ctx.Err()

		case snap := <-updates:
			if snap.Status != types.Running {
				if armed {
					stopTimer(timer)
					armed = false
					s.logger.Info(fmt.Sprintf("stopped ticking: %s, score %d", snap.Status, snap.Score))
				}
				continue
			}
			if !armed || snap.Run != run {
				s.logger.Info(fmt.Sprintf("ticking every %v in %s mode", snap.Speed, snap.Mode))
				arm(snap)
			} else if snap.Speed != interval {
				arm(snap)
			}

		case <-timer.C:
			armed = false
			if cur := s.engine.Snapshot(); cur.Status == types.Running && cur.Run != run {
				// restarted while this timer was pending; give the new run a full interval
				arm(cur)
				continue
			}
			snap := s.engine.Tick()
			if snap.Status == types.Running {
				arm(snap)
				continue
			}
			s.logger.Info(fmt.Sprintf("stopped ticking: %s, score %d", snap.Status, snap.Score))
		}
	}
}

func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}
