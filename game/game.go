package game

import (
	"sync"
	"time"

	"snake-modes/game/entity"
	"snake-modes/game/manager"
	"snake-modes/game/types"

	"golang.org/x/exp/rand"
)

// Snapshot is a read-only copy of the engine state.
// Food is types.NoCell once a full board has ended the game. Run counts the
// games started so far, so a restart is distinguishable from the run before it.
type Snapshot struct {
	Snake         []types.Cell
	Food          types.Cell
	Direction     types.Direction
	Speed         time.Duration
	Score         int
	Status        types.Status
	Mode          types.WallMode
	LastCollision types.CollisionType
	Run           int
}

// Head returns the first snake cell.
func (s Snapshot) Head() types.Cell {
	return s.Snake[0]
}

type state struct {
	snake         *entity.Snake
	food          types.Cell
	direction     types.Direction
	speed         time.Duration
	score         int
	status        types.Status
	mode          types.WallMode
	lastCollision types.CollisionType
	run           int
}

// Engine owns the game state. Every exported method is serialized on one lock,
// and subscribers see each accepted change once, in order.
type Engine struct {
	mu    sync.Mutex
	cfg   Config
	grid  types.Grid
	rules *manager.MotionRules
	food  *manager.FoodSampler
	state state

	// seq numbers accepted changes under mu; delivered is the last one handed to
	// subscribers and is guarded by notifyMu.
	seq        uint64
	delivered  uint64
	notifyMu   sync.Mutex
	notifyCond *sync.Cond

	subsMu  sync.RWMutex
	subs    map[int]func(Snapshot)
	nextSub int
}

// NewEngine validates cfg and builds an engine in the IDLE state. rng drives food placement;
// pass a seeded generator for reproducible runs.
func NewEngine(cfg Config, rng *rand.Rand) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	initial := make([]types.Cell, len(cfg.InitialSnake))
	copy(initial, cfg.InitialSnake)
	cfg.InitialSnake = initial

	grid := types.Grid{Size: cfg.GridSize}
	e := &Engine{
		cfg:   cfg,
		grid:  grid,
		rules: manager.NewMotionRules(grid),
		food:  manager.NewFoodSampler(grid, rng),
		subs:  make(map[int]func(Snapshot)),
	}
	e.notifyCond = sync.NewCond(&e.notifyMu)
	e.state = e.initialState(cfg.Mode)
	return e, nil
}

func (e *Engine) initialState(mode types.WallMode) state {
	snake := entity.NewSnake(e.cfg.InitialSnake)
	food, _ := e.food.Sample(snake.Body)
	return state{
		snake:     snake,
		food:      food,
		direction: types.Right,
		speed:     e.cfg.InitialSpeed,
		status:    types.Idle,
		mode:      mode,
	}
}

// Grid returns the playing field dimensions.
func (e *Engine) Grid() types.Grid {
	return e.grid
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() Snapshot {
	return Snapshot{
		Snake:         e.state.snake.Cells(),
		Food:          e.state.food,
		Direction:     e.state.direction,
		Speed:         e.state.speed,
		Score:         e.state.score,
		Status:        e.state.status,
		Mode:          e.state.mode,
		LastCollision: e.state.lastCollision,
		Run:           e.state.run,
	}
}

// Start moves an IDLE game to RUNNING.
func (e *Engine) Start() bool {
	return e.mutate(func(s *state) bool {
		if s.status != types.Idle {
			return false
		}
		s.status = types.Running
		s.run++
		return true
	})
}

// SetDirection turns the snake. It is ignored unless the game is RUNNING,
// and a turn straight back onto the body is ignored as well.
func (e *Engine) SetDirection(d types.Direction) bool {
	return e.mutate(func(s *state) bool {
		if s.status != types.Running || !d.Valid() {
			return false
		}
		if d == s.direction.Opposite() {
			return false
		}
		s.direction = d
		return true
	})
}

// SetMode selects the wall behaviour; rejected while RUNNING.
func (e *Engine) SetMode(m types.WallMode) bool {
	return e.mutate(func(s *state) bool {
		if s.status == types.Running {
			return false
		}
		if m != types.Walls && m != types.PassThrough {
			return false
		}
		s.mode = m
		return true
	})
}

// Reset rebuilds the starting snake, speed, score and food and returns to IDLE.
// The selected wall mode and the run count are kept.
func (e *Engine) Reset() {
	e.mutate(func(s *state) bool {
		run := s.run
		*s = e.initialState(s.mode)
		s.run = run
		return true
	})
}

// Tick advances the snake one cell and returns the resulting state.
// Outside RUNNING it changes nothing.
func (e *Engine) Tick() Snapshot {
	var snap Snapshot
	e.mutateThen(func(s *state) bool {
		if s.status != types.Running {
			return false
		}
		e.step(s)
		return true
	}, func(after Snapshot) {
		snap = after
	})
	return snap
}

func (e *Engine) step(s *state) {
	candidate := e.rules.NextHead(s.snake.GetHead(), s.direction)
	res := e.rules.ResolveCollision(candidate, s.snake.Tail(), s.mode)
	if res.Collided {
		s.status = types.GameOver
		s.lastCollision = res.Type
		return
	}

	if res.Head != s.food {
		s.snake = s.snake.Advanced(res.Head, false)
		return
	}

	s.snake = s.snake.Advanced(res.Head, true)
	s.score++
	s.speed -= e.cfg.SpeedStep
	if s.speed < e.cfg.MinSpeed {
		s.speed = e.cfg.MinSpeed
	}
	food, ok := e.food.Sample(s.snake.Body)
	if !ok {
		s.food = types.NoCell
		s.status = types.GameOver
		s.lastCollision = types.BoardFull
		return
	}
	s.food = food
}

// Subscribe registers fn to receive a snapshot after every accepted change.
// fn runs on the goroutine that made the change, with no engine lock held. It may read
// the engine but must not call mutating methods synchronously: that change would wait
// for fn to return.
func (e *Engine) Subscribe(fn func(Snapshot)) (cancel func()) {
	e.subsMu.Lock()
	id := e.nextSub
	e.nextSub++
	e.subs[id] = fn
	e.subsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.subsMu.Lock()
			delete(e.subs, id)
			e.subsMu.Unlock()
		})
	}
}

func (e *Engine) mutate(fn func(*state) bool) bool {
	return e.mutateThen(fn, nil)
}

// mutateThen applies fn to a working copy and commits it only when fn accepts the change.
// Accepted changes reach subscribers in commit order.
func (e *Engine) mutateThen(fn func(*state) bool, after func(Snapshot)) bool {
	e.mu.Lock()
	next := e.state
	accepted := fn(&next)
	if accepted {
		e.state = next
		e.seq++
	}
	seq := e.seq
	snap := e.snapshotLocked()
	e.mu.Unlock()

	if after != nil {
		after(snap)
	}
	if !accepted {
		return false
	}

	e.notifyMu.Lock()
	for e.delivered != seq-1 {
		e.notifyCond.Wait()
	}
	e.notifyMu.Unlock()
	defer e.markDelivered(seq)

	e.subsMu.RLock()
	subs := make([]func(Snapshot), 0, len(e.subs))
	for _, sub := range e.subs {
		subs = append(subs, sub)
	}
	e.subsMu.RUnlock()
	for _, sub := range subs {
		sub(cloneSnapshot(snap))
	}
	return true
}

func (e *Engine) markDelivered(seq uint64) {
	e.notifyMu.Lock()
	e.delivered = seq
	e.notifyCond.Broadcast()
	e.notifyMu.Unlock()
}

func cloneSnapshot(s Snapshot) Snapshot {
	snake := make([]types.Cell, len(s.Snake))
	copy(snake, s.Snake)
	s.Snake = snake
	return s
}
