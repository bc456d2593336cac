package game

import "snake-modes/game/types"

// Command is an input event from the player, independent of the device that produced it.
type Command int

const (
	CmdUp Command = iota
	CmdDown
	CmdLeft
	CmdRight
	CmdStart // space / enter
	CmdWalls
	CmdPassThrough
)

func (c Command) String() string {
	switch c {
	case CmdUp:
		return "up"
	case CmdDown:
		return "down"
	case CmdLeft:
		return "left"
	case CmdRight:
		return "right"
	case CmdStart:
		return "start"
	case CmdWalls:
		return "walls"
	case CmdPassThrough:
		return "pass-through"
	default:
		return "unknown"
	}
}

// Handle applies one command:
//   - directions turn the snake while RUNNING and are ignored otherwise
//   - start begins an IDLE game and resets a finished one back to IDLE
//   - mode commands pick the wall behaviour between runs
//
// It reports whether the command changed anything.
func (e *Engine) Handle(cmd Command) bool {
	switch cmd {
	case CmdUp:
		return e.SetDirection(types.Up)
	case CmdDown:
		return e.SetDirection(types.Down)
	case CmdLeft:
		return e.SetDirection(types.Left)
	case CmdRight:
		return e.SetDirection(types.Right)
	case CmdStart:
		return e.mutate(func(s *state) bool {
			switch s.status {
			case types.Idle:
				s.status = types.Running
				return true
			case types.GameOver:
				*s = e.initialState(s.mode)
				return true
			}
			return false
		})
	case CmdWalls:
		return e.SetMode(types.Walls)
	case CmdPassThrough:
		return e.SetMode(types.PassThrough)
	default:
		return false
	}
}
