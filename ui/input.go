package ui

import (
	"snake-modes/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// keyBindings maps raylib keys to game commands.
var keyBindings = map[int32]game.Command{
	rl.KeyUp:    game.CmdUp,
	rl.KeyW:     game.CmdUp,
	rl.KeyDown:  game.CmdDown,
	rl.KeyS:     game.CmdDown,
	rl.KeyLeft:  game.CmdLeft,
	rl.KeyA:     game.CmdLeft,
	rl.KeyRight: game.CmdRight,
	rl.KeyD:     game.CmdRight,
	rl.KeySpace: game.CmdStart,
	rl.KeyEnter: game.CmdStart,
	rl.KeyOne:   game.CmdWalls,
	rl.KeyTwo:   game.CmdPassThrough,
}

// CommandForKey returns the command bound to key.
func CommandForKey(key int32) (game.Command, bool) {
	cmd, ok := keyBindings[key]
	return cmd, ok
}

// PollCommands drains the keys pressed since the last frame, in press order.
func PollCommands() []game.Command {
	var cmds []game.Command
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if cmd, ok := CommandForKey(key); ok {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}
