package ui

import (
	"gridsnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// keyBindings maps each direction to the arrow key and its WASD twin.
var keyBindings = map[types.Direction][]int32{
	types.Left:  {rl.KeyLeft, rl.KeyA},
	types.Down:  {rl.KeyDown, rl.KeyS},
	types.Up:    {rl.KeyUp, rl.KeyW},
	types.Right: {rl.KeyRight, rl.KeyD},
}

// PollDirections returns the movement keys currently held down.
func PollDirections() types.DirectionSet {
	var pressed types.DirectionSet
	for dir, keys := range keyBindings {
		for _, k := range keys {
			if rl.IsKeyDown(k) {
				pressed = pressed.With(dir)
				break
			}
		}
	}
	return pressed
}
