package manager

import "gridsnake/game/types"

// inputPriority is the order in which held keys are considered; the first
// held one wins.
var inputPriority = [...]types.Direction{types.Left, types.Down, types.Up, types.Right}

// DirectionBuffer latches the player's requested direction every frame so a
// key pressed between movement ticks is not lost.
type DirectionBuffer struct{}

func NewDirectionBuffer() *DirectionBuffer {
	return &DirectionBuffer{}
}

// Candidate picks at most one direction from the held keys.
func (db *DirectionBuffer) Candidate(pressed types.DirectionSet) (types.Direction, bool) {
	for _, d := range inputPriority {
		if pressed.Has(d) {
			return d, true
		}
	}
	return 0, false
}

// Resolve returns the facing direction after applying this frame's input.
// A direct reversal of current is ignored.
func (db *DirectionBuffer) Resolve(pressed types.DirectionSet, current types.Direction) types.Direction {
	candidate, ok := db.Candidate(pressed)
	if !ok || candidate == current.Opposite() {
		return current
	}
	return candidate
}
