//go:build !ebiten

package ebitenui

import (
	"gridsnake/audio"
	"gridsnake/game"
)

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New panics to indicate that the ebiten build tag is required.
func New(*game.Game, audio.Player) *Game {
	panic("ebitenui.New requires building with the 'ebiten' tag")
}

// Size is a no-op placeholder.
func (a *Game) Size() (int, int) { return 0, 0 }
