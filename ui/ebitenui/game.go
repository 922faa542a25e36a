//go:build ebiten

// Package ebitenui adapts the game to the ebiten.Game interface.
package ebitenui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"gridsnake/audio"
	"gridsnake/game"
	"gridsnake/game/entity"
	"gridsnake/game/types"
	"gridsnake/ui"
)

const (
	tileSize  = 24
	padding   = 10
	hudHeight = 20
)

var (
	boardColor   = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	headColor    = color.RGBA{R: 180, G: 230, B: 120, A: 255}
	segmentColor = color.RGBA{R: 90, G: 170, B: 70, A: 255}
	foodColor    = color.RGBA{R: 220, G: 50, B: 50, A: 255}
)

var keyBindings = map[types.Direction][]ebiten.Key{
	types.Left:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	types.Down:  {ebiten.KeyArrowDown, ebiten.KeyS},
	types.Up:    {ebiten.KeyArrowUp, ebiten.KeyW},
	types.Right: {ebiten.KeyArrowRight, ebiten.KeyD},
}

// Game wraps a game.Game for ebiten.RunGame.
type Game struct {
	g      *game.Game
	player audio.Player
}

// New constructs an ebiten adapter around g.
func New(g *game.Game, player audio.Player) *Game {
	return &Game{g: g, player: player}
}

// Size returns the window size that shows the whole arena.
func (a *Game) Size() (int, int) {
	grid := a.g.Grid
	return grid.Columns()*tileSize + 2*padding, grid.Rows()*tileSize + 2*padding + hudHeight
}

// Update handles per-frame logic and advances the simulation.
func (a *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.g.SetPaused(!a.g.Paused())
	}

	var pressed types.DirectionSet
	for dir, keys := range keyBindings {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				pressed = pressed.With(dir)
			}
		}
	}

	events := a.g.Update(game.Frame{
		Elapsed: time.Second / time.Duration(ebiten.TPS()),
		Pressed: pressed,
	})
	a.player.Play(events)
	return nil
}

// Draw renders the current snapshot.
func (a *Game) Draw(screen *ebiten.Image) {
	snap := a.g.Snapshot()
	w, h := a.Size()
	layout := ui.NewLayout(snap.Grid, w, h-hudHeight, padding)
	layout.OffsetY += hudHeight

	fill(screen, layout.Board(), boardColor)
	for _, f := range snap.Food {
		fill(screen, layout.CellRect(f, entity.FoodSize), foodColor)
	}
	for _, s := range snap.Segments {
		fill(screen, layout.CellRect(s, entity.SegmentSize), segmentColor)
	}
	fill(screen, layout.CellRect(snap.Head.Cell, entity.HeadSize), headColor)

	status := fmt.Sprintf("score %d  best %d  length %d", snap.Score, snap.HighScore, len(snap.Segments))
	if snap.Paused {
		status += "  [paused]"
	}
	ebitenutil.DebugPrint(screen, status)
}

// Layout returns the logical screen size.
func (a *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.Size()
}

func fill(dst *ebiten.Image, r ui.Rect, c color.Color) {
	vector.DrawFilledRect(dst, r.X, r.Y, r.W, r.H, c, false)
}
