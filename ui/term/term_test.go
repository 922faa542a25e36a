package term

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"gridsnake/game"
	"gridsnake/game/types"
)

func TestInputCollectsUntilFrame(t *testing.T) {
	var in Input
	in.HandleKey(tcell.KeyLeft, 0)
	in.HandleKey(tcell.KeyRune, 'w')

	got := in.Frame()
	if !got.Has(types.Left) || !got.Has(types.Up) || got.Has(types.Right) {
		t.Fatalf("unexpected pressed set %08b", got)
	}
	if !in.Frame().Empty() {
		t.Fatal("keys should be forgotten after a frame")
	}
}

func TestInputControlKeys(t *testing.T) {
	var in Input
	in.HandleKey(tcell.KeyRune, 'p')
	if !in.TogglePause() {
		t.Fatal("expected pause toggle")
	}
	if in.TogglePause() {
		t.Fatal("pause toggle should be consumed")
	}
	if in.Quit() {
		t.Fatal("quit set too early")
	}
	in.HandleKey(tcell.KeyEscape, 0)
	if !in.Quit() {
		t.Fatal("expected quit after escape")
	}
}

func TestOriginFlipsRows(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 10}
	col, row := Origin(grid, types.Cell{X: 0, Y: 9})
	if col != 1 || row != 2 {
		t.Fatalf("top-left cell at (%d,%d), expected (1,2)", col, row)
	}
	col, row = Origin(grid, types.Cell{X: 3, Y: 0})
	if col != 7 || row != 11 {
		t.Fatalf("cell (3,0) at (%d,%d), expected (7,11)", col, row)
	}
}

func TestRendererDrawsEntities(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 30)

	cfg := game.DefaultConfig()
	cfg.FoodSpawnInterval = time.Hour
	g, err := game.NewGame(cfg)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	food := types.Cell{X: 3, Y: 4}
	g.PlaceFood(food)

	NewRenderer(screen).Draw(g.Snapshot())

	check := func(c types.Cell, want rune) {
		t.Helper()
		col, row := Origin(g.Grid, c)
		got, _, _, _ := screen.GetContent(col, row)
		if got != want {
			t.Errorf("cell %v: expected %q, got %q", c, want, got)
		}
	}
	check(types.Cell{X: 10, Y: 10}, '▲')
	check(types.Cell{X: 10, Y: 9}, '█')
	check(types.Cell{X: 10, Y: 8}, '█')
	check(food, '●')
	check(types.Cell{X: 0, Y: 0}, ' ')
}
