// Package term draws the game in a terminal and reads arrow keys through tcell.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"gridsnake/game"
	"gridsnake/game/types"
)

// Each grid cell is two terminal columns wide so tiles look square.
const cellWidth = 2

var (
	borderStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	headStyle    = tcell.StyleDefault.Foreground(tcell.ColorLightGreen)
	segmentStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	foodStyle    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	textStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Input collects key events between frames. Terminals report presses but
// not releases, so a key counts as held for the frame after it arrived.
type Input struct {
	pressed types.DirectionSet
	quit    bool
	pause   bool
}

// HandleKey records one key event.
func (in *Input) HandleKey(key tcell.Key, r rune) {
	switch key {
	case tcell.KeyLeft:
		in.pressed = in.pressed.With(types.Left)
	case tcell.KeyRight:
		in.pressed = in.pressed.With(types.Right)
	case tcell.KeyUp:
		in.pressed = in.pressed.With(types.Up)
	case tcell.KeyDown:
		in.pressed = in.pressed.With(types.Down)
	case tcell.KeyEscape, tcell.KeyCtrlC:
		in.quit = true
	case tcell.KeyRune:
		switch r {
		case 'a', 'h':
			in.pressed = in.pressed.With(types.Left)
		case 'd', 'l':
			in.pressed = in.pressed.With(types.Right)
		case 'w', 'k':
			in.pressed = in.pressed.With(types.Up)
		case 's', 'j':
			in.pressed = in.pressed.With(types.Down)
		case 'p', ' ':
			in.pause = !in.pause
		case 'q':
			in.quit = true
		}
	}
}

// Frame returns the keys seen since the previous call and forgets them.
func (in *Input) Frame() types.DirectionSet {
	p := in.pressed
	in.pressed = 0
	return p
}

// Quit reports whether a quit key was pressed.
func (in *Input) Quit() bool {
	return in.quit
}

// TogglePause reports and clears a pending pause toggle.
func (in *Input) TogglePause() bool {
	p := in.pause
	in.pause = false
	return p
}

// Renderer draws snapshots onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Origin returns the terminal position of grid cell c given a board whose
// top-left border corner is at (0, 1).
func Origin(grid types.Grid, c types.Cell) (col, row int) {
	col = 1 + c.X*cellWidth
	row = 2 + (grid.Rows() - 1 - c.Y)
	return col, row
}

func (r *Renderer) Draw(snap game.Snapshot) {
	s := r.screen
	s.Clear()

	status := fmt.Sprintf("score %d  best %d  length %d", snap.Score, snap.HighScore, len(snap.Segments))
	if snap.Paused {
		status += "  [paused]"
	}
	drawText(s, 0, 0, status, textStyle)

	cols, rows := snap.Grid.Columns(), snap.Grid.Rows()
	right := 1 + cols*cellWidth
	bottom := 2 + rows
	for x := 0; x <= right; x++ {
		s.SetContent(x, 1, '─', nil, borderStyle)
		s.SetContent(x, bottom, '─', nil, borderStyle)
	}
	for y := 1; y <= bottom; y++ {
		s.SetContent(0, y, '│', nil, borderStyle)
		s.SetContent(right, y, '│', nil, borderStyle)
	}
	s.SetContent(0, 1, '┌', nil, borderStyle)
	s.SetContent(right, 1, '┐', nil, borderStyle)
	s.SetContent(0, bottom, '└', nil, borderStyle)
	s.SetContent(right, bottom, '┘', nil, borderStyle)

	for _, f := range snap.Food {
		r.put(snap.Grid, f, '●', foodStyle)
	}
	for _, seg := range snap.Segments {
		r.put(snap.Grid, seg, '█', segmentStyle)
	}
	r.put(snap.Grid, snap.Head.Cell, headRune(snap.Head.Direction), headStyle)

	s.Show()
}

func (r *Renderer) put(grid types.Grid, c types.Cell, ch rune, style tcell.Style) {
	col, row := Origin(grid, c)
	for i := 0; i < cellWidth; i++ {
		r.screen.SetContent(col+i, row, ch, nil, style)
	}
}

func headRune(d types.Direction) rune {
	switch d {
	case types.Left:
		return '◀'
	case types.Right:
		return '▶'
	case types.Down:
		return '▼'
	default:
		return '▲'
	}
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		s.SetContent(x+i, y, ch, nil, style)
	}
}
