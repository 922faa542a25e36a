package ui

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// Rect is a screen-space rectangle in pixels.
type Rect struct {
	X, Y, W, H float32
}

// Layout maps grid cells onto a screen area. Grid Y grows upward, screen Y
// grows downward, so rows are flipped.
type Layout struct {
	CellSize float32
	OffsetX  float32
	OffsetY  float32
	Columns  int
	Rows     int
}

// NewLayout fits the grid into a width x height area with padding on each
// side, using square tiles, centred.
func NewLayout(grid types.Grid, width, height, padding int) Layout {
	cols, rows := grid.Columns(), grid.Rows()
	availW := float32(width - 2*padding)
	availH := float32(height - 2*padding)
	if availW < 0 {
		availW = 0
	}
	if availH < 0 {
		availH = 0
	}

	cell := availW / float32(cols)
	if h := availH / float32(rows); h < cell {
		cell = h
	}

	return Layout{
		CellSize: cell,
		OffsetX:  (float32(width) - cell*float32(cols)) / 2,
		OffsetY:  (float32(height) - cell*float32(rows)) / 2,
		Columns:  cols,
		Rows:     rows,
	}
}

// Board is the rectangle covering the whole arena.
func (l Layout) Board() Rect {
	return Rect{
		X: l.OffsetX,
		Y: l.OffsetY,
		W: l.CellSize * float32(l.Columns),
		H: l.CellSize * float32(l.Rows),
	}
}

// CellRect returns the rectangle for an entity of the given size on cell c,
// centred inside its tile.
func (l Layout) CellRect(c types.Cell, size entity.Size) Rect {
	side := l.CellSize * float32(size)
	inset := (l.CellSize - side) / 2
	row := l.Rows - 1 - c.Y
	return Rect{
		X: l.OffsetX + float32(c.X)*l.CellSize + inset,
		Y: l.OffsetY + float32(row)*l.CellSize + inset,
		W: side,
		H: side,
	}
}
