package ui

import (
	"fmt"

	"gridsnake/game"
	"gridsnake/game/entity"
	"gridsnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10 // Padding around game area
	hudHeight     = 30 // Space reserved above the grid for the score line
)

var (
	headColor    = rl.Color{R: 180, G: 230, B: 120, A: 255}
	segmentColor = rl.Color{R: 90, G: 170, B: 70, A: 255}
	foodColor    = rl.Red
)

type Renderer struct {
	screenWidth  int32
	screenHeight int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

func (r *Renderer) Draw(snap game.Snapshot) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	layout := NewLayout(snap.Grid, int(r.screenWidth), int(r.screenHeight-hudHeight), borderPadding)
	layout.OffsetY += hudHeight

	board := layout.Board()
	rl.DrawRectangleRec(toRect(board), rl.DarkGray)

	for _, food := range snap.Food {
		rl.DrawRectangleRec(toRect(layout.CellRect(food, entity.FoodSize)), foodColor)
	}
	for _, seg := range snap.Segments {
		rl.DrawRectangleRec(toRect(layout.CellRect(seg, entity.SegmentSize)), segmentColor)
	}
	head := layout.CellRect(snap.Head.Cell, entity.HeadSize)
	rl.DrawRectangleRec(toRect(head), headColor)
	r.drawDirection(head, snap.Head.Direction)

	fontSize := int32(20)
	text := fmt.Sprintf("Score: %d  Best: %d  Length: %d", snap.Score, snap.HighScore, len(snap.Segments))
	rl.DrawText(text, borderPadding, 5, fontSize, rl.White)
	if snap.Paused {
		label := "PAUSED"
		w := rl.MeasureText(label, fontSize*2)
		rl.DrawText(label, (r.screenWidth-w)/2, r.screenHeight/2, fontSize*2, rl.Yellow)
	}

	rl.EndDrawing()
}

// drawDirection draws a small triangle on the head pointing where it faces.
func (r *Renderer) drawDirection(head Rect, dir types.Direction) {
	cx, cy := head.X+head.W/2, head.Y+head.H/2
	half := head.W / 2
	var tip, a, b rl.Vector2
	switch dir {
	case types.Right:
		tip = rl.Vector2{X: cx + half, Y: cy}
		a = rl.Vector2{X: cx, Y: cy - half}
		b = rl.Vector2{X: cx, Y: cy + half}
	case types.Left:
		tip = rl.Vector2{X: cx - half, Y: cy}
		a = rl.Vector2{X: cx, Y: cy + half}
		b = rl.Vector2{X: cx, Y: cy - half}
	case types.Down:
		tip = rl.Vector2{X: cx, Y: cy + half}
		a = rl.Vector2{X: cx + half, Y: cy}
		b = rl.Vector2{X: cx - half, Y: cy}
	default: // Up
		tip = rl.Vector2{X: cx, Y: cy - half}
		a = rl.Vector2{X: cx - half, Y: cy}
		b = rl.Vector2{X: cx + half, Y: cy}
	}
	// raylib wants counter-clockwise vertex order
	rl.DrawTriangle(tip, a, b, rl.Yellow)
}

func toRect(r Rect) rl.Rectangle {
	return rl.Rectangle{X: r.X, Y: r.Y, Width: r.W, Height: r.H}
}
