package entity

import (
	"gridsnake/game/types"
)

// Size is the fraction of a tile an entity covers when drawn.
type Size float64

const (
	HeadSize    Size = 0.8
	SegmentSize Size = 0.65
	FoodSize    Size = 0.8
)

// Head leads the snake; it is the logical predecessor of segment 0.
type Head struct {
	Cell      types.Cell
	Direction types.Direction
}

// Snake is the head plus its body chain.
type Snake struct {
	Head  Head
	Body  *Chain
	Ticks int

	lastTail types.Cell
}

// NewSnake places the head at startPos facing Up with segments stacked
// below it, one per cell.
func NewSnake(startPos types.Cell, segments int) *Snake {
	cells := make([]types.Cell, segments)
	for i := range cells {
		cells[i] = types.Cell{X: startPos.X, Y: startPos.Y - 1 - i}
	}
	return &Snake{
		Head: Head{Cell: startPos, Direction: types.Up},
		Body: NewChain(cells...),
	}
}

// GetHead returns the head cell.
func (s *Snake) GetHead() types.Cell {
	return s.Head.Cell
}

// Len is the number of body segments, excluding the head.
func (s *Snake) Len() int {
	return s.Body.Len()
}

// NextHead is the cell the head would enter on the next advance.
func (s *Snake) NextHead() types.Cell {
	return s.Head.Cell.Step(s.Head.Direction)
}

// Advance moves the head one cell in its facing direction and shifts the
// body so each segment takes the cell its predecessor held before the move.
// It returns the cell vacated by the tail.
func (s *Snake) Advance() types.Cell {
	last := s.Head.Cell
	s.Head.Cell = s.NextHead()
	s.lastTail = s.Body.Shift(last)
	s.Ticks++
	return s.lastTail
}

// LastTailCell is the cell the tail vacated on the most recent Advance.
// It is stale once anything other than Advance has touched the snake.
func (s *Snake) LastTailCell() types.Cell {
	return s.lastTail
}

// Occupies reports whether any body segment sits on c.
func (s *Snake) Occupies(c types.Cell) bool {
	for _, cell := range s.Body.Cells() {
		if cell == c {
			return true
		}
	}
	return false
}
