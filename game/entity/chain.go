package entity

import (
	"fmt"

	"gridsnake/game/types"
)

// SegmentID identifies a body segment inside its Chain.
type SegmentID int

// Segment is one body cell of the snake. The chain owns its position.
type Segment struct {
	ID   SegmentID
	Cell types.Cell
}

// Chain stores body segments in an arena and keeps their head-to-tail order
// as a list of IDs. Index 0 follows the head, the last entry is the tail.
type Chain struct {
	arena []Segment
	order []SegmentID
}

// NewChain creates a chain with one segment per cell, in head-to-tail order.
func NewChain(cells ...types.Cell) *Chain {
	c := &Chain{
		arena: make([]Segment, 0, len(cells)),
		order: make([]SegmentID, 0, len(cells)),
	}
	for _, cell := range cells {
		c.Append(cell)
	}
	return c
}

// Len returns the number of segments.
func (c *Chain) Len() int {
	return len(c.order)
}

// Append links a new segment after the current tail.
func (c *Chain) Append(cell types.Cell) SegmentID {
	id := SegmentID(len(c.arena))
	c.arena = append(c.arena, Segment{ID: id, Cell: cell})
	c.order = append(c.order, id)
	return id
}

// Clear drops every segment.
func (c *Chain) Clear() {
	c.arena = c.arena[:0]
	c.order = c.order[:0]
}

// IDs returns the segment identities head-to-tail.
func (c *Chain) IDs() []SegmentID {
	ids := make([]SegmentID, len(c.order))
	copy(ids, c.order)
	return ids
}

// Tail returns the last segment ID. ok is false for an empty chain.
func (c *Chain) Tail() (id SegmentID, ok bool) {
	if len(c.order) == 0 {
		return 0, false
	}
	return c.order[len(c.order)-1], true
}

// Cell returns the position of segment id.
func (c *Chain) Cell(id SegmentID) types.Cell {
	return c.segment(id).Cell
}

// Cells returns a snapshot of every segment position head-to-tail.
func (c *Chain) Cells() []types.Cell {
	cells := make([]types.Cell, len(c.order))
	for i, id := range c.order {
		cells[i] = c.segment(id).Cell
	}
	return cells
}

// Segments returns copies of the segments head-to-tail.
func (c *Chain) Segments() []Segment {
	segs := make([]Segment, len(c.order))
	for i, id := range c.order {
		segs[i] = *c.segment(id)
	}
	return segs
}

// Shift moves every segment into the cell its predecessor held before the
// shift. from is the cell the head just vacated. The returned cell is the
// one vacated by the tail.
func (c *Chain) Shift(from types.Cell) types.Cell {
	last := from
	for _, id := range c.order {
		seg := c.segment(id)
		seg.Cell, last = last, seg.Cell
	}
	return last
}

// segment resolves an ID to its arena slot. An ID without a slot means the
// order list and the arena disagree, which cannot be recovered from.
func (c *Chain) segment(id SegmentID) *Segment {
	if id < 0 || int(id) >= len(c.arena) {
		panic(fmt.Sprintf("entity: segment %d has no position (arena size %d)", id, len(c.arena)))
	}
	return &c.arena[id]
}
