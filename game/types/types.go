package types

import "fmt"

// Cell is a single grid position. Y grows upward.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by d.
func (c Cell) Add(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// Step returns the neighbouring cell in direction dir.
func (c Cell) Step(dir Direction) Cell {
	return c.Add(dir.Delta())
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Bounds selects whether the arena's upper edge is part of the arena.
type Bounds int

const (
	// Exclusive arenas span [0, Width) x [0, Height).
	Exclusive Bounds = iota
	// Inclusive arenas span [0, Width] x [0, Height].
	Inclusive
)

func (b Bounds) String() string {
	switch b {
	case Exclusive:
		return "exclusive"
	case Inclusive:
		return "inclusive"
	default:
		return fmt.Sprintf("Bounds(%d)", int(b))
	}
}

// ParseBounds converts a flag value into a Bounds mode.
func ParseBounds(s string) (Bounds, error) {
	switch s {
	case "exclusive":
		return Exclusive, nil
	case "inclusive":
		return Inclusive, nil
	}
	return Exclusive, fmt.Errorf("unknown bounds mode %q", s)
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
	Bounds Bounds
}

// Contains reports whether c lies inside the arena.
func (g Grid) Contains(c Cell) bool {
	if c.X < 0 || c.Y < 0 {
		return false
	}
	if g.Bounds == Inclusive {
		return c.X <= g.Width && c.Y <= g.Height
	}
	return c.X < g.Width && c.Y < g.Height
}

// Columns is the number of addressable columns, including the upper edge for
// inclusive arenas.
func (g Grid) Columns() int {
	if g.Bounds == Inclusive {
		return g.Width + 1
	}
	return g.Width
}

// Rows is the number of addressable rows.
func (g Grid) Rows() int {
	if g.Bounds == Inclusive {
		return g.Height + 1
	}
	return g.Height
}

// Game defaults
const (
	DefaultWidth           = 20
	DefaultHeight          = 20
	DefaultMaxFood         = 3
	DefaultGrowthPerFood   = 1
	DefaultInitialSegments = 2
)

// DefaultSpawnHead is where the head is placed on start and after a reset.
var DefaultSpawnHead = Cell{X: 10, Y: 10}
