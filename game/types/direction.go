package types

// Direction is one of the four cardinal directions
type Direction int

const (
	Left Direction = iota
	Up
	Right
	Down
)

// Directions lists every direction in declaration order.
var Directions = [...]Direction{Left, Up, Right, Down}

// Delta converts a Direction into a one-cell displacement
func (d Direction) Delta() Cell {
	switch d {
	case Left:
		return Cell{X: -1, Y: 0}
	case Right:
		return Cell{X: 1, Y: 0}
	case Up:
		return Cell{X: 0, Y: 1} // Up increments Y
	case Down:
		return Cell{X: 0, Y: -1}
	default:
		return Cell{}
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	case Down:
		return Up
	default:
		return d
	}
}

// TurnLeft returns the direction after a counter-clockwise quarter turn.
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Left:
		return Down
	case Down:
		return Right
	case Right:
		return Up
	default:
		return d
	}
}

// TurnRight returns the direction after a clockwise quarter turn.
func (d Direction) TurnRight() Direction {
	return d.TurnLeft().Opposite()
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	default:
		return "none"
	}
}

// DirectionSet is the set of movement keys held during one frame.
type DirectionSet uint8

// NewDirectionSet builds a set from the given directions.
func NewDirectionSet(dirs ...Direction) DirectionSet {
	var s DirectionSet
	for _, d := range dirs {
		s = s.With(d)
	}
	return s
}

// With returns the set with d added.
func (s DirectionSet) With(d Direction) DirectionSet {
	return s | 1<<uint(d)
}

// Has reports whether d is in the set.
func (s DirectionSet) Has(d Direction) bool {
	return s&(1<<uint(d)) != 0
}

// Empty reports whether no movement key is held.
func (s DirectionSet) Empty() bool {
	return s == 0
}
