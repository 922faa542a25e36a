package game

import (
	"gridsnake/game/manager"
	"gridsnake/game/types"
)

// EventType identifies what happened during a frame.
type EventType int

const (
	// EventFoodSpawned: a food item appeared at Cell.
	EventFoodSpawned EventType = iota
	// EventAte: the head consumed the food at Cell.
	EventAte
	// EventGrew: a new tail segment was placed at Cell.
	EventGrew
	// EventReset: the snake collided and the round restarted.
	EventReset
)

func (t EventType) String() string {
	switch t {
	case EventFoodSpawned:
		return "food-spawned"
	case EventAte:
		return "ate"
	case EventGrew:
		return "grew"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event is emitted by Update for frontends (sound, effects, logging).
type Event struct {
	Type  EventType
	Cell  types.Cell
	Cause manager.CollisionType // set for EventReset
}
