package manager

import (
	"gridsnake/game/entity"
)

// GrowthQueue counts growth events that have not yet become segments.
type GrowthQueue struct {
	pending int
}

func NewGrowthQueue() *GrowthQueue {
	return &GrowthQueue{}
}

// Add queues n growth events. Non-positive n is ignored.
func (gq *GrowthQueue) Add(n int) {
	if n > 0 {
		gq.pending += n
	}
}

// Pending returns the number of queued growth events.
func (gq *GrowthQueue) Pending() int {
	return gq.pending
}

// Drain materializes at most one queued event as a new tail segment placed
// on the cell the tail vacated during this tick's advance. It must run after
// Advance and before anything else moves the snake.
func (gq *GrowthQueue) Drain(snake *entity.Snake) (entity.SegmentID, bool) {
	if gq.pending <= 0 {
		return 0, false
	}
	gq.pending--
	return snake.Body.Append(snake.LastTailCell()), true
}

// Reset discards all queued growth.
func (gq *GrowthQueue) Reset() {
	gq.pending = 0
}
