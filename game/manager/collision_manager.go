package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Grid returns the arena the manager checks against.
func (cm *CollisionManager) Grid() types.Grid {
	return cm.grid
}

// CheckCollision evaluates a new head position against the walls and against
// the body cells as they were before the tick moved anything.
func (cm *CollisionManager) CheckCollision(pos types.Cell, snapshot []types.Cell) CollisionType {
	if cm.IsWallCollision(pos) {
		return WallCollision
	}
	if cm.IsSelfCollision(pos, snapshot) {
		return SelfCollision
	}
	return NoCollision
}

// IsWallCollision checks if a position lies outside the arena
func (cm *CollisionManager) IsWallCollision(pos types.Cell) bool {
	return !cm.grid.Contains(pos)
}

// IsSelfCollision checks if a position matches any snapshot cell
func (cm *CollisionManager) IsSelfCollision(pos types.Cell, snapshot []types.Cell) bool {
	for _, c := range snapshot {
		if c == pos {
			return true
		}
	}
	return false
}

// ValidateSpawnPosition checks if a position is free for spawning food
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Cell, snake *entity.Snake, food []entity.Food) bool {
	if cm.IsWallCollision(pos) {
		return false
	}
	if snake != nil {
		if snake.GetHead() == pos || snake.Occupies(pos) {
			return false
		}
	}
	for _, f := range food {
		if f.Cell == pos {
			return false
		}
	}
	return true
}

// CheckFoodCollision returns the index of the food at pos, or -1.
func (cm *CollisionManager) CheckFoodCollision(pos types.Cell, food []entity.Food) int {
	for i, f := range food {
		if f.Cell == pos {
			return i
		}
	}
	return -1
}
