package manager

import (
	"time"

	"golang.org/x/exp/rand"

	"gridsnake/game/clock"
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// maxSpawnTries bounds random placement before falling back to a scan of
// the free cells.
const maxSpawnTries = 64

type FoodManager struct {
	grid         types.Grid
	foodList     []entity.Food
	maxFood      int
	spawnTimer   *clock.Timer
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(collisionMgr *CollisionManager, interval time.Duration, maxFood int, seed uint64) *FoodManager {
	return &FoodManager{
		grid:         collisionMgr.Grid(),
		foodList:     make([]entity.Food, 0, maxFood),
		maxFood:      maxFood,
		spawnTimer:   clock.NewTimer(interval),
		rng:          rand.New(rand.NewSource(seed)),
		collisionMgr: collisionMgr,
	}
}

// Update advances the spawn timer and places one food when it fires.
func (fm *FoodManager) Update(elapsed time.Duration, snake *entity.Snake) (entity.Food, bool) {
	if !fm.spawnTimer.Tick(elapsed) {
		return entity.Food{}, false
	}
	if len(fm.foodList) >= fm.maxFood {
		return entity.Food{}, false
	}
	cell, ok := fm.GenerateFood(snake)
	if !ok {
		return entity.Food{}, false
	}
	food := entity.Food{Cell: cell}
	fm.foodList = append(fm.foodList, food)
	return food, true
}

// GenerateFood picks a random cell not covered by the snake or other food.
// ok is false when the arena has no free cell left.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (types.Cell, bool) {
	cols, rows := fm.grid.Columns(), fm.grid.Rows()
	for i := 0; i < maxSpawnTries; i++ {
		food := types.Cell{
			X: fm.rng.Intn(cols),
			Y: fm.rng.Intn(rows),
		}
		if fm.collisionMgr.ValidateSpawnPosition(food, snake, fm.foodList) {
			return food, true
		}
	}

	free := make([]types.Cell, 0)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c := types.Cell{X: x, Y: y}
			if fm.collisionMgr.ValidateSpawnPosition(c, snake, fm.foodList) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return types.Cell{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}

// Consume removes the food at pos, if any, and reports whether it was there.
func (fm *FoodManager) Consume(pos types.Cell) bool {
	i := fm.collisionMgr.CheckFoodCollision(pos, fm.foodList)
	if i < 0 {
		return false
	}
	// Remove food from list by swapping with last element and truncating
	fm.foodList[i] = fm.foodList[len(fm.foodList)-1]
	fm.foodList = fm.foodList[:len(fm.foodList)-1]
	return true
}

func (fm *FoodManager) GetFoodList() []entity.Food {
	out := make([]entity.Food, len(fm.foodList))
	copy(out, fm.foodList)
	return out
}

// AddFood places food directly, bypassing the spawn timer.
func (fm *FoodManager) AddFood(food entity.Food) {
	fm.foodList = append(fm.foodList, food)
}

// Clear removes every food item and restarts the spawn timer.
func (fm *FoodManager) Clear() {
	fm.foodList = fm.foodList[:0]
	fm.spawnTimer.Reset()
}
