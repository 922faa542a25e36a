package game

import (
	"io"
	"log"
	"time"

	"gridsnake/game/clock"
	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"
)

// Frame is what a frontend hands the game once per rendered frame.
type Frame struct {
	Elapsed time.Duration      // real time since the previous frame
	Pressed types.DirectionSet // movement keys held this frame
}

// Game owns one snake, its food and its score. It is not safe for
// concurrent use; frontends call Update from their frame loop only.
type Game struct {
	Config Config
	Grid   types.Grid

	snake        *entity.Snake
	tickTimer    *clock.Timer
	directions   *manager.DirectionBuffer
	growth       *manager.GrowthQueue
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager

	paused     bool
	totalTicks int
	events     []Event
	logger     *log.Logger
}

// NewGame validates cfg and spawns the initial snake.
func NewGame(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid := cfg.Grid()
	collisionMgr := manager.NewCollisionManager(grid)

	g := &Game{
		Config:       cfg,
		Grid:         grid,
		tickTimer:    clock.NewTimer(cfg.TickInterval),
		directions:   manager.NewDirectionBuffer(),
		growth:       manager.NewGrowthQueue(),
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(collisionMgr, cfg.FoodSpawnInterval, cfg.MaxFood, cfg.Seed),
		stateMgr:     manager.NewStateManager(),
		logger:       log.New(io.Discard, "", 0),
	}
	g.spawn()
	return g, nil
}

// SetLogger directs round start and reset messages to l.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	g.logger = l
	g.logger.Printf("round %s started", g.stateMgr.RoundID())
}

// SetPaused stops or resumes every clock.
func (g *Game) SetPaused(paused bool) {
	g.paused = paused
}

func (g *Game) Paused() bool {
	return g.paused
}

// Update runs one frame: direction sampling, at most one movement tick, then
// food spawning. The returned events are only valid until the next call.
func (g *Game) Update(f Frame) []Event {
	g.events = g.events[:0]
	if g.paused {
		return g.events
	}

	g.snake.Head.Direction = g.directions.Resolve(f.Pressed, g.snake.Head.Direction)

	if g.tickTimer.Tick(f.Elapsed) {
		g.Tick()
	}

	if food, ok := g.foodMgr.Update(f.Elapsed, g.snake); ok {
		g.emit(Event{Type: EventFoodSpawned, Cell: food.Cell})
	}
	return g.events
}

// Tick advances the snake by one cell immediately, bypassing the tick timer.
func (g *Game) Tick() {
	g.totalTicks++

	snapshot := g.snake.Body.Cells()
	cause := g.collisionMgr.CheckCollision(g.snake.NextHead(), snapshot)

	vacated := g.snake.Advance()

	if cause != manager.NoCollision {
		g.reset(cause)
		return
	}

	if _, grew := g.growth.Drain(g.snake); grew {
		g.emit(Event{Type: EventGrew, Cell: vacated})
	}

	head := g.snake.GetHead()
	if g.foodMgr.Consume(head) {
		g.growth.Add(g.Config.GrowthPerFood)
		g.stateMgr.AddScore(1)
		g.emit(Event{Type: EventAte, Cell: head})
	}
}

// PlaceFood puts food on cell if it is free. It reports whether it did.
func (g *Game) PlaceFood(cell types.Cell) bool {
	if !g.collisionMgr.ValidateSpawnPosition(cell, g.snake, g.foodMgr.GetFoodList()) {
		return false
	}
	g.foodMgr.AddFood(entity.Food{Cell: cell})
	return true
}

// reset answers a collision: every entity is dropped and the initial
// configuration is spawned again.
func (g *Game) reset(cause manager.CollisionType) {
	head := g.snake.GetHead()
	rec := g.stateMgr.EndRound(g.snake.Len(), g.snake.Ticks, cause)
	g.logger.Printf("round %s over: %s collision at %v, score %d, length %d",
		rec.ID, cause, head, rec.Score, rec.Length)

	g.foodMgr.Clear()
	g.growth.Reset()
	g.tickTimer.Reset()
	g.stateMgr.StartRound()
	g.spawn()

	g.logger.Printf("round %s started", g.stateMgr.RoundID())
	g.emit(Event{Type: EventReset, Cell: head, Cause: cause})
}

func (g *Game) spawn() {
	g.snake = entity.NewSnake(g.Config.SpawnHead, g.Config.InitialSegments)
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

// Head returns the head entity.
func (g *Game) Head() entity.Head {
	return g.snake.Head
}

// Segments returns the body head-to-tail.
func (g *Game) Segments() []entity.Segment {
	return g.snake.Body.Segments()
}

// Food returns the food currently on the board.
func (g *Game) Food() []entity.Food {
	return g.foodMgr.GetFoodList()
}

// PendingGrowth is the number of segments still to be added.
func (g *Game) PendingGrowth() int {
	return g.growth.Pending()
}

// Stats exposes the score board.
func (g *Game) Stats() *manager.StateManager {
	return g.stateMgr
}

// Snapshot is a copy of everything a renderer needs for one frame.
type Snapshot struct {
	RoundID   string
	Grid      types.Grid
	Head      entity.Head
	Segments  []types.Cell
	Food      []types.Cell
	Score     int
	HighScore int
	Pending   int
	Ticks     int
	Paused    bool
}

func (g *Game) Snapshot() Snapshot {
	food := g.foodMgr.GetFoodList()
	cells := make([]types.Cell, len(food))
	for i, f := range food {
		cells[i] = f.Cell
	}
	return Snapshot{
		RoundID:   g.stateMgr.RoundID().String(),
		Grid:      g.Grid,
		Head:      g.snake.Head,
		Segments:  g.snake.Body.Cells(),
		Food:      cells,
		Score:     g.stateMgr.GetScore(),
		HighScore: g.stateMgr.GetHighScore(),
		Pending:   g.growth.Pending(),
		Ticks:     g.totalTicks,
		Paused:    g.paused,
	}
}
