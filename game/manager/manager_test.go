package manager

import (
	"testing"
	"time"

	"gridsnake/game/entity"
	"gridsnake/game/types"
)

func TestWallCollisionExclusive(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 20, Height: 20, Bounds: types.Exclusive})

	cases := []struct {
		pos  types.Cell
		want CollisionType
	}{
		{types.Cell{X: 0, Y: 0}, NoCollision},
		{types.Cell{X: 19, Y: 19}, NoCollision},
		{types.Cell{X: 20, Y: 5}, WallCollision},
		{types.Cell{X: 5, Y: 20}, WallCollision},
		{types.Cell{X: -1, Y: 5}, WallCollision},
		{types.Cell{X: 5, Y: -1}, WallCollision},
	}
	for _, tc := range cases {
		if got := cm.CheckCollision(tc.pos, nil); got != tc.want {
			t.Errorf("CheckCollision(%v): expected %v, got %v", tc.pos, tc.want, got)
		}
	}
}

func TestWallCollisionInclusive(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 20, Height: 20, Bounds: types.Inclusive})

	cases := []struct {
		pos  types.Cell
		want CollisionType
	}{
		{types.Cell{X: 20, Y: 20}, NoCollision},
		{types.Cell{X: 20, Y: 0}, NoCollision},
		{types.Cell{X: 21, Y: 5}, WallCollision},
		{types.Cell{X: 5, Y: 21}, WallCollision},
		{types.Cell{X: -1, Y: 5}, WallCollision},
	}
	for _, tc := range cases {
		if got := cm.CheckCollision(tc.pos, nil); got != tc.want {
			t.Errorf("CheckCollision(%v): expected %v, got %v", tc.pos, tc.want, got)
		}
	}
}

func TestSelfCollisionUsesSnapshot(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 20, Height: 20})
	snapshot := []types.Cell{{X: 5, Y: 5}, {X: 5, Y: 4}, {X: 6, Y: 4}}

	for _, c := range snapshot {
		if got := cm.CheckCollision(c, snapshot); got != SelfCollision {
			t.Errorf("expected self collision on %v, got %v", c, got)
		}
	}
	if got := cm.CheckCollision(types.Cell{X: 6, Y: 5}, snapshot); got != NoCollision {
		t.Errorf("expected no collision on free cell, got %v", got)
	}
}

func TestWallTakesPrecedence(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 5, Height: 5})
	pos := types.Cell{X: 5, Y: 0}
	if got := cm.CheckCollision(pos, []types.Cell{pos}); got != WallCollision {
		t.Fatalf("expected wall collision, got %v", got)
	}
}

func TestDirectionBufferPriority(t *testing.T) {
	db := NewDirectionBuffer()

	cases := []struct {
		name    string
		pressed types.DirectionSet
		current types.Direction
		want    types.Direction
	}{
		{"none keeps facing", 0, types.Up, types.Up},
		{"left beats everything", types.NewDirectionSet(types.Left, types.Down, types.Up, types.Right), types.Up, types.Left},
		{"down beats up and right", types.NewDirectionSet(types.Down, types.Up, types.Right), types.Left, types.Down},
		{"up beats right", types.NewDirectionSet(types.Up, types.Right), types.Left, types.Up},
		{"right alone", types.NewDirectionSet(types.Right), types.Up, types.Right},
		{"reversal ignored", types.NewDirectionSet(types.Down), types.Up, types.Up},
		{"winning reversal blocks lower priority", types.NewDirectionSet(types.Left, types.Up), types.Right, types.Right},
		{"same direction", types.NewDirectionSet(types.Up), types.Up, types.Up},
	}
	for _, tc := range cases {
		if got := db.Resolve(tc.pressed, tc.current); got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestDirectionBufferNeverReverses(t *testing.T) {
	db := NewDirectionBuffer()
	for _, cur := range types.Directions {
		got := db.Resolve(types.NewDirectionSet(cur.Opposite()), cur)
		if got != cur {
			t.Errorf("facing %v, reversal input changed facing to %v", cur, got)
		}
	}
}

func TestGrowthQueueDrainsOnePerTick(t *testing.T) {
	snake := entity.NewSnake(types.Cell{X: 10, Y: 10}, 2)
	gq := NewGrowthQueue()
	gq.Add(2)

	for tick := 1; tick <= 3; tick++ {
		before := snake.Len()
		vacated := snake.Advance()
		id, grew := gq.Drain(snake)

		if tick <= 2 {
			if !grew {
				t.Fatalf("tick %d: expected growth", tick)
			}
			if snake.Len() != before+1 {
				t.Fatalf("tick %d: expected length %d, got %d", tick, before+1, snake.Len())
			}
			tail, _ := snake.Body.Tail()
			if tail != id || snake.Body.Cell(id) != vacated {
				t.Fatalf("tick %d: new tail %d at %v, expected %v", tick, id, snake.Body.Cell(id), vacated)
			}
		} else if grew || snake.Len() != before {
			t.Fatalf("tick %d: unexpected growth", tick)
		}
	}
	if gq.Pending() != 0 {
		t.Fatalf("expected empty queue, got %d", gq.Pending())
	}
}

func TestGrowthQueueIgnoresNonPositive(t *testing.T) {
	gq := NewGrowthQueue()
	gq.Add(0)
	gq.Add(-3)
	if gq.Pending() != 0 {
		t.Fatalf("expected 0 pending, got %d", gq.Pending())
	}
	gq.Add(4)
	gq.Reset()
	if gq.Pending() != 0 {
		t.Fatalf("expected reset queue, got %d", gq.Pending())
	}
}

func TestFoodNeverSpawnsOnSnake(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 4, Height: 4})
	fm := NewFoodManager(cm, time.Second, 16, 7)
	snake := entity.NewSnake(types.Cell{X: 1, Y: 3}, 3)

	spawned := 0
	for i := 0; i < 20; i++ {
		food, ok := fm.Update(time.Second, snake)
		if !ok {
			continue
		}
		spawned++
		if food.Cell == snake.GetHead() || snake.Occupies(food.Cell) {
			t.Fatalf("food spawned on snake at %v", food.Cell)
		}
	}
	// 16 cells minus head and 3 segments
	if spawned != 12 {
		t.Fatalf("expected arena to fill with 12 food, got %d", spawned)
	}
	if _, ok := fm.GenerateFood(snake); ok {
		t.Fatal("expected no free cell left")
	}
}

func TestFoodRespectsIntervalAndCap(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 20, Height: 20})
	fm := NewFoodManager(cm, time.Second, 2, 1)
	snake := entity.NewSnake(types.Cell{X: 10, Y: 10}, 2)

	if _, ok := fm.Update(500*time.Millisecond, snake); ok {
		t.Fatal("spawned before interval elapsed")
	}
	if _, ok := fm.Update(500*time.Millisecond, snake); !ok {
		t.Fatal("expected spawn after one second")
	}
	if _, ok := fm.Update(time.Second, snake); !ok {
		t.Fatal("expected second spawn")
	}
	if _, ok := fm.Update(time.Second, snake); ok {
		t.Fatal("spawned beyond cap")
	}
	if len(fm.GetFoodList()) != 2 {
		t.Fatalf("expected 2 food, got %d", len(fm.GetFoodList()))
	}
}

func TestFoodConsume(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 20, Height: 20})
	fm := NewFoodManager(cm, time.Second, 3, 1)
	fm.AddFood(entity.Food{Cell: types.Cell{X: 1, Y: 1}})
	fm.AddFood(entity.Food{Cell: types.Cell{X: 2, Y: 2}})

	if fm.Consume(types.Cell{X: 3, Y: 3}) {
		t.Fatal("consumed food from empty cell")
	}
	if !fm.Consume(types.Cell{X: 1, Y: 1}) {
		t.Fatal("expected to consume food at (1,1)")
	}
	list := fm.GetFoodList()
	if len(list) != 1 || list[0].Cell != (types.Cell{X: 2, Y: 2}) {
		t.Fatalf("unexpected food list after consume: %v", list)
	}

	fm.Clear()
	if len(fm.GetFoodList()) != 0 {
		t.Fatal("expected no food after clear")
	}
}

func TestFoodDeterministicForSeed(t *testing.T) {
	grid := types.Grid{Width: 30, Height: 30}
	snake := entity.NewSnake(types.Cell{X: 10, Y: 10}, 2)
	a := NewFoodManager(NewCollisionManager(grid), 0, 10, 99)
	b := NewFoodManager(NewCollisionManager(grid), 0, 10, 99)

	for i := 0; i < 10; i++ {
		fa, _ := a.Update(0, snake)
		fb, _ := b.Update(0, snake)
		if fa != fb {
			t.Fatalf("spawn %d differs: %v vs %v", i, fa.Cell, fb.Cell)
		}
	}
}

func TestStateManagerRounds(t *testing.T) {
	sm := NewStateManager()
	first := sm.RoundID()

	sm.AddScore(1)
	sm.AddScore(1)
	rec := sm.EndRound(4, 30, SelfCollision)
	if rec.ID != first || rec.Score != 2 || rec.Length != 4 || rec.Cause != SelfCollision {
		t.Fatalf("unexpected record: %+v", rec)
	}

	second := sm.StartRound()
	if second == first {
		t.Fatal("expected a new round id")
	}
	if sm.GetScore() != 0 {
		t.Fatalf("expected score reset, got %d", sm.GetScore())
	}
	sm.AddScore(1)
	sm.EndRound(3, 10, WallCollision)

	if sm.GetHighScore() != 2 {
		t.Fatalf("expected high score 2, got %d", sm.GetHighScore())
	}
	if sm.GetGamesPlayed() != 2 {
		t.Fatalf("expected 2 games, got %d", sm.GetGamesPlayed())
	}
	if avg := sm.GetAverageScore(); avg != 1.5 {
		t.Fatalf("expected average 1.5, got %v", avg)
	}
}

func TestStateManagerHistoryIsBounded(t *testing.T) {
	sm := NewStateManager()
	for i := 0; i < maxRounds+5; i++ {
		sm.StartRound()
		sm.EndRound(2, 1, WallCollision)
	}
	if len(sm.GetRounds()) != maxRounds {
		t.Fatalf("expected %d rounds kept, got %d", maxRounds, len(sm.GetRounds()))
	}
	if sm.GetGamesPlayed() != maxRounds+5 {
		t.Fatalf("expected %d games played, got %d", maxRounds+5, sm.GetGamesPlayed())
	}
}

func TestStateManagerMedianAndDuration(t *testing.T) {
	sm := NewStateManager()
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sm.now = func() time.Time { return clock }

	for _, score := range []int{5, 1, 3} {
		sm.StartRound()
		for i := 0; i < score; i++ {
			sm.AddScore(1)
		}
		clock = clock.Add(time.Duration(score) * time.Second)
		sm.EndRound(2, 0, WallCollision)
	}

	if m := sm.GetMedianScore(); m != 3 {
		t.Fatalf("expected median 3, got %v", m)
	}
	if d := sm.GetAverageDuration(); d != 3*time.Second {
		t.Fatalf("expected average duration 3s, got %v", d)
	}

	sm.StartRound()
	sm.AddScore(1)
	sm.AddScore(1)
	sm.EndRound(2, 0, SelfCollision)
	if m := sm.GetMedianScore(); m != 2.5 {
		t.Fatalf("expected median 2.5, got %v", m)
	}
}
