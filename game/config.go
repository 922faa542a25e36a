package game

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gridsnake/game/types"
)

var (
	ErrArenaSize       = errors.New("arena must be at least 1x1")
	ErrTickInterval    = errors.New("tick interval must be positive")
	ErrSpawnInterval   = errors.New("food spawn interval must be positive")
	ErrSpawnOutOfArena = errors.New("snake does not fit inside the arena")
	ErrGrowth          = errors.New("growth per food must not be negative")
	ErrSegments        = errors.New("snake needs at least one initial segment")
	ErrMaxFood         = errors.New("max food must not be negative")
)

// Config holds the tunable parameters of a game.
type Config struct {
	Width  int
	Height int
	Bounds types.Bounds

	TickInterval      time.Duration
	FoodSpawnInterval time.Duration
	MaxFood           int
	GrowthPerFood     int

	InitialSegments int
	SpawnHead       types.Cell

	Seed uint64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:             types.DefaultWidth,
		Height:            types.DefaultHeight,
		Bounds:            types.Exclusive,
		TickInterval:      time.Second / 8,
		FoodSpawnInterval: time.Second,
		MaxFood:           types.DefaultMaxFood,
		GrowthPerFood:     types.DefaultGrowthPerFood,
		InitialSegments:   types.DefaultInitialSegments,
		SpawnHead:         types.DefaultSpawnHead,
		Seed:              uint64(time.Now().UnixNano()),
	}
}

// Grid returns the arena described by the config.
func (c Config) Grid() types.Grid {
	return types.Grid{Width: c.Width, Height: c.Height, Bounds: c.Bounds}
}

// Validate reports the first problem that would leave the game unplayable.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%dx%d: %w", c.Width, c.Height, ErrArenaSize)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%v: %w", c.TickInterval, ErrTickInterval)
	}
	if c.FoodSpawnInterval <= 0 {
		return fmt.Errorf("%v: %w", c.FoodSpawnInterval, ErrSpawnInterval)
	}
	if c.MaxFood < 0 {
		return fmt.Errorf("%d: %w", c.MaxFood, ErrMaxFood)
	}
	if c.GrowthPerFood < 0 {
		return fmt.Errorf("%d: %w", c.GrowthPerFood, ErrGrowth)
	}
	if c.InitialSegments < 1 {
		return fmt.Errorf("%d: %w", c.InitialSegments, ErrSegments)
	}
	grid := c.Grid()
	tail := types.Cell{X: c.SpawnHead.X, Y: c.SpawnHead.Y - c.InitialSegments}
	// Facing up, the first tick must also land inside the arena.
	first := c.SpawnHead.Step(types.Up)
	if !grid.Contains(c.SpawnHead) || !grid.Contains(tail) || !grid.Contains(first) {
		return fmt.Errorf("head %v with %d segments in %dx%d: %w",
			c.SpawnHead, c.InitialSegments, c.Width, c.Height, ErrSpawnOutOfArena)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "arena width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "arena height in cells")
	fs.Var(boundsValue{&c.Bounds}, "bounds", "arena upper edge: exclusive or inclusive")
	fs.DurationVar(&c.TickInterval, "tick", c.TickInterval, "time between snake moves")
	fs.DurationVar(&c.FoodSpawnInterval, "food-interval", c.FoodSpawnInterval, "time between food spawns")
	fs.IntVar(&c.MaxFood, "max-food", c.MaxFood, "maximum food on the board")
	fs.IntVar(&c.GrowthPerFood, "growth", c.GrowthPerFood, "segments gained per food")
	fs.IntVar(&c.InitialSegments, "segments", c.InitialSegments, "body segments at start")
	fs.Var(cellValue{&c.SpawnHead}, "spawn", "head start cell as x,y")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "seed for food placement")
}

type boundsValue struct{ b *types.Bounds }

func (v boundsValue) String() string {
	if v.b == nil {
		return types.Exclusive.String()
	}
	return v.b.String()
}

func (v boundsValue) Set(s string) error {
	b, err := types.ParseBounds(s)
	if err != nil {
		return err
	}
	*v.b = b
	return nil
}

type cellValue struct{ c *types.Cell }

func (v cellValue) String() string {
	if v.c == nil {
		return ""
	}
	return fmt.Sprintf("%d,%d", v.c.X, v.c.Y)
}

func (v cellValue) Set(s string) error {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return fmt.Errorf("expected x,y, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return fmt.Errorf("bad x in %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return fmt.Errorf("bad y in %q: %w", s, err)
	}
	*v.c = types.Cell{X: x, Y: y}
	return nil
}
