package main

import (
	"flag"
	"log"
	"os"
	"time"

	"gridsnake/audio"
	"gridsnake/game"
	"gridsnake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	cfg := game.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	logger := log.New(os.Stderr, "snake: ", log.LstdFlags)

	g, err := game.NewGame(cfg)
	if err != nil {
		logger.Fatalf("invalid configuration: %v", err)
	}
	g.SetLogger(logger)

	var player audio.Player = audio.Silent{}
	if !*mute {
		if player, err = audio.NewPlayer(); err != nil {
			// Non-fatal, game can run without sound
			logger.Printf("%v", err)
		}
	}
	defer player.Close()

	rl.InitWindow(800, 860, "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer()

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}
		if rl.IsKeyPressed(rl.KeyP) || rl.IsKeyPressed(rl.KeySpace) {
			g.SetPaused(!g.Paused())
		}

		events := g.Update(game.Frame{
			Elapsed: frameDuration(rl.GetFrameTime()),
			Pressed: ui.PollDirections(),
		})
		player.Play(events)

		renderer.Draw(g.Snapshot())
	}

	stats := g.Stats()
	logger.Printf("session over: %d rounds, best %d, average %.2f, median %.1f, mean round %v",
		stats.GetGamesPlayed(), stats.GetHighScore(), stats.GetAverageScore(),
		stats.GetMedianScore(), stats.GetAverageDuration().Round(time.Second))
}

func frameDuration(seconds float32) time.Duration {
	return time.Duration(float64(seconds) * float64(time.Second))
}
