package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"gridsnake/audio"
	"gridsnake/game"
	"gridsnake/ui/term"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

func main() {
	cfg := game.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	mute := flag.Bool("mute", false, "disable sound")
	logPath := flag.String("log", "", "write the game log to this file")
	flag.Parse()

	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := log.New(logOut, "snake: ", log.LstdFlags)

	g, err := game.NewGame(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
	}
	g.SetLogger(logger)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	var player audio.Player = audio.Silent{}
	if !*mute {
		if player, err = audio.NewPlayer(); err != nil {
			logger.Printf("%v", err)
		}
	}
	defer player.Close()

	run(screen, g, player)

	stats := g.Stats()
	logger.Printf("session over: %d rounds, best %d", stats.GetGamesPlayed(), stats.GetHighScore())
}

func run(screen tcell.Screen, g *game.Game, player audio.Player) {
	renderer := term.NewRenderer(screen)
	var input term.Input

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				input.HandleKey(ev.Key(), ev.Rune())
			case *tcell.EventResize:
				screen.Sync()
			}
			if input.Quit() {
				return
			}

		case now := <-ticker.C:
			if input.TogglePause() {
				g.SetPaused(!g.Paused())
			}
			events := g.Update(game.Frame{
				Elapsed: now.Sub(last),
				Pressed: input.Frame(),
			})
			last = now
			player.Play(events)
			renderer.Draw(g.Snapshot())
		}
	}
}
