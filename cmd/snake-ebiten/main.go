//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"gridsnake/audio"
	"gridsnake/game"
	"gridsnake/ui/ebitenui"
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
			logger.Printf("%v", err)
		}
	}
	defer player.Close()

	adapter := ebitenui.New(g, player)
	w, h := adapter.Size()

	ebiten.SetWindowTitle("Snake")
	ebiten.SetWindowSize(w, h)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(adapter); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal(err)
	}
}
