//go:build !js

package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/blockfall/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "draw the physics space overlay")
	watch := flag.Bool("watch", false, "hot-reload prefabs/config.yaml from disk")
	lanes := flag.Int("lanes", 0, "override board lane count")
	rows := flag.Int("rows", 0, "override board row count")
	flag.Parse()

	cfg, err := prefabs.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	if *lanes > 0 {
		cfg.Board.Lanes = *lanes
	}
	if *rows > 0 {
		cfg.Board.Rows = *rows
	}

	game := NewGame(cfg, *debug, *watch)

	w, h := game.board.ScreenSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("blockfall")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
