//go:build js && wasm

package main

import (
	"log"
	"syscall/js"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/blockfall/prefabs"
)

func main() {
	cfg, err := prefabs.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	game := NewGame(cfg, false, false)

	js.Global().Set("getScore", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		return js.ValueOf(game.Score())
	}))

	ebiten.SetWindowTitle("blockfall")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
