package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mwestby/reflex-rush/internal/game"
)

func main() {
	ebiten.SetWindowTitle("Reflex Rush")
	ebiten.SetWindowSize(920, 520)
	if err := ebiten.RunGame(game.NewCabinet()); err != nil {
		log.Fatal(err)
	}
}
