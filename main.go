package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	levelName := flag.String("level", "default", "level spec in levels/ (basename, .yaml optional)")
	seed := flag.Int64("seed", 0, "platform layout seed (0 picks a time-based one)")
	watch := flag.Bool("watch", false, "reload the level spec when it changes on disk")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Platforms")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game, err := NewGame(*levelName, *seed, *watch)
	if err != nil {
		log.Fatal(err)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
	if err := game.Close(); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
