package main

import (
	"errors"
	"flag"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/psavva/tetris"
)

func main() {
	width := flag.Int("width", tetris.DefaultBoardWidth, "Board width in cells.")
	height := flag.Int("height", tetris.DefaultBoardHeight, "Board height in cells.")
	cell := flag.Int("cell", 30, "Cell size in pixels.")
	seed := flag.Int64("seed", 0, "Piece sequence seed. 0 uses an unseeded source.")
	mute := flag.Bool("mute", false, "Disable sound effects.")
	debug := flag.Bool("debug", false, "Show the ImGui debug overlay.")
	flag.Parse()

	cfg := tetris.DefaultConfig()
	cfg.BoardWidth = *width
	cfg.BoardHeight = *height
	if *seed != 0 {
		cfg.Source = tetris.NewUniformSource(rand.New(rand.NewPCG(uint64(*seed), 0)))
	}

	app, err := NewApp(cfg, *cell, !*mute)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	w, h := app.WindowSize()
	if *debug {
		app.EnableDebugOverlay("Tetris", w, h)
	} else {
		ebiten.SetWindowSize(w, h)
		ebiten.SetWindowTitle("Tetris")
	}
	ebiten.SetTPS(tetris.TicksPerSecond)

	log.Printf("Starting tetris on a %dx%d board...\n", *width, *height)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("Game exited with error: %v", err)
	}
}
