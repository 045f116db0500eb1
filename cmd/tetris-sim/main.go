package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/kamstrup/intmap"

	"github.com/psavva/tetris"
)

func main() {
	games := flag.Int("games", 10, "The number of games to simulate.")
	seed := flag.Int64("seed", 1, "Base seed. Game i plays with seed+i.")
	maxTicks := flag.Int("max-ticks", 100000, "Tick cap per game before it is cut off.")
	width := flag.Int("width", tetris.DefaultBoardWidth, "Board width in cells.")
	height := flag.Int("height", tetris.DefaultBoardHeight, "Board height in cells.")
	flag.Parse()

	log.Println("Starting tetris simulation...")

	report := &Report{
		Games:    *games,
		MaxTicks: *maxTicks,
		BaseSeed: *seed,
		TickTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	results := intmap.New[int64, GameResult](*games)
	seeds := make([]int64, 0, *games)

	log.Printf("Simulating %d games on a %dx%d board...\n", *games, *width, *height)
	startTime := time.Now()

	for i := 0; i < *games; i++ {
		gameSeed := *seed + int64(i)
		result := runGame(gameSeed, *width, *height, *maxTicks, &report.TickTime)
		results.Put(gameSeed, result)
		seeds = append(seeds, gameSeed)
	}

	report.TotalTime = time.Since(startTime)
	report.TickTime.Finalize()
	report.Collect(seeds, results)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Simulation Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// runGame plays a single game to completion with a random command policy.
// Piece and command streams are seeded separately so the same seed always
// replays the same game.
func runGame(seed int64, width, height, maxTicks int, tickTime *Stats) GameResult {
	pieces := rand.New(rand.NewPCG(uint64(seed), 0))
	commands := rand.New(rand.NewPCG(uint64(seed), 1))

	cfg := tetris.DefaultConfig()
	cfg.BoardWidth = width
	cfg.BoardHeight = height
	cfg.Source = tetris.NewUniformSource(pieces)

	g, err := tetris.NewGame(cfg)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	ticks := 0
	for g.Running() && ticks < maxTicks {
		switch commands.IntN(10) {
		case 0:
			g.MoveLeft()
		case 1:
			g.MoveRight()
		case 2:
			g.RotateCW()
		case 3:
			g.SoftDrop(true)
		case 4:
			g.SoftDrop(false)
		}

		start := time.Now()
		g.Tick()
		tickTime.Samples = append(tickTime.Samples, time.Since(start))
		ticks++
	}

	return GameResult{
		Seed:      seed,
		Score:     g.Score(),
		Lines:     g.Lines(),
		Level:     g.Level(),
		Ticks:     ticks,
		Completed: !g.Running(),
	}
}
