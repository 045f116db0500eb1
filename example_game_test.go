package tetris_test

import (
	"fmt"

	"github.com/psavva/tetris"
)

// ExampleGame plays a deterministic session: five O pieces are steered
// across the bottom of the board until they complete two rows at once.
func ExampleGame() {
	cfg := tetris.DefaultConfig()
	cfg.NormalDropInterval = 1 // gravity every tick keeps the example short
	cfg.ClearDelayTicks = 0
	cfg.Source = kindSequence(tetris.KindO)

	g, err := tetris.NewGame(cfg)
	if err != nil {
		panic(err)
	}

	// An O piece at columns {0, 2, 4, 6, 8} tiles the two bottom rows.
	for _, target := range []int{0, 2, 4, 6, 8} {
		for g.Snapshot().Active.X > target {
			g.MoveLeft()
		}
		for g.Snapshot().Active.X < target {
			g.MoveRight()
		}
		// 18 ticks to reach the floor, one more to lock.
		for i := 0; i < 19; i++ {
			g.Tick()
		}
	}

	fmt.Printf("score: %d lines: %d level: %d\n", g.Score(), g.Lines(), g.Level())
	fmt.Printf("state: %v\n", g.State())

	// Output:
	// score: 200 lines: 2 level: 0
	// state: falling
}

// ExampleRotateClockwise shows the horizontal I bar turning into a vertical
// one around its half-integer pivot.
func ExampleRotateClockwise() {
	offsets := tetris.Offsets(tetris.KindI)
	rotated := tetris.RotateClockwise(tetris.KindI, offsets)

	fmt.Println(offsets)
	fmt.Println(rotated)

	// Output:
	// [{0 0} {1 0} {2 0} {3 0}]
	// [{1 2} {1 1} {1 0} {1 -1}]
}
