package tetris

import (
	"context"
	"time"
)

// Run drives g at a fixed tick cadence until the context is cancelled or the
// session ends. It is a convenience for headless drivers such as simulations
// and tests; interactive front-ends usually own their frame loop and call
// Tick directly.
func Run(ctx context.Context, g *Game, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			g.Tick()
			if !g.Running() {
				return
			}
		}
	}
}
