package tetris_test

import (
	"context"
	"testing"
	"time"

	"github.com/psavva/tetris"
)

func TestRunStopsOnContextCancel(t *testing.T) {
	cfg := tetris.DefaultConfig()
	cfg.Source = kindSequence(tetris.KindI)
	g := mustGame(t, cfg)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan bool)
	go func() {
		tetris.Run(ctx, g, time.Millisecond)
		done <- true
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after context cancellation")
	}

	if g.Stats().Count == 0 {
		t.Error("expected at least one tick before cancellation")
	}
}

func TestRunStopsAtGameOver(t *testing.T) {
	// A 4x4 board of O pieces tops out after four ticks.
	g := mustGame(t, testConfig())

	done := make(chan bool)
	go func() {
		tetris.Run(context.Background(), g, time.Microsecond)
		done <- true
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop at game over")
	}

	if g.Running() {
		t.Error("expected the session to be over")
	}
}
