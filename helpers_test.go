package tetris_test

import (
	"testing"

	"github.com/psavva/tetris"
)

// sequenceSource deals kinds from a fixed list, cycling when exhausted.
// It makes sessions fully deterministic in tests and examples.
type sequenceSource struct {
	kinds []tetris.Kind
	i     int
}

func (s *sequenceSource) Next() tetris.Kind {
	k := s.kinds[s.i%len(s.kinds)]
	s.i++
	return k
}

func kindSequence(kinds ...tetris.Kind) tetris.KindSource {
	return &sequenceSource{kinds: kinds}
}

// testConfig is a small, fast session: a 4x4 board, gravity every tick,
// immediate clears, and nothing but O pieces.
func testConfig() tetris.Config {
	cfg := tetris.DefaultConfig()
	cfg.BoardWidth = 4
	cfg.BoardHeight = 4
	cfg.NormalDropInterval = 1
	cfg.SoftDropInterval = 1
	cfg.ClearDelayTicks = 0
	cfg.Source = kindSequence(tetris.KindO)
	return cfg
}

func mustGame(t *testing.T, cfg tetris.Config) *tetris.Game {
	t.Helper()
	g, err := tetris.NewGame(cfg)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func occupiedCount(b *tetris.Board) int {
	n := 0
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.At(x, y).Occupied {
				n++
			}
		}
	}
	return n
}
