package tetris_test

import (
	"testing"

	"github.com/psavva/tetris"
)

func TestRotateClockwiseIsPure(t *testing.T) {
	offs := tetris.Offsets(tetris.KindT)
	before := append([]tetris.Offset(nil), offs...)

	tetris.RotateClockwise(tetris.KindT, offs)

	for i := range offs {
		if offs[i] != before[i] {
			t.Fatalf("input offsets mutated: %v, want %v", offs, before)
		}
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, k := range allKinds {
		offs := tetris.Offsets(k)
		rotated := offs
		for i := 0; i < 4; i++ {
			rotated = tetris.RotateClockwise(k, rotated)
		}
		for i := range offs {
			if rotated[i] != offs[i] {
				t.Errorf("kind %v: four rotations gave %v, want %v", k, rotated, offs)
				break
			}
		}
	}
}

func TestRotateOPieceIsFixedPoint(t *testing.T) {
	// The O pivot is the piece's own center: one rotation permutes the four
	// cells but covers exactly the same set.
	offs := tetris.Offsets(tetris.KindO)
	rotated := tetris.RotateClockwise(tetris.KindO, offs)

	want := make(map[tetris.Offset]bool)
	for _, o := range offs {
		want[o] = true
	}
	for _, o := range rotated {
		if !want[o] {
			t.Errorf("O rotation produced cell %v outside the original set %v", o, offs)
		}
	}
}

func TestRotateIPiece(t *testing.T) {
	// The half-integer pivot (1.5, 0.5) takes the horizontal bar to a
	// vertical one in column 1, one cell above the local origin.
	got := tetris.RotateClockwise(tetris.KindI, tetris.Offsets(tetris.KindI))
	want := []tetris.Offset{{X: 1, Y: 2}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: -1}}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("I rotation = %v, want %v", got, want)
		}
	}
}

func TestRotateTPiece(t *testing.T) {
	got := tetris.RotateClockwise(tetris.KindT, tetris.Offsets(tetris.KindT))
	want := []tetris.Offset{{X: 0, Y: 2}, {X: 0, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 1}}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("T rotation = %v, want %v", got, want)
		}
	}
}

func TestNewPieceTakesCatalogCopy(t *testing.T) {
	p := tetris.NewPiece(tetris.KindJ)
	p.Offsets[0] = tetris.Offset{X: 42, Y: 42}

	fresh := tetris.Offsets(tetris.KindJ)
	if fresh[0] == (tetris.Offset{X: 42, Y: 42}) {
		t.Error("mutating a piece's offsets leaked into the catalog")
	}
}
