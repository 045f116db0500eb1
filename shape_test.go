package tetris_test

import (
	"testing"

	"github.com/psavva/tetris"
)

var allKinds = []tetris.Kind{
	tetris.KindI, tetris.KindO, tetris.KindT, tetris.KindS,
	tetris.KindZ, tetris.KindJ, tetris.KindL,
}

func TestCatalogOffsets(t *testing.T) {
	for _, k := range allKinds {
		offs := tetris.Offsets(k)
		if len(offs) != 4 {
			t.Errorf("kind %v: expected 4 offsets, got %d", k, len(offs))
		}

		seen := make(map[tetris.Offset]bool)
		for _, o := range offs {
			if seen[o] {
				t.Errorf("kind %v: duplicate offset %v", k, o)
			}
			seen[o] = true
		}
	}
}

func TestCatalogOffsetsAreCopies(t *testing.T) {
	a := tetris.Offsets(tetris.KindT)
	a[0] = tetris.Offset{X: 99, Y: 99}

	b := tetris.Offsets(tetris.KindT)
	if b[0] == (tetris.Offset{X: 99, Y: 99}) {
		t.Error("mutating a returned offset slice leaked into the catalog")
	}
}

func TestCatalogPivots(t *testing.T) {
	wantX, wantY := 1.5, 0.5
	if x, y := tetris.Pivot(tetris.KindI); x != wantX || y != wantY {
		t.Errorf("I pivot = (%v, %v), want (%v, %v)", x, y, wantX, wantY)
	}
	if x, y := tetris.Pivot(tetris.KindO); x != 0.5 || y != 0.5 {
		t.Errorf("O pivot = (%v, %v), want (0.5, 0.5)", x, y)
	}
	for _, k := range []tetris.Kind{tetris.KindT, tetris.KindS, tetris.KindZ, tetris.KindJ, tetris.KindL} {
		if x, y := tetris.Pivot(k); x != 1.0 || y != 1.0 {
			t.Errorf("%v pivot = (%v, %v), want (1, 1)", k, x, y)
		}
	}
}

func TestCatalogColorsDistinct(t *testing.T) {
	seen := make(map[[4]uint8]tetris.Kind)
	for _, k := range allKinds {
		c := tetris.Color(k)
		if c.A != 255 {
			t.Errorf("kind %v: color must be opaque, alpha %d", k, c.A)
		}
		key := [4]uint8{c.R, c.G, c.B, c.A}
		if other, dup := seen[key]; dup {
			t.Errorf("kinds %v and %v share color %v", k, other, c)
		}
		seen[key] = k
	}
}

func TestKindString(t *testing.T) {
	want := []string{"I", "O", "T", "S", "Z", "J", "L"}
	for i, k := range allKinds {
		if k.String() != want[i] {
			t.Errorf("kind %d String() = %q, want %q", i, k.String(), want[i])
		}
	}
	if s := tetris.Kind(-1).String(); s != "?" {
		t.Errorf("invalid kind String() = %q, want %q", s, "?")
	}
}
