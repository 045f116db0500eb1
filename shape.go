// Package tetris implements the rules engine for a classic falling-block
// puzzle game: the shape catalog, pivot-based piece rotation, board collision
// and line clearing, and the session state machine that ties them together.
//
// The engine is presentation-agnostic and single-threaded. One cooperative
// driver issues commands between fixed-cadence Tick calls and renders from
// read-only Snapshots; see Game for the ownership rules.
package tetris

import "image/color"

// Kind identifies one of the seven classic tetromino shapes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// KindCount is the number of distinct piece kinds.
const KindCount = 7

// Offset is a cell position in a piece's local coordinate space.
// X grows rightward and Y grows downward, matching board coordinates.
type Offset struct {
	X, Y int
}

var kindNames = [KindCount]string{"I", "O", "T", "S", "Z", "J", "L"}

func (k Kind) String() string {
	if k < 0 || k >= KindCount {
		return "?"
	}
	return kindNames[k]
}

// Every kind occupies exactly four cells within a 4x4 local space.
var kindOffsets = [KindCount][4]Offset{
	KindI: {{0, 0}, {1, 0}, {2, 0}, {3, 0}},
	KindO: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	KindT: {{0, 0}, {1, 0}, {2, 0}, {1, 1}},
	KindS: {{1, 0}, {2, 0}, {0, 1}, {1, 1}},
	KindZ: {{0, 0}, {1, 0}, {1, 1}, {2, 1}},
	KindJ: {{0, 0}, {0, 1}, {1, 1}, {2, 1}},
	KindL: {{2, 0}, {0, 1}, {1, 1}, {2, 1}},
}

// Per-kind rotation pivots, constant for the life of the process. The O
// pivot is the piece's own center, so an O appears not to rotate; I pivots
// at a half-integer point and the rest at (1,1), which reproduces the
// classic rotation feel where each kind turns around its natural center.
var kindPivots = [KindCount][2]float64{
	KindI: {1.5, 0.5},
	KindO: {0.5, 0.5},
	KindT: {1.0, 1.0},
	KindS: {1.0, 1.0},
	KindZ: {1.0, 1.0},
	KindJ: {1.0, 1.0},
	KindL: {1.0, 1.0},
}

// Classic display colors.
var kindColors = [KindCount]color.RGBA{
	KindI: {R: 0, G: 255, B: 255, A: 255},
	KindO: {R: 255, G: 255, B: 0, A: 255},
	KindT: {R: 128, G: 0, B: 128, A: 255},
	KindS: {R: 0, G: 255, B: 0, A: 255},
	KindZ: {R: 255, G: 0, B: 0, A: 255},
	KindJ: {R: 0, G: 0, B: 255, A: 255},
	KindL: {R: 255, G: 165, B: 0, A: 255},
}

// Offsets returns the four canonical local cell offsets for k.
// The result is a fresh copy; callers may mutate it freely.
func Offsets(k Kind) []Offset {
	offs := make([]Offset, len(kindOffsets[k]))
	copy(offs, kindOffsets[k][:])
	return offs
}

// Pivot returns the fixed rotation pivot for k in local coordinates.
func Pivot(k Kind) (x, y float64) {
	p := kindPivots[k]
	return p[0], p[1]
}

// Color returns the display color for k.
func Color(k Kind) color.RGBA {
	return kindColors[k]
}
