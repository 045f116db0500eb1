package tetris

import "math"

// Piece is an active tetromino: a kind, its current local cell offsets (the
// result of zero or more rotations), and the board position of its local
// origin.
type Piece struct {
	Kind    Kind
	Offsets []Offset
	X, Y    int
}

// NewPiece returns a piece of kind k with its canonical offsets at origin (0,0).
func NewPiece(k Kind) Piece {
	return Piece{Kind: k, Offsets: Offsets(k)}
}

// RotateClockwise returns offsets rotated 90 degrees clockwise around the
// kind's pivot: each offset is translated so the pivot sits at the origin,
// mapped through (x, y) -> (y, -x), translated back, and each coordinate
// rounded half-to-even (math.RoundToEven). The rounding rule only matters at
// half-integer pivots and is fixed so rotation results are reproducible.
//
// The transform is purely geometric: the input slice is not mutated and no
// collision checking happens here. Callers validate the result against the
// board before committing it.
func RotateClockwise(k Kind, offsets []Offset) []Offset {
	px, py := Pivot(k)
	rotated := make([]Offset, len(offsets))
	for i, o := range offsets {
		tx := float64(o.X) - px
		ty := float64(o.Y) - py
		rotated[i] = Offset{
			X: int(math.RoundToEven(ty + px)),
			Y: int(math.RoundToEven(-tx + py)),
		}
	}
	return rotated
}
