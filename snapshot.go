package tetris

import "image/color"

// PieceSnapshot is the render-facing view of one piece.
type PieceSnapshot struct {
	Kind    Kind
	Offsets []Offset
	X, Y    int
	Color   color.RGBA
}

// Snapshot is a read-only copy of everything a presentation layer needs to
// draw one frame. It shares no memory with the engine, so a renderer running
// between ticks can hold it as long as it likes.
type Snapshot struct {
	Width  int
	Height int
	Cells  [][]Cell // [row][col]

	// Active is the falling piece. HasActive is false while completed rows
	// are clearing; after game over the colliding spawn remains visible.
	Active    PieceSnapshot
	HasActive bool

	// Next is the upcoming piece; its position fields are zero.
	Next PieceSnapshot

	Score int
	Level int
	Lines int

	State State

	// ClearingRows lists the completed rows awaiting removal while State is
	// StateClearing, ascending. Renderers may highlight them.
	ClearingRows []int

	// GameOver reports the terminal state; equivalent to State == StateGameOver.
	GameOver bool
}

// Snapshot returns a copy of the observable session state. Take it between
// ticks, never concurrently with them.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Width:     g.board.Width(),
		Height:    g.board.Height(),
		Cells:     g.board.Cells(),
		HasActive: g.state != StateClearing,
		Score:     g.score,
		Level:     g.level,
		Lines:     g.lines,
		State:     g.state,
		GameOver:  g.state == StateGameOver,
	}

	if s.HasActive {
		s.Active = PieceSnapshot{
			Kind:    g.current.Kind,
			Offsets: append([]Offset(nil), g.current.Offsets...),
			X:       g.current.X,
			Y:       g.current.Y,
			Color:   Color(g.current.Kind),
		}
	}

	s.Next = PieceSnapshot{
		Kind:    g.next.Kind,
		Offsets: append([]Offset(nil), g.next.Offsets...),
		Color:   Color(g.next.Kind),
	}

	if g.state == StateClearing {
		s.ClearingRows = append([]int(nil), g.pendingRows...)
	}
	return s
}
