package tetris

import "image/color"

// Cell is one board cell: empty, or occupied with a display color.
type Cell struct {
	Occupied bool
	Color    color.RGBA
}

// Board is a fixed-size grid of cells holding the locked pieces. Rows run
// 0..H-1 top to bottom and columns 0..W-1 left to right. Dimensions never
// change after construction.
type Board struct {
	width  int
	height int
	cells  [][]Cell // [row][col]
}

// NewBoard creates an empty w by h board.
func NewBoard(w, h int) *Board {
	cells := make([][]Cell, h)
	for y := range cells {
		cells[y] = make([]Cell, w)
	}
	return &Board{width: w, height: h, cells: cells}
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// At returns the cell at column x, row y.
func (b *Board) At(x, y int) Cell { return b.cells[y][x] }

// Collides reports whether placing a piece with the given local offsets at
// (originX, originY) would cross a wall, the floor, or an occupied cell.
//
// Cells with y < 0 are not out of bounds: a piece may spawn or rotate
// partially above the visible board. Only the two walls and the floor are
// hard boundaries, and occupancy is checked for visible cells only. This
// asymmetry is part of the engine's contract.
func (b *Board) Collides(originX, originY int, offsets []Offset) bool {
	for _, o := range offsets {
		x := originX + o.X
		y := originY + o.Y
		if x < 0 || x >= b.width {
			return true
		}
		if y >= b.height {
			return true
		}
		if y >= 0 && b.cells[y][x].Occupied {
			return true
		}
	}
	return false
}

// Commit marks the piece's visible cells occupied with c. Cells above the
// top of the board (y < 0) are silently dropped; a lock only happens after a
// failed collision check one row below, so those cells never land anywhere.
func (b *Board) Commit(originX, originY int, offsets []Offset, c color.RGBA) {
	for _, o := range offsets {
		y := originY + o.Y
		if y < 0 || y >= b.height {
			continue
		}
		b.cells[y][originX+o.X] = Cell{Occupied: true, Color: c}
	}
}

// FullRows returns the indices of rows with every column occupied, in
// ascending order.
func (b *Board) FullRows() []int {
	var full []int
	for y := 0; y < b.height; y++ {
		complete := true
		for x := 0; x < b.width; x++ {
			if !b.cells[y][x].Occupied {
				complete = false
				break
			}
		}
		if complete {
			full = append(full, y)
		}
	}
	return full
}

// ClearRows removes the listed rows and inserts an equal number of empty
// rows at the top, preserving the relative order of the surviving rows. The
// whole removal set is taken before any mutation, so simultaneous clears
// behave the same regardless of index order. Out-of-range indices are
// ignored.
func (b *Board) ClearRows(rows []int) {
	if len(rows) == 0 {
		return
	}
	drop := make(map[int]bool, len(rows))
	for _, r := range rows {
		if r >= 0 && r < b.height {
			drop[r] = true
		}
	}
	if len(drop) == 0 {
		return
	}

	kept := make([][]Cell, 0, b.height)
	for y := 0; y < b.height; y++ {
		if !drop[y] {
			kept = append(kept, b.cells[y])
		}
	}

	cells := make([][]Cell, 0, b.height)
	for i := 0; i < b.height-len(kept); i++ {
		cells = append(cells, make([]Cell, b.width))
	}
	b.cells = append(cells, kept...)
}

// Cells returns a deep copy of the grid for render snapshots.
func (b *Board) Cells() [][]Cell {
	out := make([][]Cell, b.height)
	for y, row := range b.cells {
		out[y] = make([]Cell, b.width)
		copy(out[y], row)
	}
	return out
}
