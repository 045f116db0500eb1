package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/psavva/tetris"
)

const (
	bevelShade = 0.4
	bevelEdge  = 3
	panelCells = 6
)

var (
	backgroundColor = color.RGBA{0, 0, 0, 255}
	gridColor       = color.RGBA{40, 40, 40, 255}
	flashColor      = color.RGBA{255, 255, 255, 255}
)

// Renderer draws a board snapshot in a fixed pixel layout: the playfield on
// the left, a side panel with the next-piece preview and HUD on the right.
type Renderer struct {
	boardW int
	boardH int
	cell   int
}

func NewRenderer(boardW, boardH, cell int) *Renderer {
	return &Renderer{
		boardW: boardW,
		boardH: boardH,
		cell:   cell,
	}
}

// Size returns the full window size in pixels.
func (r *Renderer) Size() (int, int) {
	return (r.boardW + panelCells) * r.cell, r.boardH * r.cell
}

func (r *Renderer) Draw(screen *ebiten.Image, snap tetris.Snapshot) {
	screen.Fill(backgroundColor)

	clearing := make(map[int]bool, len(snap.ClearingRows))
	for _, row := range snap.ClearingRows {
		clearing[row] = true
	}

	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			cell := snap.Cells[y][x]
			switch {
			case clearing[y]:
				r.drawBlock(screen, x, y, flashColor)
			case cell.Occupied:
				r.drawBlock(screen, x, y, cell.Color)
			default:
				px := float32(x * r.cell)
				py := float32(y * r.cell)
				vector.StrokeRect(screen, px, py, float32(r.cell), float32(r.cell), 1, gridColor, false)
			}
		}
	}

	if snap.HasActive {
		for _, o := range snap.Active.Offsets {
			cx := snap.Active.X + o.X
			cy := snap.Active.Y + o.Y
			if cy < 0 {
				continue
			}
			r.drawBlock(screen, cx, cy, snap.Active.Color)
		}
	}

	r.drawPanel(screen, snap)
}

func (r *Renderer) drawBlock(screen *ebiten.Image, cellX, cellY int, c color.RGBA) {
	r.drawBlockAt(screen, float32(cellX*r.cell), float32(cellY*r.cell), c)
}

// drawBlockAt renders a cell with raised 3D edges: light on the top and left,
// dark on the bottom and right.
func (r *Renderer) drawBlockAt(screen *ebiten.Image, px, py float32, c color.RGBA) {
	size := float32(r.cell)
	light := lighten(c, bevelShade)
	dark := darken(c, bevelShade)

	vector.DrawFilledRect(screen, px, py, size, size, c, false)

	vector.DrawFilledRect(screen, px, py, size, bevelEdge, light, false)
	vector.DrawFilledRect(screen, px, py, bevelEdge, size, light, false)
	vector.DrawFilledRect(screen, px, py+size-bevelEdge, size, bevelEdge, dark, false)
	vector.DrawFilledRect(screen, px+size-bevelEdge, py, bevelEdge, size, dark, false)
}

func (r *Renderer) drawPanel(screen *ebiten.Image, snap tetris.Snapshot) {
	panelX := r.boardW * r.cell

	// Next-piece preview inside a 4x4 cell box.
	previewX := panelX + r.cell
	previewY := r.cell
	vector.StrokeRect(screen, float32(previewX), float32(previewY), float32(4*r.cell), float32(4*r.cell), 1, gridColor, false)

	for _, o := range snap.Next.Offsets {
		px := float32(previewX + o.X*r.cell + r.cell/2)
		py := float32(previewY + o.Y*r.cell + r.cell/2)
		r.drawBlockAt(screen, px, py, snap.Next.Color)
	}

	hudX := panelX + r.cell
	hudY := previewY + 5*r.cell
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", snap.Score), hudX, hudY)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Lines: %d", snap.Lines), hudX, hudY+20)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Level: %d", snap.Level), hudX, hudY+40)

	if snap.GameOver {
		ebitenutil.DebugPrintAt(screen, "GAME OVER", hudX, hudY+80)
		ebitenutil.DebugPrintAt(screen, "Press Q to quit", hudX, hudY+100)
	}
}

func lighten(c color.RGBA, amount float64) color.RGBA {
	return color.RGBA{
		R: c.R + uint8(float64(255-c.R)*amount),
		G: c.G + uint8(float64(255-c.G)*amount),
		B: c.B + uint8(float64(255-c.B)*amount),
		A: c.A,
	}
}

func darken(c color.RGBA, amount float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * (1 - amount)),
		G: uint8(float64(c.G) * (1 - amount)),
		B: uint8(float64(c.B) * (1 - amount)),
		A: c.A,
	}
}
