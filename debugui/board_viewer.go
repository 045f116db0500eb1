package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/psavva/tetris"
)

func NewBoardViewer() BoardViewer {
	return BoardViewer{}
}

// Render draws an occupancy table of the board, one row per board row.
// Clicking a row expands a cell-level view below the table.
func (bv *BoardViewer) Render(snap tetris.Snapshot) {
	if !imgui.BeginV("Board Viewer", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	counts := make([]int, snap.Height)
	maxCount := 0
	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			if snap.Cells[y][x].Occupied {
				counts[y]++
			}
		}
		if counts[y] > maxCount {
			maxCount = counts[y]
		}
	}

	imgui.Text(fmt.Sprintf("Board: %dx%d", snap.Width, snap.Height))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("BoardTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Row")
		imgui.TableSetupColumn("Occupied")
		imgui.TableHeadersRow()

		for y := 0; y < snap.Height; y++ {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := bv.selectedRow != nil && *bv.selectedRow == y
			if imgui.SelectableBoolV(fmt.Sprintf("%d", y), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				rowCopy := y
				bv.selectedRow = &rowCopy
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d / %d", counts[y], snap.Width))

			if maxCount > 0 {
				barWidth := float32(counts[y]) / float32(maxCount) * 80.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}
		}

		imgui.EndTable()
	}

	if bv.selectedRow != nil && *bv.selectedRow < snap.Height {
		y := *bv.selectedRow
		var sb strings.Builder
		for x := 0; x < snap.Width; x++ {
			if snap.Cells[y][x].Occupied {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		imgui.Separator()
		imgui.Text(fmt.Sprintf("Row %d: %s", y, sb.String()))
	}

	imgui.End()
}
