package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/psavva/tetris"
)

func NewSessionInspector() SessionInspector {
	return SessionInspector{
		showOffsets: true,
	}
}

func (si *SessionInspector) Render(snap tetris.Snapshot) {
	if !imgui.BeginV("Session Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("State: %s", snap.State))
	imgui.Text(fmt.Sprintf("Score: %d", snap.Score))
	imgui.Text(fmt.Sprintf("Lines: %d", snap.Lines))
	imgui.Text(fmt.Sprintf("Level: %d", snap.Level))

	imgui.Separator()

	if snap.HasActive {
		if imgui.TreeNodeStr(fmt.Sprintf("Active: %s", snap.Active.Kind)) {
			imgui.Text(fmt.Sprintf("Origin: (%d, %d)", snap.Active.X, snap.Active.Y))
			imgui.Checkbox("Show offsets", &si.showOffsets)
			if si.showOffsets {
				for _, o := range snap.Active.Offsets {
					imgui.BulletText(fmt.Sprintf("(%d, %d)", o.X, o.Y))
				}
			}
			imgui.TreePop()
		}
	} else {
		imgui.Text("No active piece")
	}

	imgui.Text(fmt.Sprintf("Next: %s", snap.Next.Kind))

	if len(snap.ClearingRows) > 0 {
		imgui.Separator()
		imgui.Text("Clearing rows:")
		for _, row := range snap.ClearingRows {
			imgui.BulletText(fmt.Sprintf("%d", row))
		}
	}

	imgui.End()
}
