// Package debugui provides immediate-mode debug panels for tetris sessions using Dear ImGui.
// Panels render from a Snapshot so they never touch live game state mid-frame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/psavva/tetris"
)

// Overlay bundles the debug panels and renders them all from a single snapshot.
// Toggle Visible to show or hide the whole overlay at once.
type Overlay struct {
	Session SessionInspector
	Board   BoardViewer
	Stats   TickStatsPanel

	Visible bool
}

// NewOverlay builds an overlay with all panels enabled. historyFrames sets
// the length of the frame-time graph in the tick stats panel.
func NewOverlay(historyFrames int) *Overlay {
	return &Overlay{
		Session: NewSessionInspector(),
		Board:   NewBoardViewer(),
		Stats:   NewTickStatsPanel(historyFrames),
		Visible: true,
	}
}

// Render draws every panel. deltaTime is the wall-clock time since the
// previous frame in seconds, typically from a FrameTimer.
func (o *Overlay) Render(snap tetris.Snapshot, stats tetris.TickStats, deltaTime float32) {
	if !o.Visible {
		return
	}

	o.Session.Render(snap)
	o.Board.Render(snap)
	o.Stats.Render(stats, deltaTime)
}

// InputState reports Dear ImGui's input capture state.
// Use this to decide whether game input should be suppressed this frame.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// CurrentInputState samples ImGui's capture state for the current frame.
func CurrentInputState() InputState {
	io := imgui.CurrentIO()
	return InputState{
		WantCaptureMouse:    io.WantCaptureMouse(),
		WantCaptureKeyboard: io.WantCaptureKeyboard(),
	}
}
