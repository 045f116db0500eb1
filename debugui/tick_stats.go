package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/psavva/tetris"
)

func NewTickStatsPanel(historyFrames int) TickStatsPanel {
	return TickStatsPanel{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		frameIndex:    0,
	}
}

func (tp *TickStatsPanel) Render(stats tetris.TickStats, deltaTime float32) {
	if !imgui.BeginV("Tick Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	tp.frameHistory[tp.frameIndex] = deltaTime * 1000.0
	tp.frameIndex = (tp.frameIndex + 1) % tp.historyFrames

	imgui.Text(fmt.Sprintf("Ticks: %d", stats.Count))
	if stats.Count > 0 {
		imgui.Text(fmt.Sprintf("Min: %s", stats.Min))
		imgui.Text(fmt.Sprintf("Max: %s", stats.Max))
		imgui.Text(fmt.Sprintf("Avg: %s", stats.Avg))
		imgui.Text(fmt.Sprintf("Last: %s", stats.Last))
		imgui.Text(fmt.Sprintf("Total: %s", stats.Total))
	}

	var avgFrameTime float32
	for _, ft := range tp.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(tp.historyFrames)

	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &tp.frameHistory[0], int32(len(tp.frameHistory)))

	imgui.End()
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
