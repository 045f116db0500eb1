package debugui

type SessionInspector struct {
	showOffsets bool
}

type BoardViewer struct {
	selectedRow *int
}

type TickStatsPanel struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}
