package tetris

import "time"

// TickStats aggregates Tick execution timings for diagnostics and headless
// benchmarking.
type TickStats struct {
	Count int64
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
	Last  time.Duration
	Total time.Duration
}

func (s *TickStats) record(d time.Duration) {
	if s.Count == 0 || d < s.Min {
		s.Min = d
	}
	if d > s.Max {
		s.Max = d
	}
	s.Count++
	s.Last = d
	s.Total += d
	s.Avg = s.Total / time.Duration(s.Count)
}
