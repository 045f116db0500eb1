package main

import (
	"io"
	"text/template"
	"time"

	"github.com/kamstrup/intmap"
)

// GameResult holds the outcome of a single simulated game.
type GameResult struct {
	Seed      int64
	Score     int
	Lines     int
	Level     int
	Ticks     int
	Completed bool
}

type Report struct {
	// Configuration
	Games    int
	MaxTicks int
	BaseSeed int64

	// Results
	TotalTime  time.Duration
	TickTime   Stats
	TotalTicks int64
	Completed  int
	AvgScore   float64
	AvgLines   float64
	Best       GameResult
	Worst      GameResult
	Results    []GameResult
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// Collect folds the per-seed results into the report aggregates.
// seeds preserves simulation order; the map holds the actual results.
func (r *Report) Collect(seeds []int64, results *intmap.Map[int64, GameResult]) {
	var totalScore, totalLines int64

	for i, seed := range seeds {
		res, ok := results.Get(seed)
		if !ok {
			continue
		}

		r.Results = append(r.Results, res)
		r.TotalTicks += int64(res.Ticks)
		totalScore += int64(res.Score)
		totalLines += int64(res.Lines)
		if res.Completed {
			r.Completed++
		}
		if i == 0 || res.Score > r.Best.Score {
			r.Best = res
		}
		if i == 0 || res.Score < r.Worst.Score {
			r.Worst = res
		}
	}

	if len(r.Results) > 0 {
		r.AvgScore = float64(totalScore) / float64(len(r.Results))
		r.AvgLines = float64(totalLines) / float64(len(r.Results))
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Tetris Simulation Report

## Configuration
- **Games:** {{.Games}}
- **Base Seed:** {{.BaseSeed}}
- **Tick Cap:** {{.MaxTicks}}

## Results
- **Total Ticks:** {{.TotalTicks}}
- **Total Wall Time:** {{.TotalTime}}
- **Games Finished:** {{.Completed}} / {{.Games}}
- **Avg Score:** {{printf "%.1f" .AvgScore}}
- **Avg Lines:** {{printf "%.1f" .AvgLines}}
- **Tick Time:**
  - **Avg:** {{.TickTime.Avg}}
  - **Min:** {{.TickTime.Min}}
  - **Max:** {{.TickTime.Max}}

## Extremes
- **Best:** seed {{.Best.Seed}} scored {{.Best.Score}} ({{.Best.Lines}} lines, level {{.Best.Level}})
- **Worst:** seed {{.Worst.Seed}} scored {{.Worst.Score}} ({{.Worst.Lines}} lines, level {{.Worst.Level}})

## Per-Game Results
| Seed | Score | Lines | Level | Ticks | Finished |
|------|-------|-------|-------|-------|----------|
{{range .Results -}}
| {{.Seed}} | {{.Score}} | {{.Lines}} | {{.Level}} | {{.Ticks}} | {{.Completed}} |
{{end}}
`

	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
