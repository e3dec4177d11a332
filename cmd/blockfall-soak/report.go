package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/frame"
	"github.com/plus3/blockfall/shape"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Sessions int
	Seed     uint64
	Cols     int
	Rows     int

	// Results
	TotalFrames    int64
	TotalTime      time.Duration
	UpdateTime     Stats
	Games          int
	Score          Tally
	RowsCleared    Tally
	Locks          int
	Pieces         []PieceCount
	Clears         []ClearCount
	Systems        []frame.SystemStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
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

// Tally summarizes per-game integer results.
type Tally struct {
	Min   int
	Max   int
	Avg   float64
	Total int
}

func (t *Tally) Add(v int, n int) {
	if n == 1 || v < t.Min {
		t.Min = v
	}
	if n == 1 || v > t.Max {
		t.Max = v
	}
	t.Total += v
	t.Avg = float64(t.Total) / float64(n)
}

type PieceCount struct {
	Kind  shape.Kind
	Count int
}

type ClearCount struct {
	Rows  int
	Count int
}

func (r *Report) collect(runners []*Runner) {
	spawned := make(map[shape.Kind]int)
	clears := make(map[int]int)

	for _, runner := range runners {
		for _, g := range runner.Games {
			r.Games++
			r.Score.Add(g.Score, r.Games)
			r.RowsCleared.Add(g.RowsCleared, r.Games)
			r.Locks += g.Locks
		}
		for k, n := range runner.Spawned {
			spawned[k] += n
		}
		for rows, n := range runner.Clears {
			clears[rows] += n
		}
	}

	r.Pieces = r.Pieces[:0]
	for _, tmpl := range shape.Templates() {
		r.Pieces = append(r.Pieces, PieceCount{Kind: tmpl.Kind, Count: spawned[tmpl.Kind]})
	}
	r.Clears = r.Clears[:0]
	for rows := 1; rows <= 4; rows++ {
		r.Clears = append(r.Clears, ClearCount{Rows: rows, Count: clears[rows]})
	}

	r.Systems = nil
	for _, runner := range runners {
		for i, sys := range runner.Scheduler.Stats().Systems {
			if i >= len(r.Systems) {
				r.Systems = append(r.Systems, frame.SystemStats{Name: sys.Name, MinDuration: sys.MinDuration})
			}
			agg := &r.Systems[i]
			agg.ExecutionCount += sys.ExecutionCount
			agg.TotalDuration += sys.TotalDuration
			agg.MinDuration = min(agg.MinDuration, sys.MinDuration)
			agg.MaxDuration = max(agg.MaxDuration, sys.MaxDuration)
		}
	}
	for i := range r.Systems {
		if n := r.Systems[i].ExecutionCount; n > 0 {
			r.Systems[i].AvgDuration = r.Systems[i].TotalDuration / time.Duration(n)
		}
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Soak Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Sessions:** {{.Sessions}}
- **Seed:** {{.Seed}}
- **Board:** {{.Cols}}x{{.Rows}}

## Games
- **Finished Games:** {{.Games}}
- **Score:** avg {{printf "%.1f" .Score.Avg}}, min {{.Score.Min}}, max {{.Score.Max}}
- **Rows Cleared:** avg {{printf "%.1f" .RowsCleared.Avg}}, min {{.RowsCleared.Min}}, max {{.RowsCleared.Max}}, total {{.RowsCleared.Total}}
- **Pieces Locked:** {{.Locks}}

| Piece | Spawned |
|---|---|
{{- range .Pieces}}
| {{.Kind}} | {{.Count}} |
{{- end}}

| Rows at once | Clears |
|---|---|
{{- range .Clears}}
| {{.Rows}} | {{.Count}} |
{{- end}}

## Performance Results
- **Total Frames:** {{.TotalFrames}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

| System | Executions | Avg | Max |
|---|---|---|---|
{{- range .Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}
