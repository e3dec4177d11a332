package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/session"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	s.Finalize()
	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestTally(t *testing.T) {
	var tally Tally
	for i, v := range []int{20, 0, 40} {
		tally.Add(v, i+1)
	}
	assert.Equal(t, 0, tally.Min)
	assert.Equal(t, 40, tally.Max)
	assert.Equal(t, 60, tally.Total)
	assert.InDelta(t, 20.0, tally.Avg, 1e-9)
}

func soakOptions() Options {
	cfg := session.DefaultConfig()
	cfg.Cols = 8
	cfg.Rows = 10
	return Options{
		Config:    cfg,
		Sessions:  3,
		Seed:      99,
		MaxFrames: 6000,
	}
}

func TestSoakIsReproducible(t *testing.T) {
	var a, b Report
	require.NoError(t, Soak(context.Background(), soakOptions(), &a))
	require.NoError(t, Soak(context.Background(), soakOptions(), &b))

	assert.Equal(t, int64(6000), a.TotalFrames)
	assert.Positive(t, a.Games)
	assert.Equal(t, a.Games, b.Games)
	assert.Equal(t, a.Score, b.Score)
	assert.Equal(t, a.RowsCleared, b.RowsCleared)
	assert.Equal(t, a.Pieces, b.Pieces)
	assert.Equal(t, a.Clears, b.Clears)
	assert.Len(t, a.UpdateTime.Samples, 6000)

	require.Len(t, a.Systems, 2)
	assert.Equal(t, "RandomPlayerSystem", a.Systems[0].Name)
	assert.Equal(t, "GravitySystem", a.Systems[1].Name)
	assert.Equal(t, int64(3*6000), a.Systems[1].ExecutionCount)
}

func TestSoakStopsOnContext(t *testing.T) {
	opts := soakOptions()
	opts.MaxFrames = 0

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	var r Report
	require.NoError(t, Soak(ctx, opts, &r))
	assert.Positive(t, r.TotalFrames)
}

func TestSoakRejectsInvalidConfig(t *testing.T) {
	opts := soakOptions()
	opts.Config.Rows = 0

	var r Report
	err := Soak(context.Background(), opts, &r)
	assert.ErrorIs(t, err, session.ErrInvalidConfig)
}

func TestReportGenerate(t *testing.T) {
	r := Report{Duration: time.Second, Sessions: 3, Seed: 99, Cols: 8, Rows: 10}
	require.NoError(t, Soak(context.Background(), soakOptions(), &r))

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "# Blockfall Soak Report")
	assert.Contains(t, out, "- **Board:** 8x10")
	assert.Contains(t, out, "| Square |")
	assert.Contains(t, out, "| GravitySystem |")
	assert.Contains(t, out, "- **Total Frames:** 6000")
	assert.NotContains(t, out, "GC Pause Durations")
}
