package debugui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/session"
)

type squaresOnly struct{}

func (squaresOnly) IntN(int) int { return 0 }

func TestFrameHistory(t *testing.T) {
	h := debugui.NewFrameHistory(4)
	assert.Zero(t, h.Average())
	assert.Zero(t, h.FPS())

	for range 4 {
		h.Record(0.02)
	}
	assert.InDelta(t, 20.0, h.Average(), 1e-4)
	assert.InDelta(t, 50.0, h.FPS(), 1e-3)

	// The ring overwrites the oldest sample.
	h.Record(0.06)
	assert.InDelta(t, 30.0, h.Average(), 1e-4)
}

func TestSummary(t *testing.T) {
	s, err := session.New(session.DefaultConfig(), session.WithGenerator(squaresOnly{}))
	require.NoError(t, err)

	fields := map[string]string{}
	var order []string
	for _, f := range debugui.Summary(s) {
		fields[f.Label] = f.Value
		order = append(order, f.Label)
	}

	assert.Equal(t, []string{"Phase", "Score", "Speed", "Timer", "Piece", "Anchor", "Locks", "Rows Cleared"}, order)
	assert.Equal(t, "Playing", fields["Phase"])
	assert.Equal(t, "0", fields["Score"])
	assert.Equal(t, "5.00 rows/s", fields["Speed"])
	assert.Equal(t, "Square", fields["Piece"])
	assert.Equal(t, "(10, 0)", fields["Anchor"])
}

func TestSummaryAfterGameOver(t *testing.T) {
	cfg := session.DefaultConfig()
	cfg.Rows = 4
	s, err := session.New(cfg, session.WithGenerator(squaresOnly{}))
	require.NoError(t, err)

	s.HardDrop()
	s.HardDrop()
	require.Equal(t, session.GameOver, s.Phase())

	fields := map[string]string{}
	for _, f := range debugui.Summary(s) {
		fields[f.Label] = f.Value
	}
	assert.Equal(t, "GameOver", fields["Phase"])
	assert.Equal(t, "none", fields["Piece"])
	assert.NotContains(t, fields, "Anchor")
	assert.Equal(t, "2", fields["Locks"])
}
