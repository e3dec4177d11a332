package cue

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/session"
)

func TestToneFor(t *testing.T) {
	_, ok := ToneFor(session.Event{Kind: session.EventLocked})
	assert.True(t, ok)

	// A lock that cleared rows is voiced by the clear event.
	_, ok = ToneFor(session.Event{Kind: session.EventLocked, Rows: 2})
	assert.False(t, ok)

	one, ok := ToneFor(session.Event{Kind: session.EventCleared, Rows: 1})
	require.True(t, ok)
	four, ok := ToneFor(session.Event{Kind: session.EventCleared, Rows: 4})
	require.True(t, ok)
	assert.Equal(t, 440.0, one.Freq)
	assert.Greater(t, four.Freq, one.Freq)

	over, ok := ToneFor(session.Event{Kind: session.EventGameOver})
	require.True(t, ok)
	assert.Greater(t, over.Duration, one.Duration)
}

func TestToneGenerator(t *testing.T) {
	rate := beep.SampleRate(44100)
	tone := Tone{Freq: 440, Duration: 50 * time.Millisecond, Volume: 0.5}
	g := NewToneGenerator(rate, tone)

	total := 0
	samples := make([][2]float64, 512)
	for {
		n, ok := g.Stream(samples)
		if !ok {
			break
		}
		for i := range n {
			assert.LessOrEqual(t, samples[i][0], tone.Volume)
			assert.GreaterOrEqual(t, samples[i][0], -tone.Volume)
			assert.Equal(t, samples[i][0], samples[i][1])
		}
		total += n
	}

	assert.Equal(t, rate.N(tone.Duration), total)
	assert.NoError(t, g.Err())
}

func TestPlayerSilentUntilInit(t *testing.T) {
	p := NewPlayer()
	assert.NotPanics(t, func() {
		p.Handle(session.Event{Kind: session.EventGameOver})
		p.Close()
	})
}
