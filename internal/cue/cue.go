// Package cue plays short synthesized sounds for session events.
package cue

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/blockfall/session"
)

const sampleRate = beep.SampleRate(48000)

// Tone describes one cue.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Volume   float64
}

// ToneFor maps an event to its cue. Clears rise in pitch with the number of
// rows; ok is false for events without a sound.
func ToneFor(e session.Event) (Tone, bool) {
	switch e.Kind {
	case session.EventLocked:
		if e.Rows > 0 {
			return Tone{}, false
		}
		return Tone{Freq: 220, Duration: 40 * time.Millisecond, Volume: 0.15}, true
	case session.EventCleared:
		return Tone{
			Freq:     440 * math.Pow(2, float64(e.Rows-1)/4),
			Duration: 120 * time.Millisecond,
			Volume:   0.25,
		}, true
	case session.EventGameOver:
		return Tone{Freq: 110, Duration: 600 * time.Millisecond, Volume: 0.3}, true
	}
	return Tone{}, false
}

// ToneGenerator streams a sine tone with a short fade in and out.
type ToneGenerator struct {
	sr    beep.SampleRate
	tone  Tone
	total int
	pos   int
}

func NewToneGenerator(sr beep.SampleRate, tone Tone) *ToneGenerator {
	return &ToneGenerator{
		sr:    sr,
		tone:  tone,
		total: sr.N(tone.Duration),
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}

	fade := float64(g.sr.N(10 * time.Millisecond))
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		sample := math.Sin(2 * math.Pi * g.tone.Freq * t)

		envelope := math.Min(float64(g.pos)/fade, 1.0)
		envelope = math.Min(envelope, float64(g.total-g.pos)/fade)
		sample *= envelope * g.tone.Volume

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// Player mixes cues onto the speaker. A Player that was never initialized
// stays silent.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences all pending cues.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Handle plays the cue for e. It can be passed to session.WithListener.
func (p *Player) Handle(e session.Event) {
	tone, ok := ToneFor(e)
	if !ok {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Add(NewToneGenerator(sampleRate, tone))
	speaker.Unlock()
}
