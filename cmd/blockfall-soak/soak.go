package main

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/plus3/blockfall/frame"
	"github.com/plus3/blockfall/internal/random"
	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/shape"
)

// frameTime is the simulated time each frame advances gravity by.
const frameTime = 1.0 / 60.0

// RandomPlayerSystem issues a random command on roughly one frame in four.
type RandomPlayerSystem struct {
	rng *rand.Rand
}

func (p *RandomPlayerSystem) Execute(u *frame.Update) {
	switch p.rng.IntN(16) {
	case 0:
		u.Commands.Move(session.Left)
	case 1:
		u.Commands.Move(session.Right)
	case 2:
		u.Commands.Rotate()
	case 3:
		if p.rng.IntN(8) == 0 {
			u.Commands.HardDrop()
		} else {
			u.Commands.Move(session.Down)
		}
	}
}

// Game is the result of one finished session.
type Game struct {
	Score       int
	RowsCleared int
	Locks       int
}

// Runner drives one session and restarts it whenever it ends.
type Runner struct {
	Scheduler *frame.Scheduler
	Games     []Game
	Spawned   map[shape.Kind]int
	Clears    map[int]int
}

func NewRunner(cfg session.Config, seed uint64) (*Runner, error) {
	s, err := session.New(cfg, session.WithSeed(seed))
	if err != nil {
		return nil, err
	}

	scheduler := frame.NewScheduler(s)
	scheduler.Register(&RandomPlayerSystem{rng: rand.New(rand.NewPCG(seed, 1))})
	scheduler.Register(&frame.GravitySystem{})

	return &Runner{
		Scheduler: scheduler,
		Spawned:   make(map[shape.Kind]int),
		Clears:    make(map[int]int),
	}, nil
}

// Step runs one frame, recording and restarting a finished game.
func (r *Runner) Step() {
	res := r.Scheduler.Once(frameTime)
	if !res.GameOver {
		return
	}

	s := r.Scheduler.Session()
	st := s.Stats()
	r.Games = append(r.Games, Game{
		Score:       s.Score(),
		RowsCleared: st.RowsCleared,
		Locks:       st.Locks,
	})
	for k, n := range st.Spawned {
		r.Spawned[k] += n
	}
	for rows, n := range st.Clears {
		r.Clears[rows] += n
	}
	s.Reset()
}

// Options configures a soak run. The run stops at the first of the context
// ending or MaxFrames frames per session, when MaxFrames is positive.
type Options struct {
	Config    session.Config
	Sessions  int
	Seed      uint64
	MaxFrames int
}

// Soak runs the sessions round-robin and fills in the results of r.
func Soak(ctx context.Context, opts Options, r *Report) error {
	runners := make([]*Runner, opts.Sessions)
	for i := range runners {
		runner, err := NewRunner(opts.Config, random.Derive(opts.Seed, i))
		if err != nil {
			return err
		}
		runners[i] = runner
	}

	startTime := time.Now()
	var frames int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
		}
		if opts.MaxFrames > 0 && frames >= int64(opts.MaxFrames) {
			break
		}

		updateStart := time.Now()
		for _, runner := range runners {
			runner.Step()
		}
		r.UpdateTime.Samples = append(r.UpdateTime.Samples, time.Since(updateStart))
		frames++
	}

	r.TotalTime = time.Since(startTime)
	r.TotalFrames = frames
	r.UpdateTime.Finalize()
	r.collect(runners)
	return nil
}
