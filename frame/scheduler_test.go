package frame_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/frame"
	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/shape"
)

type squaresOnly struct{}

func (squaresOnly) IntN(int) int { return 0 }

func newSession(t *testing.T, cols, rows int) *session.Session {
	t.Helper()
	s, err := session.New(session.Config{
		Cols:         cols,
		Rows:         rows,
		BaseSpeed:    4,
		SpeedStep:    0.5,
		PointsPerRow: 10,
	}, session.WithGenerator(squaresOnly{}))
	require.NoError(t, err)
	return s
}

func anchor(t *testing.T, s *session.Session) shape.Point {
	t.Helper()
	p, ok := s.Piece()
	require.True(t, ok)
	return p.Anchor
}

// recordSystem counts executions and records the anchor it saw.
type recordSystem struct {
	ExecuteCount int
	Seen         []shape.Point
}

func (r *recordSystem) Execute(u *frame.Update) {
	r.ExecuteCount++
	if p, ok := u.Session.Piece(); ok {
		r.Seen = append(r.Seen, p.Anchor)
	}
}

// leftSystem queues a move to the left every frame.
type leftSystem struct{}

func (leftSystem) Execute(u *frame.Update) {
	u.Commands.Move(session.Left)
}

func TestScheduler(t *testing.T) {
	t.Run("systems run once per frame", func(t *testing.T) {
		s := newSession(t, 10, 20)
		scheduler := frame.NewScheduler(s)

		a := &recordSystem{}
		b := &recordSystem{}
		scheduler.Register(a)
		scheduler.Register(b)

		scheduler.Once(0)
		assert.Equal(t, 1, a.ExecuteCount)
		assert.Equal(t, 1, b.ExecuteCount)

		scheduler.Once(0)
		assert.Equal(t, 2, a.ExecuteCount)
		assert.Equal(t, 2, b.ExecuteCount)
		assert.Same(t, s, scheduler.Session())
	})

	t.Run("commands apply after every system has run", func(t *testing.T) {
		s := newSession(t, 10, 20)
		scheduler := frame.NewScheduler(s)

		after := &recordSystem{}
		scheduler.Register(leftSystem{})
		scheduler.Register(after)

		scheduler.Once(0)
		require.Len(t, after.Seen, 1)
		assert.Equal(t, shape.Point{X: 5, Y: 0}, after.Seen[0])
		assert.Equal(t, shape.Point{X: 4, Y: 0}, anchor(t, s))
	})

	t.Run("input is applied before gravity", func(t *testing.T) {
		s := newSession(t, 10, 20)
		scheduler := frame.NewScheduler(s)
		scheduler.Register(leftSystem{})
		scheduler.Register(&frame.GravitySystem{})

		res := scheduler.Once(0.25)
		assert.Equal(t, 1, res.Steps)
		assert.Equal(t, shape.Point{X: 4, Y: 1}, anchor(t, s))
		assert.Equal(t, res, scheduler.Last())
	})

	t.Run("paused gravity does not tick", func(t *testing.T) {
		s := newSession(t, 10, 20)
		scheduler := frame.NewScheduler(s)
		gravity := &frame.GravitySystem{Paused: true}
		scheduler.Register(gravity)

		res := scheduler.Once(1)
		assert.Zero(t, res.Steps)
		assert.Zero(t, s.Timer())

		gravity.Paused = false
		res = scheduler.Once(1)
		assert.Equal(t, 4, res.Steps)
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		s := newSession(t, 10, 20)
		scheduler := frame.NewScheduler(s)

		rec := &recordSystem{}
		scheduler.Register(rec)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan bool)
		go func() {
			scheduler.Run(ctx, 1*time.Millisecond)
			done <- true
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
			t.Fatal("scheduler did not stop after context cancellation")
		}

		assert.NotZero(t, rec.ExecuteCount)
	})

	t.Run("stats", func(t *testing.T) {
		s := newSession(t, 10, 20)
		scheduler := frame.NewScheduler(s)
		scheduler.Register(&recordSystem{})
		scheduler.Register(&frame.GravitySystem{})

		for range 3 {
			scheduler.Once(0.01)
		}

		stats := scheduler.Stats()
		assert.Equal(t, 2, stats.SystemCount)
		assert.Equal(t, int64(3), stats.Frames)
		assert.Equal(t, int64(6), stats.TotalExecutions)
		require.Len(t, stats.Systems, 2)
		assert.Equal(t, "recordSystem", stats.Systems[0].Name)
		assert.Equal(t, "GravitySystem", stats.Systems[1].Name)
		for _, sys := range stats.Systems {
			assert.Equal(t, int64(3), sys.ExecutionCount)
			assert.LessOrEqual(t, sys.MinDuration, sys.MaxDuration)
			assert.GreaterOrEqual(t, sys.TotalDuration, sys.MaxDuration)
		}
	})
}
