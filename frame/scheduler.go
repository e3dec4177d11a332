// Package frame drives a session one frame at a time. Systems run in
// registration order and queue their session commands on the frame; the
// scheduler applies the queue once every system has run.
package frame

import (
	"context"
	"reflect"
	"time"

	"github.com/plus3/blockfall/session"
)

// System is one step of a frame: input polling, gravity, audio, overlays.
type System interface {
	Execute(u *Update)
}

// Update is the per-frame context handed to every system.
type Update struct {
	DeltaTime float64
	Commands  *Commands
	Session   *session.Session
}

func newUpdate(dt float64, s *session.Session) *Update {
	return &Update{
		DeltaTime: dt,
		Commands:  newCommands(),
		Session:   s,
	}
}

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Frames          int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler manages and executes systems in order.
type Scheduler struct {
	session     *session.Session
	systems     []System
	systemStats []*systemStatsInternal
	frames      int64
	last        session.TickResult
}

// NewScheduler creates a scheduler driving s.
func NewScheduler(s *session.Session) *Scheduler {
	return &Scheduler{
		session: s,
		systems: make([]System, 0),
	}
}

// Register appends a system. Systems run in registration order.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Session returns the session being driven.
func (s *Scheduler) Session() *session.Session {
	return s.session
}

// Once executes all registered systems once with the given delta time and
// then flushes the queued commands. It returns what the flush did.
func (s *Scheduler) Once(dt float64) session.TickResult {
	u := newUpdate(dt, s.session)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(u)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	s.frames++
	s.last = u.Commands.Flush(s.session)
	return s.last
}

// Last returns the result of the most recent frame.
func (s *Scheduler) Last() session.TickResult {
	return s.last
}

// Run executes frames at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// Stats returns statistics about system execution.
func (s *Scheduler) Stats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
