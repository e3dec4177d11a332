package frame

import "github.com/plus3/blockfall/session"

// Commands buffers session operations issued during a frame. They are
// applied in the order they were queued when the frame is flushed, so input
// queued before the gravity tick is applied before it.
type Commands struct {
	ops    []command
	defers []func()
}

type opKind int

const (
	opMove opKind = iota
	opRotate
	opHardDrop
	opTick
	opReset
)

type command struct {
	kind    opKind
	dir     session.Direction
	elapsed float64
}

func newCommands() *Commands {
	return &Commands{}
}

// Move queues a one-cell move.
func (c *Commands) Move(d session.Direction) {
	c.ops = append(c.ops, command{kind: opMove, dir: d})
}

// Rotate queues a rotation.
func (c *Commands) Rotate() {
	c.ops = append(c.ops, command{kind: opRotate})
}

// HardDrop queues a hard drop.
func (c *Commands) HardDrop() {
	c.ops = append(c.ops, command{kind: opHardDrop})
}

// Tick queues a gravity tick of elapsed seconds.
func (c *Commands) Tick(elapsed float64) {
	c.ops = append(c.ops, command{kind: opTick, elapsed: elapsed})
}

// Reset queues a restart of the session.
func (c *Commands) Reset() {
	c.ops = append(c.ops, command{kind: opReset})
}

// Defer queues fn to run after every session command has been applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued session commands.
func (c *Commands) Len() int {
	return len(c.ops)
}

// Flush applies all queued commands to s, runs deferred functions and resets
// the buffer. It returns the combined result of every queued tick and drop.
func (c *Commands) Flush(s *session.Session) session.TickResult {
	var total session.TickResult

	for _, cmd := range c.ops {
		switch cmd.kind {
		case opMove:
			s.Move(cmd.dir)
		case opRotate:
			s.Rotate()
		case opHardDrop:
			locks := s.Stats().Locks
			rows := s.Stats().RowsCleared
			if _, ok := s.HardDrop(); ok {
				total.Locks += s.Stats().Locks - locks
				total.Cleared += s.Stats().RowsCleared - rows
			}
		case opTick:
			res := s.Tick(cmd.elapsed)
			total.Steps += res.Steps
			total.Locks += res.Locks
			total.Cleared += res.Cleared
		case opReset:
			s.Reset()
			total = session.TickResult{}
		}
	}
	total.GameOver = s.Phase() == session.GameOver

	for _, fn := range c.defers {
		fn()
	}

	c.ops = c.ops[:0]
	c.defers = c.defers[:0]
	return total
}
