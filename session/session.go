// Package session runs one game: it spawns pieces, applies player commands,
// drives gravity from elapsed time, locks and clears rows, keeps score and
// detects the end of the game.
//
// A Session is not safe for concurrent use. Every mutating call must come
// from the one goroutine that owns it, and renderers read state between
// calls.
package session

import (
	"image/color"
	"iter"
	"math/rand/v2"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/shape"
)

// Phase is the session state. GameOver is terminal.
type Phase int

const (
	Playing Phase = iota
	GameOver
)

func (p Phase) String() string {
	if p == GameOver {
		return "GameOver"
	}
	return "Playing"
}

// Direction is a player translation command.
type Direction int

const (
	Left Direction = iota
	Right
	Down
)

func (d Direction) delta() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 1
	}
}

// Generator picks uniform indices in [0, n). *rand.Rand satisfies it.
type Generator interface {
	IntN(n int) int
}

// Option customizes a Session.
type Option func(*Session)

// WithGenerator sets the source used to pick templates and colors.
func WithGenerator(g Generator) Option {
	return func(s *Session) {
		s.rng = g
	}
}

// WithSeed uses a PCG generator seeded with seed.
func WithSeed(seed uint64) Option {
	return WithGenerator(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// WithListener registers fn to receive events. Listeners run synchronously
// inside the call that produced the event.
func WithListener(fn func(Event)) Option {
	return func(s *Session) {
		s.listeners = append(s.listeners, fn)
	}
}

// Session owns the board and the active piece.
type Session struct {
	cfg       Config
	board     *board.Board
	active    *piece.Piece
	templates []shape.Template
	colors    []color.RGBA
	rng       Generator
	listeners []func(Event)

	score int
	speed float64
	timer float64
	phase Phase
	stats *counters
}

// New starts a game with a fresh board and a spawned piece.
func New(cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		cfg:       cfg,
		board:     board.New(cfg.Cols, cfg.Rows),
		templates: shape.Templates(),
		colors:    shape.Colors(),
		stats:     newCounters(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	s.Reset()
	return s, nil
}

// Reset discards the current game and starts a new one with the same
// configuration, generator and listeners.
func (s *Session) Reset() {
	s.board.Reset()
	s.stats.reset()
	s.score = 0
	s.speed = s.cfg.BaseSpeed
	s.timer = 0
	s.phase = Playing
	s.active = nil
	s.spawn()
}

// Move shifts the active piece one cell. It reports whether the piece moved.
func (s *Session) Move(d Direction) bool {
	if s.phase != Playing {
		return false
	}
	dx, dy := d.delta()
	return s.active.TryMove(dx, dy, s.board)
}

// Rotate turns the active piece a quarter turn if it fits.
func (s *Session) Rotate() bool {
	if s.phase != Playing {
		return false
	}
	return s.active.TryRotate(s.board)
}

// HardDrop drops the active piece as far as it goes and locks it at once.
// It returns the number of rows the piece fell.
func (s *Session) HardDrop() (int, bool) {
	if s.phase != Playing {
		return 0, false
	}

	n := 0
	for s.active.TryMove(0, 1, s.board) {
		n++
	}
	s.timer = 0
	s.settle(nil)
	return n, true
}

// TickResult summarizes what a Tick did.
type TickResult struct {
	Steps    int // gravity steps taken
	Locks    int // pieces locked
	Cleared  int // rows cleared
	GameOver bool
}

// Tick advances gravity by elapsed seconds. Every full 1/speed interval in
// the accumulated time moves the piece down one row; a piece that cannot
// move down is locked and replaced.
func (s *Session) Tick(elapsed float64) TickResult {
	if s.phase != Playing {
		return TickResult{GameOver: true}
	}

	var res TickResult
	if elapsed > 0 {
		s.timer += elapsed
	}

	for s.phase == Playing {
		interval := 1 / s.speed
		if s.timer < interval {
			break
		}
		s.timer -= interval
		res.Steps++

		if s.active.TryMove(0, 1, s.board) {
			continue
		}
		s.settle(&res)
	}

	res.GameOver = s.phase == GameOver
	return res
}

// settle locks the active piece, clears rows, updates score and speed and
// spawns the next piece.
func (s *Session) settle(res *TickResult) {
	s.board.Lock(s.active.Cells(), s.active.Color())
	cleared := s.board.ClearFullRows()

	s.score += cleared * s.cfg.PointsPerRow
	if cleared > 0 {
		s.speed += s.cfg.SpeedStep
	}
	s.stats.lock(cleared)

	if res != nil {
		res.Locks++
		res.Cleared += cleared
	}

	s.emit(Event{Kind: EventLocked, Rows: cleared, Score: s.score})
	if cleared > 0 {
		s.emit(Event{Kind: EventCleared, Rows: cleared, Score: s.score})
	}

	s.spawn()
}

func (s *Session) spawn() {
	tmpl := s.templates[s.rng.IntN(len(s.templates))]
	c := s.colors[s.rng.IntN(len(s.colors))]

	next := piece.Spawn(tmpl, c, s.cfg.Cols)
	if !s.board.CanPlace(next.Cells()) {
		s.active = nil
		s.phase = GameOver
		s.emit(Event{Kind: EventGameOver, Score: s.score})
		return
	}

	s.active = next
	s.stats.spawn(tmpl.Kind)
}

func (s *Session) emit(e Event) {
	for _, fn := range s.listeners {
		fn(e)
	}
}

// Config returns the configuration the session was created with.
func (s *Session) Config() Config { return s.cfg }

// Cols returns the board width.
func (s *Session) Cols() int { return s.cfg.Cols }

// Rows returns the board height.
func (s *Session) Rows() int { return s.cfg.Rows }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Speed returns the current fall speed in rows per second.
func (s *Session) Speed() float64 { return s.speed }

// Timer returns the accumulated fall time not yet spent on a step.
func (s *Session) Timer() float64 { return s.timer }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Stats returns a copy of the game statistics.
func (s *Session) Stats() Stats { return s.stats.snapshot(s.templates) }

// Cell returns the locked cell at (x, y). It panics with
// board.OutOfRangeError off the board.
func (s *Session) Cell(x, y int) board.Cell { return s.board.At(x, y) }

// Filled iterates over every locked cell.
func (s *Session) Filled() iter.Seq2[shape.Point, color.RGBA] { return s.board.Filled() }

// PieceView is a read-only copy of the active piece.
type PieceView struct {
	Kind    shape.Kind
	Anchor  shape.Point
	Offsets shape.Offsets
	Color   color.RGBA
	Cells   []shape.Point
}

// Piece returns the active piece. ok is false once the game is over.
func (s *Session) Piece() (PieceView, bool) {
	if s.active == nil {
		return PieceView{}, false
	}
	return PieceView{
		Kind:    s.active.Kind(),
		Anchor:  s.active.Anchor(),
		Offsets: s.active.Offsets(),
		Color:   s.active.Color(),
		Cells:   s.active.Cells(),
	}, true
}

// Ghost returns where the active piece would land after a hard drop.
func (s *Session) Ghost() []shape.Point {
	if s.active == nil {
		return nil
	}
	return s.active.Ghost(s.board)
}
