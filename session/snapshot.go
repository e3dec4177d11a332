package session

import (
	"image/color"

	"github.com/plus3/blockfall/shape"
)

// FilledCell is a locked cell in a Snapshot.
type FilledCell struct {
	Point shape.Point
	Color color.RGBA
}

// Snapshot is everything a renderer needs, copied out of the session so it
// can be drawn without touching live state.
type Snapshot struct {
	Cols, Rows  int
	Filled      []FilledCell
	Active      []shape.Point
	ActiveColor color.RGBA
	Ghost       []shape.Point
	Score       int
	Speed       float64
	Phase       Phase
}

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Cols:  s.cfg.Cols,
		Rows:  s.cfg.Rows,
		Score: s.score,
		Speed: s.speed,
		Phase: s.phase,
	}
	for p, c := range s.board.Filled() {
		snap.Filled = append(snap.Filled, FilledCell{Point: p, Color: c})
	}
	if s.active != nil {
		snap.Active = s.active.Cells()
		snap.ActiveColor = s.active.Color()
		snap.Ghost = s.active.Ghost(s.board)
	}
	return snap
}
