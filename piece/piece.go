// Package piece models the falling piece: a rotated copy of a catalog
// template, a color and an anchor on the board.
package piece

import (
	"image/color"

	"github.com/plus3/blockfall/shape"
)

// Placer validates a set of absolute cells. *board.Board satisfies it.
type Placer interface {
	CanPlace(cells []shape.Point) bool
}

// Piece is the active piece. Its offsets are its own copy; rotating never
// touches the catalog template.
type Piece struct {
	kind    shape.Kind
	offsets shape.Offsets
	color   color.RGBA
	anchor  shape.Point
}

// Spawn places tmpl at the horizontal center of a board cols wide, on row 0.
// Validity is left to the caller.
func Spawn(tmpl shape.Template, c color.RGBA, cols int) *Piece {
	return &Piece{
		kind:    tmpl.Kind,
		offsets: tmpl.Offsets,
		color:   c,
		anchor:  shape.Point{X: cols / 2, Y: 0},
	}
}

// Kind returns the catalog template the piece was spawned from.
func (p *Piece) Kind() shape.Kind { return p.kind }

// Color returns the piece color.
func (p *Piece) Color() color.RGBA { return p.color }

// Anchor returns the anchor position in board coordinates.
func (p *Piece) Anchor() shape.Point { return p.anchor }

// Offsets returns the current orientation.
func (p *Piece) Offsets() shape.Offsets { return p.offsets }

// Cells returns the absolute cells the piece covers.
func (p *Piece) Cells() []shape.Point {
	return p.offsets.Translate(p.anchor)
}

// TryMove shifts the anchor by (dx, dy) if the board accepts the result.
func (p *Piece) TryMove(dx, dy int, board Placer) bool {
	anchor := p.anchor.Add(shape.Point{X: dx, Y: dy})
	if !board.CanPlace(p.offsets.Translate(anchor)) {
		return false
	}
	p.anchor = anchor
	return true
}

// TryRotate turns the piece a quarter turn around its anchor if the board
// accepts the result. There are no wall kicks.
func (p *Piece) TryRotate(board Placer) bool {
	rotated := p.offsets.Rotate()
	if !board.CanPlace(rotated.Translate(p.anchor)) {
		return false
	}
	p.offsets = rotated
	return true
}

// DropDistance returns how many rows the piece can fall before landing.
func (p *Piece) DropDistance(board Placer) int {
	n := 0
	for board.CanPlace(p.offsets.Translate(p.anchor.Add(shape.Point{Y: n + 1}))) {
		n++
	}
	return n
}

// Ghost returns the cells the piece would cover after dropping straight down.
func (p *Piece) Ghost(board Placer) []shape.Point {
	return p.offsets.Translate(p.anchor.Add(shape.Point{Y: p.DropDistance(board)}))
}
