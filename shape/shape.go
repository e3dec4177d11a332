// Package shape holds the fixed catalog of falling pieces and the palette
// they are drawn with. Everything here is immutable; callers get copies.
package shape

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Point is an integer grid coordinate. It is used both for offsets relative
// to a piece anchor and for absolute board positions.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Rotate turns the offset a quarter turn around the origin: (x, y) -> (-y, x).
func (p Point) Rotate() Point {
	return Point{X: -p.Y, Y: p.X}
}

// Kind identifies a catalog template.
type Kind int

const (
	Square Kind = iota
	Line
	T
	Z
	S
)

func (k Kind) String() string {
	switch k {
	case Square:
		return "Square"
	case Line:
		return "Line"
	case T:
		return "T"
	case Z:
		return "Z"
	case S:
		return "S"
	}
	return "Unknown"
}

// Offsets are the four blocks of a piece relative to its anchor.
type Offsets [4]Point

// Rotate returns a copy with every offset turned a quarter turn.
func (o Offsets) Rotate() Offsets {
	var rotated Offsets
	for i, p := range o {
		rotated[i] = p.Rotate()
	}
	return rotated
}

// Translate returns the absolute cells of o placed at anchor.
func (o Offsets) Translate(anchor Point) []Point {
	cells := make([]Point, len(o))
	for i, p := range o {
		cells[i] = p.Add(anchor)
	}
	return cells
}

// Template is an immutable catalog entry.
type Template struct {
	Kind    Kind
	Offsets Offsets
}

var templates = [...]Template{
	{Kind: Square, Offsets: Offsets{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
	{Kind: Line, Offsets: Offsets{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
	{Kind: T, Offsets: Offsets{{0, 1}, {1, 1}, {2, 1}, {1, 0}}},
	{Kind: Z, Offsets: Offsets{{0, 1}, {1, 1}, {1, 0}, {2, 0}}},
	{Kind: S, Offsets: Offsets{{0, 0}, {1, 0}, {1, 1}, {2, 1}}},
}

var colors = [...]color.RGBA{
	colornames.Red,
	colornames.Blue,
	colornames.Lime,
}

// Templates returns the catalog in its fixed order.
func Templates() []Template {
	out := make([]Template, len(templates))
	copy(out, templates[:])
	return out
}

// Colors returns the piece palette in its fixed order.
func Colors() []color.RGBA {
	out := make([]color.RGBA, len(colors))
	copy(out, colors[:])
	return out
}

// Lookup returns the template for k.
func Lookup(k Kind) (Template, bool) {
	if k < 0 || int(k) >= len(templates) {
		return Template{}, false
	}
	return templates[k], true
}
