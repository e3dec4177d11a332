package piece_test

import (
	"image/color"
	"testing"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var blue = color.RGBA{B: 0xff, A: 0xff}

func template(t *testing.T, k shape.Kind) shape.Template {
	t.Helper()
	tmpl, ok := shape.Lookup(k)
	require.True(t, ok)
	return tmpl
}

func TestSpawn(t *testing.T) {
	p := piece.Spawn(template(t, shape.Square), blue, 10)

	assert.Equal(t, shape.Point{X: 5, Y: 0}, p.Anchor())
	assert.Equal(t, shape.Square, p.Kind())
	assert.Equal(t, blue, p.Color())
	assert.Equal(t, []shape.Point{{5, 0}, {6, 0}, {5, 1}, {6, 1}}, p.Cells())

	odd := piece.Spawn(template(t, shape.Line), blue, 9)
	assert.Equal(t, shape.Point{X: 4, Y: 0}, odd.Anchor())
}

func TestTryMove(t *testing.T) {
	b := board.New(10, 20)
	p := piece.Spawn(template(t, shape.Square), blue, 10)

	assert.True(t, p.TryMove(-1, 0, b))
	assert.Equal(t, shape.Point{X: 4, Y: 0}, p.Anchor())

	assert.True(t, p.TryMove(0, 1, b))
	assert.Equal(t, shape.Point{X: 4, Y: 1}, p.Anchor())

	for p.TryMove(1, 0, b) {
	}
	assert.Equal(t, shape.Point{X: 8, Y: 1}, p.Anchor(), "square stops at the right wall")

	for p.TryMove(0, 1, b) {
	}
	assert.Equal(t, shape.Point{X: 8, Y: 18}, p.Anchor(), "square stops on the floor")
}

func TestTryMoveBlockedByLockedCell(t *testing.T) {
	b := board.New(10, 20)
	b.Lock([]shape.Point{{X: 3, Y: 0}}, blue)

	p := piece.Spawn(template(t, shape.Square), blue, 10)
	require.True(t, p.TryMove(-1, 0, b))

	before := p.Cells()
	assert.False(t, p.TryMove(-1, 0, b))
	assert.Equal(t, before, p.Cells())
}

func TestTryRotate(t *testing.T) {
	b := board.New(10, 20)
	p := piece.Spawn(template(t, shape.Line), blue, 10)
	require.True(t, p.TryMove(0, 5, b))

	assert.True(t, p.TryRotate(b))
	assert.Equal(t, shape.Offsets{{0, 0}, {0, 1}, {0, 2}, {0, 3}}, p.Offsets())
	assert.Equal(t, []shape.Point{{5, 5}, {5, 6}, {5, 7}, {5, 8}}, p.Cells())

	tmpl := template(t, shape.Line)
	assert.Equal(t, shape.Offsets{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, tmpl.Offsets, "template is untouched")
}

func TestTryRotateRejectedAtWall(t *testing.T) {
	b := board.New(10, 20)
	p := piece.Spawn(template(t, shape.T), blue, 10)
	for p.TryMove(-1, 0, b) {
	}
	require.Equal(t, 0, p.Anchor().X)

	before := p.Offsets()
	assert.False(t, p.TryRotate(b), "(0,1) rotates to (-1,0), past the left wall")
	assert.Equal(t, before, p.Offsets())
	assert.Equal(t, shape.Point{X: 0, Y: 0}, p.Anchor())
}

func TestTryRotateRejectedByLockedCell(t *testing.T) {
	b := board.New(10, 20)
	p := piece.Spawn(template(t, shape.Line), blue, 10)
	require.True(t, p.TryMove(0, 2, b))
	b.Lock([]shape.Point{{X: 5, Y: 4}}, blue)

	before := p.Offsets()
	assert.False(t, p.TryRotate(b))
	assert.Equal(t, before, p.Offsets())
}

func TestRotateAboveTheBoard(t *testing.T) {
	b := board.New(10, 20)
	p := piece.Spawn(template(t, shape.Z), blue, 10)

	assert.True(t, p.TryRotate(b))
	assert.True(t, p.TryRotate(b), "offsets rotated above row 0 are allowed")
	assert.Equal(t, shape.Offsets{{0, -1}, {-1, -1}, {-1, 0}, {-2, 0}}, p.Offsets())
}

func TestGhost(t *testing.T) {
	b := board.New(10, 20)
	b.Lock([]shape.Point{{X: 5, Y: 12}}, blue)

	p := piece.Spawn(template(t, shape.Square), blue, 10)
	assert.Equal(t, 10, p.DropDistance(b))
	assert.Equal(t, []shape.Point{{5, 10}, {6, 10}, {5, 11}, {6, 11}}, p.Ghost(b))
	assert.Equal(t, shape.Point{X: 5, Y: 0}, p.Anchor(), "ghost does not move the piece")
}
