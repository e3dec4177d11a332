// Package board implements the grid of locked cells: occupancy queries,
// placement checks, locking and row clearing.
package board

import (
	"fmt"
	"image/color"
	"iter"

	"github.com/plus3/blockfall/shape"
)

// Cell is one grid position. The zero value is Empty.
type Cell struct {
	Filled bool
	Color  color.RGBA
}

// Empty is the unoccupied cell.
var Empty = Cell{}

// FilledWith returns a Filled cell of the given color.
func FilledWith(c color.RGBA) Cell {
	return Cell{Filled: true, Color: c}
}

// OutOfRangeError reports a query for a coordinate outside the stored grid.
// It is raised as a panic; normal game logic never produces one.
type OutOfRangeError struct {
	X, Y       int
	Cols, Rows int
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("board: cell (%d,%d) out of range for %dx%d board", e.X, e.Y, e.Cols, e.Rows)
}

// Board is a fixed cols x rows grid. Row 0 is the top.
type Board struct {
	cols, rows int
	cells      [][]Cell
}

// New creates an empty board. It panics on non-positive dimensions.
func New(cols, rows int) *Board {
	if cols <= 0 || rows <= 0 {
		panic(fmt.Sprintf("board: invalid dimensions %dx%d", cols, rows))
	}

	b := &Board{cols: cols, rows: rows}
	b.Reset()
	return b
}

// Cols returns the board width.
func (b *Board) Cols() int { return b.cols }

// Rows returns the board height.
func (b *Board) Rows() int { return b.rows }

// Reset empties every cell.
func (b *Board) Reset() {
	b.cells = make([][]Cell, b.rows)
	for y := range b.cells {
		b.cells[y] = emptyRow(b.cols)
	}
}

func emptyRow(cols int) []Cell {
	return make([]Cell, cols)
}

// At returns the cell stored at (x, y).
// It panics with OutOfRangeError if the coordinate is not on the board.
func (b *Board) At(x, y int) Cell {
	if x < 0 || x >= b.cols || y < 0 || y >= b.rows {
		panic(OutOfRangeError{X: x, Y: y, Cols: b.cols, Rows: b.rows})
	}
	return b.cells[y][x]
}

// IsOccupied reports whether (x, y) blocks a piece. Side walls and the floor
// are occupied; everything above the top edge is free.
func (b *Board) IsOccupied(x, y int) bool {
	if x < 0 || x >= b.cols || y >= b.rows {
		return true
	}
	if y < 0 {
		return false
	}
	return b.cells[y][x].Filled
}

// CanPlace reports whether every cell is free. It is the only collision
// check used for movement, rotation and spawning.
func (b *Board) CanPlace(cells []shape.Point) bool {
	for _, p := range cells {
		if b.IsOccupied(p.X, p.Y) {
			return false
		}
	}
	return true
}

// Lock fills every visible cell with c. Cells above the top edge are
// dropped. The caller must have checked CanPlace.
func (b *Board) Lock(cells []shape.Point, c color.RGBA) {
	for _, p := range cells {
		if p.Y < 0 {
			continue
		}
		b.cells[p.Y][p.X] = FilledWith(c)
	}
}

// ClearFullRows removes every completely filled row and returns how many
// were removed. Survivors keep their order and sink to the bottom; the same
// number of empty rows is added at the top.
func (b *Board) ClearFullRows() int {
	kept := make([][]Cell, 0, b.rows)
	for _, row := range b.cells {
		if !rowFull(row) {
			kept = append(kept, row)
		}
	}

	cleared := b.rows - len(kept)
	if cleared == 0 {
		return 0
	}

	cells := make([][]Cell, 0, b.rows)
	for range cleared {
		cells = append(cells, emptyRow(b.cols))
	}
	b.cells = append(cells, kept...)
	return cleared
}

func rowFull(row []Cell) bool {
	for _, c := range row {
		if !c.Filled {
			return false
		}
	}
	return true
}

// RowFull reports whether row y is completely filled.
func (b *Board) RowFull(y int) bool {
	if y < 0 || y >= b.rows {
		panic(OutOfRangeError{X: 0, Y: y, Cols: b.cols, Rows: b.rows})
	}
	return rowFull(b.cells[y])
}

// Filled iterates over every filled cell, row by row from the top.
func (b *Board) Filled() iter.Seq2[shape.Point, color.RGBA] {
	return func(yield func(shape.Point, color.RGBA) bool) {
		for y, row := range b.cells {
			for x, c := range row {
				if !c.Filled {
					continue
				}
				if !yield(shape.Point{X: x, Y: y}, c.Color) {
					return
				}
			}
		}
	}
}

// FilledCount returns the number of filled cells.
func (b *Board) FilledCount() int {
	n := 0
	for range b.Filled() {
		n++
	}
	return n
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{cols: b.cols, rows: b.rows, cells: make([][]Cell, b.rows)}
	for y, row := range b.cells {
		c.cells[y] = append([]Cell(nil), row...)
	}
	return c
}
