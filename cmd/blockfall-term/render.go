package main

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/shape"
)

// Each board cell is two terminal columns wide. The board is drawn inside a
// one-character border starting at the top-left corner.
const cellWidth = 2

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	emptyStyle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(60, 60, 60))
	ghostStyle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(110, 110, 110))
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	alertStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

func cellStyle(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// screenPos converts a board point to the terminal column and row of its
// left half.
func screenPos(p shape.Point) (int, int) {
	return 1 + p.X*cellWidth, 1 + p.Y
}

func drawCell(screen tcell.Screen, p shape.Point, left, right rune, style tcell.Style) {
	if p.Y < 0 {
		return
	}
	x, y := screenPos(p)
	screen.SetContent(x, y, left, nil, style)
	screen.SetContent(x+1, y, right, nil, style)
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

// Render draws snap onto screen. It does not call Show.
func Render(screen tcell.Screen, snap session.Snapshot) {
	screen.Clear()

	right := 1 + snap.Cols*cellWidth
	bottom := 1 + snap.Rows
	for y := 0; y <= bottom; y++ {
		screen.SetContent(0, y, '|', nil, borderStyle)
		screen.SetContent(right, y, '|', nil, borderStyle)
	}
	for x := 1; x < right; x++ {
		screen.SetContent(x, 0, '-', nil, borderStyle)
		screen.SetContent(x, bottom, '-', nil, borderStyle)
	}

	for y := range snap.Rows {
		for x := range snap.Cols {
			drawCell(screen, shape.Point{X: x, Y: y}, ' ', '.', emptyStyle)
		}
	}
	for _, c := range snap.Filled {
		drawCell(screen, c.Point, '[', ']', cellStyle(c.Color))
	}
	for _, p := range snap.Ghost {
		drawCell(screen, p, ':', ':', ghostStyle)
	}
	for _, p := range snap.Active {
		drawCell(screen, p, '[', ']', cellStyle(snap.ActiveColor))
	}

	info := right + 2
	drawText(screen, info, 1, fmt.Sprintf("Score %d", snap.Score), textStyle)
	drawText(screen, info, 2, fmt.Sprintf("Speed %.1f", snap.Speed), textStyle)
	if snap.Phase == session.GameOver {
		drawText(screen, info, 4, "Game Over!", alertStyle)
		drawText(screen, info, 5, "r to restart, q to quit", textStyle)
	}
}
