package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/frame"
	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/shape"
)

var (
	backgroundColor = color.RGBA{0, 0, 0, 255}
	gridColor       = color.RGBA{24, 24, 24, 255}
)

// Game implements ebiten.Game on top of the frame scheduler.
type Game struct {
	Session   *session.Session
	Scheduler *frame.Scheduler
	Keyboard  *KeyboardSystem
	Gravity   *frame.GravitySystem
	Imgui     *debugui_ebiten.ImguiBackend
	CellSize  int
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.Imgui != nil {
		g.Imgui.BeginFrame()
	}

	g.Scheduler.Once(1.0 / float64(ebiten.TPS()))

	if g.Imgui != nil {
		g.Imgui.EndFrame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	snap := g.Session.Snapshot()
	size := float32(g.CellSize)

	vector.DrawFilledRect(screen, 0, 0, float32(snap.Cols)*size, float32(snap.Rows)*size, gridColor, false)

	for _, c := range snap.Filled {
		g.drawCell(screen, c.Point, c.Color)
	}

	if snap.Phase == session.Playing {
		ghost := snap.ActiveColor
		ghost.A = 70
		for _, p := range snap.Ghost {
			g.drawCell(screen, p, premultiply(ghost))
		}
		for _, p := range snap.Active {
			g.drawCell(screen, p, snap.ActiveColor)
		}
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d  Speed: %.1f", snap.Score, snap.Speed), 4, 4)

	if snap.Phase == session.GameOver {
		cx := snap.Cols * g.CellSize / 2
		cy := snap.Rows * g.CellSize / 2
		ebitenutil.DebugPrintAt(screen, "Game Over!", cx-30, cy-10)
		ebitenutil.DebugPrintAt(screen, "Press R to restart", cx-54, cy+10)
	}

	if g.Imgui != nil {
		g.Imgui.Draw(screen)
	}
}

func (g *Game) drawCell(screen *ebiten.Image, p shape.Point, c color.RGBA) {
	if p.Y < 0 {
		return
	}
	size := float32(g.CellSize)
	vector.DrawFilledRect(screen, float32(p.X)*size, float32(p.Y)*size, size-1, size-1, c, false)
}

// premultiply scales the color channels by alpha, as ebiten expects.
func premultiply(c color.RGBA) color.RGBA {
	a := uint32(c.A)
	return color.RGBA{
		R: uint8(uint32(c.R) * a / 255),
		G: uint8(uint32(c.G) * a / 255),
		B: uint8(uint32(c.B) * a / 255),
		A: c.A,
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Imgui != nil {
		g.Imgui.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// KeyboardSystem turns key presses into session commands. Left and right
// repeat while held; down moves one row per press and repeats faster.
type KeyboardSystem struct {
	// Capture is set when the debug UI is active; keys go to ImGui while it
	// wants the keyboard.
	Capture *debugui.InputState
}

const (
	repeatDelay     = 10 // ticks before a held key repeats
	repeatRate      = 3
	downRepeatDelay = 4
	downRepeatRate  = 2
)

func repeating(key ebiten.Key, delay, rate int) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d > delay && (d-delay)%rate == 0
}

func (k *KeyboardSystem) Execute(u *frame.Update) {
	if k.Capture != nil && k.Capture.WantCaptureKeyboard {
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		u.Commands.Reset()
		return
	}

	if repeating(ebiten.KeyLeft, repeatDelay, repeatRate) {
		u.Commands.Move(session.Left)
	}
	if repeating(ebiten.KeyRight, repeatDelay, repeatRate) {
		u.Commands.Move(session.Right)
	}
	if repeating(ebiten.KeyDown, downRepeatDelay, downRepeatRate) {
		u.Commands.Move(session.Down)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		u.Commands.Rotate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		u.Commands.HardDrop()
	}
}
