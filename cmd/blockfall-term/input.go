package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/frame"
	"github.com/plus3/blockfall/session"
)

// Action is a player command read from the terminal.
type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionDown
	ActionRotate
	ActionDrop
	ActionRestart
	ActionQuit
)

// actionFor maps a key event to an action. Arrows and hjkl move, up or k
// rotates, space drops, r restarts, Esc, q or Ctrl-C quits.
func actionFor(ev *tcell.EventKey) (Action, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return ActionLeft, true
	case tcell.KeyRight:
		return ActionRight, true
	case tcell.KeyDown:
		return ActionDown, true
	case tcell.KeyUp:
		return ActionRotate, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'h':
			return ActionLeft, true
		case 'l':
			return ActionRight, true
		case 'j':
			return ActionDown, true
		case 'k':
			return ActionRotate, true
		case ' ':
			return ActionDrop, true
		case 'r', 'R':
			return ActionRestart, true
		case 'q', 'Q':
			return ActionQuit, true
		}
	}
	return 0, false
}

// InputSystem queues the actions read since the last frame. Push is called
// from the event loop on the same goroutine that runs the scheduler.
type InputSystem struct {
	pending []Action
}

func (s *InputSystem) Push(a Action) {
	s.pending = append(s.pending, a)
}

func (s *InputSystem) Execute(u *frame.Update) {
	for _, a := range s.pending {
		switch a {
		case ActionLeft:
			u.Commands.Move(session.Left)
		case ActionRight:
			u.Commands.Move(session.Right)
		case ActionDown:
			u.Commands.Move(session.Down)
		case ActionRotate:
			u.Commands.Rotate()
		case ActionDrop:
			u.Commands.HardDrop()
		case ActionRestart:
			u.Commands.Reset()
		}
	}
	s.pending = s.pending[:0]
}
