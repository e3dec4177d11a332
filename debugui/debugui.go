// Package debugui provides Dear ImGui debug windows for a running session.
// Windows are rendered through an ImguiSystem registered on the frame
// scheduler, so they draw after the frame's commands have been applied.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/frame"
)

// Window is a Dear ImGui render function drawn once per frame.
type Window struct {
	Render func()
}

// InputState tracks Dear ImGui's input capture state.
// Use this to determine if ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers the render function of every window and records the
// current input capture state.
type ImguiSystem struct {
	Windows []Window
	Input   InputState
}

// Add appends a window.
func (i *ImguiSystem) Add(render func()) {
	i.Windows = append(i.Windows, Window{Render: render})
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(u *frame.Update) {
	i.Input.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	i.Input.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for _, w := range i.Windows {
		u.Commands.Defer(w.Render)
	}
}
