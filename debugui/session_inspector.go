package debugui

import (
	"fmt"
	"image/color"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/frame"
	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/shape"
)

// Field is one labelled value in the inspector.
type Field struct {
	Label string
	Value string
}

// Summary lists the session's scalar state in display order.
func Summary(s *session.Session) []Field {
	fields := []Field{
		{"Phase", s.Phase().String()},
		{"Score", fmt.Sprintf("%d", s.Score())},
		{"Speed", fmt.Sprintf("%.2f rows/s", s.Speed())},
		{"Timer", fmt.Sprintf("%.3f s", s.Timer())},
	}

	if p, ok := s.Piece(); ok {
		fields = append(fields,
			Field{"Piece", p.Kind.String()},
			Field{"Anchor", fmt.Sprintf("(%d, %d)", p.Anchor.X, p.Anchor.Y)},
		)
	} else {
		fields = append(fields, Field{"Piece", "none"})
	}

	st := s.Stats()
	fields = append(fields,
		Field{"Locks", fmt.Sprintf("%d", st.Locks)},
		Field{"Rows Cleared", fmt.Sprintf("%d", st.RowsCleared)},
	)
	return fields
}

// SessionInspector shows the session state, a board preview and per-piece
// statistics, with controls to pause gravity and restart.
type SessionInspector struct {
	Gravity   *frame.GravitySystem
	CellSize  float32
	showBoard bool
}

func NewSessionInspector(gravity *frame.GravitySystem) *SessionInspector {
	return &SessionInspector{
		Gravity:   gravity,
		CellSize:  6,
		showBoard: true,
	}
}

func (si *SessionInspector) Render(s *session.Session) {
	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SessionTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Field")
		imgui.TableSetupColumn("Value")
		imgui.TableHeadersRow()

		for _, f := range Summary(s) {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(f.Label)
			imgui.TableNextColumn()
			imgui.Text(f.Value)
		}
		imgui.EndTable()
	}

	if si.Gravity != nil {
		imgui.Checkbox("Pause gravity", &si.Gravity.Paused)
		imgui.SameLine()
	}
	if imgui.Button("Restart") {
		s.Reset()
	}

	imgui.Separator()
	imgui.Checkbox("Show board", &si.showBoard)
	if si.showBoard {
		si.renderBoard(s)
	}

	if imgui.TreeNodeStr("Pieces") {
		st := s.Stats()
		for _, tmpl := range shape.Templates() {
			imgui.BulletText(fmt.Sprintf("%s: %d", tmpl.Kind, st.Spawned[tmpl.Kind]))
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Clears") {
		st := s.Stats()
		for rows := 1; rows <= 4; rows++ {
			imgui.BulletText(fmt.Sprintf("%d row(s): %d", rows, st.Clears[rows]))
		}
		imgui.TreePop()
	}

	imgui.End()
}

func (si *SessionInspector) renderBoard(s *session.Session) {
	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()
	size := si.CellSize

	cell := func(p shape.Point, c color.RGBA, alpha float32) {
		if p.Y < 0 {
			return
		}
		min := imgui.NewVec2(origin.X+float32(p.X)*size, origin.Y+float32(p.Y)*size)
		max := imgui.NewVec2(min.X+size-1, min.Y+size-1)
		col := imgui.ColorU32Vec4(imgui.NewVec4(
			float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, alpha))
		drawList.AddRectFilled(min, max, col)
	}

	background := imgui.ColorU32Vec4(imgui.NewVec4(0.1, 0.1, 0.1, 1))
	drawList.AddRectFilled(origin,
		imgui.NewVec2(origin.X+float32(s.Cols())*size, origin.Y+float32(s.Rows())*size),
		background)

	for p, c := range s.Filled() {
		cell(p, c, 1)
	}
	if p, ok := s.Piece(); ok {
		for _, g := range s.Ghost() {
			cell(g, p.Color, 0.3)
		}
		for _, pt := range p.Cells {
			cell(pt, p.Color, 1)
		}
	}

	imgui.Dummy(imgui.NewVec2(float32(s.Cols())*size, float32(s.Rows())*size))
}
