package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/frame"
)

// FrameHistory is a ring of recent frame times in milliseconds.
type FrameHistory struct {
	samples []float32
	index   int
}

func NewFrameHistory(frames int) *FrameHistory {
	return &FrameHistory{samples: make([]float32, frames)}
}

// Record stores a frame of deltaTime seconds, overwriting the oldest sample.
func (h *FrameHistory) Record(deltaTime float32) {
	h.samples[h.index] = deltaTime * 1000.0
	h.index = (h.index + 1) % len(h.samples)
}

// Average returns the mean frame time in milliseconds over the whole ring.
func (h *FrameHistory) Average() float32 {
	var sum float32
	for _, ft := range h.samples {
		sum += ft
	}
	return sum / float32(len(h.samples))
}

// FPS converts the average frame time to frames per second. It is zero
// until a frame has been recorded.
func (h *FrameHistory) FPS() float32 {
	avg := h.Average()
	if avg == 0 {
		return 0
	}
	return 1000.0 / avg
}

// PerformanceStats draws frame timing and per-system scheduler timings.
type PerformanceStats struct {
	history *FrameHistory
}

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{history: NewFrameHistory(historyFrames)}
}

func (ps *PerformanceStats) Render(scheduler *frame.Scheduler, deltaTime float32) {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ps.history.Record(deltaTime)
	stats := scheduler.Stats()

	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("Systems: %d", stats.SystemCount))
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", ps.history.Average(), ps.history.FPS()))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.history.samples[0], int32(len(ps.history.samples)))

	if imgui.TreeNodeStr("System Timings") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(sys.LastDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
