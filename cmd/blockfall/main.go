// Command blockfall plays the game in an Ebiten window.
//
// Controls: arrows move, up rotates, space drops, R restarts, Esc or Q quits.
// Set BLOCKFALL_DEBUG_UI=true for the Dear ImGui inspector.
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/frame"
	"github.com/plus3/blockfall/internal/config"
	"github.com/plus3/blockfall/internal/cue"
	"github.com/plus3/blockfall/internal/random"
	"github.com/plus3/blockfall/session"
)

const debugPanelWidth = 420

func main() {
	cfg, err := config.LoadGame()
	if err != nil {
		config.Exitf("blockfall: %v", err)
	}

	seed := random.Seed(cfg.Seed)
	log.Printf("blockfall: seed %d", seed)

	opts := []session.Option{session.WithSeed(seed)}
	if cfg.Sound {
		player := cue.NewPlayer()
		if err := player.Init(); err != nil {
			log.Printf("blockfall: audio disabled: %v", err)
		} else {
			defer player.Close()
			opts = append(opts, session.WithListener(player.Handle))
		}
	}

	s, err := session.New(cfg.Session(), opts...)
	if err != nil {
		config.Exitf("blockfall: %v", err)
	}

	width := s.Cols() * cfg.CellSize
	height := s.Rows() * cfg.CellSize

	game := &Game{
		Session:  s,
		CellSize: cfg.CellSize,
		Keyboard: &KeyboardSystem{},
		Gravity:  &frame.GravitySystem{},
	}

	game.Scheduler = frame.NewScheduler(s)
	game.Scheduler.Register(game.Keyboard)
	game.Scheduler.Register(game.Gravity)

	if cfg.DebugUI {
		width += debugPanelWidth
		game.Imgui = debugui_ebiten.NewImguiBackend("Blockfall", width, height)
		setupDebugUI(game)
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle("Blockfall")
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func setupDebugUI(g *Game) {
	inspector := debugui.NewSessionInspector(g.Gravity)
	perf := debugui.NewPerformanceStats(120)
	timer := debugui.NewFrameTimer()

	imguiSystem := &debugui.ImguiSystem{}
	imguiSystem.Add(func() { inspector.Render(g.Session) })
	imguiSystem.Add(func() { perf.Render(g.Scheduler, timer.GetDeltaTime()) })

	g.Keyboard.Capture = &imguiSystem.Input
	g.Scheduler.Register(imguiSystem)
}
