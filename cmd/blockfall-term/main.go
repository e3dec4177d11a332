// Command blockfall-term plays the game in a terminal.
package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/frame"
	"github.com/plus3/blockfall/internal/config"
	"github.com/plus3/blockfall/internal/cue"
	"github.com/plus3/blockfall/internal/random"
	"github.com/plus3/blockfall/session"
)

func main() {
	cfg, err := config.LoadGame()
	if err != nil {
		config.Exitf("blockfall-term: %v", err)
	}

	seed := random.Seed(cfg.Seed)

	opts := []session.Option{session.WithSeed(seed)}
	if cfg.Sound {
		player := cue.NewPlayer()
		if err := player.Init(); err != nil {
			// Non-fatal, the game runs without sound.
			log.Printf("blockfall-term: audio disabled: %v", err)
		} else {
			defer player.Close()
			opts = append(opts, session.WithListener(player.Handle))
		}
	}

	s, err := session.New(cfg.Session(), opts...)
	if err != nil {
		config.Exitf("blockfall-term: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		config.Exitf("blockfall-term: %v", err)
	}
	if err := screen.Init(); err != nil {
		config.Exitf("blockfall-term: %v", err)
	}

	input := &InputSystem{}
	scheduler := frame.NewScheduler(s)
	scheduler.Register(input)
	scheduler.Register(&frame.GravitySystem{})

	run(screen, scheduler, input)
	screen.Fini()

	log.Printf("blockfall-term: seed %d, score %d", seed, s.Score())
}

func run(screen tcell.Screen, scheduler *frame.Scheduler, input *InputSystem) {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				a, ok := actionFor(ev)
				if !ok {
					continue
				}
				if a == ActionQuit {
					return
				}
				input.Push(a)
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			scheduler.Once(now.Sub(last).Seconds())
			last = now

			Render(screen, scheduler.Session().Snapshot())
			screen.Show()
		}
	}
}
