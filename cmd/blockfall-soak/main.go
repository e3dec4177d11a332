// Command blockfall-soak plays many sessions headlessly with random input
// and prints a Markdown report of the games and frame timings.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/internal/config"
	"github.com/plus3/blockfall/internal/random"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	sessions := flag.Int("sessions", 64, "The number of sessions played side by side.")
	seed := flag.Uint64("seed", 0, "Root seed for every session; 0 picks one at random.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg, err := config.LoadGame()
	if err != nil {
		config.Exitf("blockfall-soak: %v", err)
	}
	if *sessions < 1 {
		config.Exitf("blockfall-soak: -sessions must be positive, got %d", *sessions)
	}

	opts := Options{
		Config:   cfg.Session(),
		Sessions: *sessions,
		Seed:     random.Seed(*seed),
	}

	report := &Report{
		Duration:       *duration,
		Sessions:       opts.Sessions,
		Seed:           opts.Seed,
		Cols:           opts.Config.Cols,
		Rows:           opts.Config.Rows,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running %d sessions for %s (seed %d)...\n", opts.Sessions, *duration, opts.Seed)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	if err := Soak(ctx, opts, report); err != nil {
		config.Exitf("blockfall-soak: %v", err)
	}
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Soak finished.")

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
