// Package config loads front-end settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/plus3/blockfall/session"
)

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Game holds the settings shared by every front end. The defaults give a
// 400x600 window of 20px cells.
type Game struct {
	Cols      int     `env:"BLOCKFALL_COLS"       envDefault:"20"`
	Rows      int     `env:"BLOCKFALL_ROWS"       envDefault:"30"`
	Speed     float64 `env:"BLOCKFALL_SPEED"      envDefault:"5"`
	SpeedStep float64 `env:"BLOCKFALL_SPEED_STEP" envDefault:"0.5"`
	CellSize  int     `env:"BLOCKFALL_CELL_SIZE"  envDefault:"20"`
	Seed      uint64  `env:"BLOCKFALL_SEED"       envDefault:"0"`
	DebugUI   bool    `env:"BLOCKFALL_DEBUG_UI"   envDefault:"false"`
	Sound     bool    `env:"BLOCKFALL_SOUND"      envDefault:"true"`
}

// LoadGame parses Game from the environment.
func LoadGame() (Game, error) {
	var g Game
	if err := ParseEnv(&g); err != nil {
		return Game{}, err
	}
	return g, nil
}

// Session returns the session configuration described by g.
func (g Game) Session() session.Config {
	cfg := session.DefaultConfig()
	cfg.Cols = g.Cols
	cfg.Rows = g.Rows
	cfg.BaseSpeed = g.Speed
	cfg.SpeedStep = g.SpeedStep
	return cfg
}
