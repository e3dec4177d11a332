package session

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by New for unusable geometry or tuning.
var ErrInvalidConfig = errors.New("invalid session config")

// Config holds the board geometry and difficulty tuning of a session.
type Config struct {
	Cols         int
	Rows         int
	BaseSpeed    float64 // rows per second at the start of a game
	SpeedStep    float64 // added to the speed after every clear
	PointsPerRow int
}

// DefaultConfig matches a 400x600 playfield of 20px blocks.
func DefaultConfig() Config {
	return Config{
		Cols:         20,
		Rows:         30,
		BaseSpeed:    5,
		SpeedStep:    0.5,
		PointsPerRow: 10,
	}
}

// Validate reports the first unusable field.
func (c Config) Validate() error {
	switch {
	case c.Cols <= 0 || c.Rows <= 0:
		return fmt.Errorf("%w: board %dx%d", ErrInvalidConfig, c.Cols, c.Rows)
	case c.BaseSpeed <= 0:
		return fmt.Errorf("%w: base speed %v", ErrInvalidConfig, c.BaseSpeed)
	case c.SpeedStep < 0:
		return fmt.Errorf("%w: speed step %v", ErrInvalidConfig, c.SpeedStep)
	case c.PointsPerRow < 0:
		return fmt.Errorf("%w: points per row %d", ErrInvalidConfig, c.PointsPerRow)
	}
	return nil
}
