// Package config provides YAML-based game configuration loading and
// validation for brickout.
package config

import (
	"errors"
	"fmt"
)

// Config contains all tunable parameters for the game. All geometry is in
// playfield units (the fixed internal coordinate space), not screen cells.
type Config struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Paddle    PaddleConfig    `yaml:"paddle"`
	Ball      BallConfig      `yaml:"ball"`
	Bricks    BrickConfig     `yaml:"bricks"`
	Gameplay  GameplayConfig  `yaml:"gameplay"`
}

// PlayfieldConfig defines the internal simulation coordinate space.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines paddle geometry and control feel.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	MarginBottom float64 `yaml:"margin_bottom"` // Distance from paddle top to playfield bottom
	Smoothing    float64 `yaml:"smoothing"`     // Exponential easing rate toward the target
	KeyStep      float64 `yaml:"key_step"`      // Target nudge per key press
}

// BallConfig defines ball geometry and speeds.
type BallConfig struct {
	Radius      float64 `yaml:"radius"`
	ServeSpeed  float64 `yaml:"serve_speed"`  // Vertical speed at serve (applied upward)
	ServeDrift  float64 `yaml:"serve_drift"`  // Horizontal speed magnitude at serve
	BounceSpeed float64 `yaml:"bounce_speed"` // Scale from paddle hit offset to horizontal speed
}

// BrickConfig defines the brick grid layout.
type BrickConfig struct {
	Rows      int     `yaml:"rows"`
	Cols      int     `yaml:"cols"`
	Height    float64 `yaml:"height"`
	Gap       float64 `yaml:"gap"`        // Spacing between adjacent bricks
	MarginX   float64 `yaml:"margin_x"`   // Side margins of the grid
	TopOffset float64 `yaml:"top_offset"` // Distance from playfield top to first row
	Points    int     `yaml:"points"`     // Score per destroyed brick
}

// GameplayConfig defines round rules and loop bounds.
type GameplayConfig struct {
	Lives int     `yaml:"lives"`
	MaxDT float64 `yaml:"max_dt"` // Upper bound applied to frame deltas by the caller
}

// Validate checks the configuration for values that would produce undefined
// geometry. Called once at game construction so bad configs fail fast.
func (c Config) Validate() error {
	var errs []error

	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		errs = append(errs, fmt.Errorf("playfield dimensions must be positive, got %gx%g",
			c.Playfield.Width, c.Playfield.Height))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		errs = append(errs, fmt.Errorf("paddle dimensions must be positive, got %gx%g",
			c.Paddle.Width, c.Paddle.Height))
	}
	if c.Paddle.Width > c.Playfield.Width {
		errs = append(errs, fmt.Errorf("paddle width %g exceeds playfield width %g",
			c.Paddle.Width, c.Playfield.Width))
	}
	if c.Paddle.Smoothing <= 0 {
		errs = append(errs, fmt.Errorf("paddle smoothing must be positive, got %g", c.Paddle.Smoothing))
	}
	if c.Ball.Radius <= 0 {
		errs = append(errs, fmt.Errorf("ball radius must be positive, got %g", c.Ball.Radius))
	}
	if c.Ball.ServeSpeed <= 0 {
		errs = append(errs, fmt.Errorf("serve speed must be positive, got %g", c.Ball.ServeSpeed))
	}
	if c.Bricks.Rows <= 0 || c.Bricks.Cols <= 0 {
		errs = append(errs, fmt.Errorf("brick grid must be non-empty, got %dx%d",
			c.Bricks.Rows, c.Bricks.Cols))
	}
	if c.Bricks.Height <= 0 {
		errs = append(errs, fmt.Errorf("brick height must be positive, got %g", c.Bricks.Height))
	}
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, fmt.Errorf("lives must be positive, got %d", c.Gameplay.Lives))
	}
	if c.Gameplay.MaxDT <= 0 {
		errs = append(errs, fmt.Errorf("max_dt must be positive, got %g", c.Gameplay.MaxDT))
	}

	// The grid must leave room for at least 1-unit-wide bricks.
	if c.Bricks.Cols > 0 {
		usable := c.Playfield.Width - 2*c.Bricks.MarginX - float64(c.Bricks.Cols-1)*c.Bricks.Gap
		if usable < float64(c.Bricks.Cols) {
			errs = append(errs, fmt.Errorf("brick grid does not fit: %g usable units for %d columns",
				usable, c.Bricks.Cols))
		}
	}

	return errors.Join(errs...)
}

// BrickWidth returns the width of a single brick, derived from the playfield
// width minus margins, divided evenly across the columns with fixed gaps.
func (c Config) BrickWidth() float64 {
	usable := c.Playfield.Width - 2*c.Bricks.MarginX - float64(c.Bricks.Cols-1)*c.Bricks.Gap
	return usable / float64(c.Bricks.Cols)
}
