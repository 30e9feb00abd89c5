package config

import (
	_ "embed"
)

//go:embed defaults/brickout.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It mirrors the embedded YAML
// and serves as the last-resort fallback if the embed cannot be parsed.
func Default() Config {
	return Config{
		Playfield: PlayfieldConfig{
			Width:  360,
			Height: 640,
		},
		Paddle: PaddleConfig{
			Width:        60,
			Height:       10,
			MarginBottom: 30,
			Smoothing:    20,
			KeyStep:      24,
		},
		Ball: BallConfig{
			Radius:      6,
			ServeSpeed:  260,
			ServeDrift:  120,
			BounceSpeed: 420,
		},
		Bricks: BrickConfig{
			Rows:      5,
			Cols:      8,
			Height:    18,
			Gap:       6,
			MarginX:   10,
			TopOffset: 60,
			Points:    10,
		},
		Gameplay: GameplayConfig{
			Lives: 3,
			MaxDT: 1.0 / 30.0,
		},
	}
}

// DefaultYAML returns the embedded default configuration file, for the
// `config init` style use cases and tests.
func DefaultYAML() []byte {
	return defaultYAML
}
