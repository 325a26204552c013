package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			TileSize:   100,
			TileMargin: 10,
		},
		Spawn: SpawnConfig{
			FourProbability: 0.10,
		},
		Animation: AnimationConfig{
			DurationMS: 150,
		},
		Display: DisplayConfig{
			FPS: 60,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
