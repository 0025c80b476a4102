package config

import (
	_ "embed"
)

//go:embed defaults/flappybird.yaml
var defaultYAML []byte

// Default returns the built-in game configuration, matching the embedded
// defaults/flappybird.yaml.
func Default() Config {
	return Config{
		World: World{
			Width:        1000,
			Height:       600,
			GroundHeight: 100,
		},
		Physics: Physics{
			Gravity:     0.5,
			JumpImpulse: -8,
			ScrollSpeed: 3,
		},
		Obstacles: Obstacles{
			Width:         50,
			GapHeight:     150,
			MinGapMargin:  100,
			SpawnInterval: 90,
		},
		Avatar: Avatar{
			Width:  30,
			Height: 30,
		},
	}
}
