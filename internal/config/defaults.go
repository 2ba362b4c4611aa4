package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
func Default() Settings {
	return Settings{
		Game: GameSettings{
			WindowWidth:    600,
			WindowHeight:   500,
			FPS:            60,
			FontName:       "",
			FontSize:       36,
			BackgroundPath: "bg.jpg",
			Title:          "Flappy Bird",
		},
		Bird: BirdSettings{
			Gravity:      0.4,
			JumpStrength: -6,
			ImagePath:    "bird.png",
			Width:        60,
			Height:       35,
			StartX:       100,
			StartY:       nil,
		},
		Wall: WallSettings{
			Speed:         2,
			Width:         100,
			Height:        500,
			ImagePath:     "wall.png",
			GapHeight:     200,
			MinHeight:     100,
			MaxHeight:     400,
			SpawnInterval: 1500,
		},
		Texts: TextSettings{
			ScorePrefix:        "Score: ",
			GameOver:           "GAME OVER",
			RestartInstruction: "Press SPACE to restart",
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
