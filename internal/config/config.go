// Package config provides YAML-based game configuration loading with
// embedded defaults. Every setting has a hardcoded default so the game is
// fully playable without any configuration file.
package config

import "time"

// Settings contains all configuration for the game.
type Settings struct {
	Game  GameSettings `yaml:"game_settings"`
	Bird  BirdSettings `yaml:"bird_settings"`
	Wall  WallSettings `yaml:"wall_settings"`
	Texts TextSettings `yaml:"texts"`
}

// GameSettings defines window, pacing and font parameters.
type GameSettings struct {
	WindowWidth    int     `yaml:"window_width"`
	WindowHeight   int     `yaml:"window_height"`
	FPS            int     `yaml:"fps"`
	FontName       string  `yaml:"font_name"` // Empty or null selects the built-in face
	FontSize       float64 `yaml:"font_size"`
	BackgroundPath string  `yaml:"background_path"`
	Title          string  `yaml:"title"`
}

// BirdSettings defines avatar physics and geometry.
type BirdSettings struct {
	Gravity      float64  `yaml:"gravity"`
	JumpStrength float64  `yaml:"jump_strength"` // Negative is upward
	ImagePath    string   `yaml:"image_path"`
	Width        float64  `yaml:"width"`
	Height       float64  `yaml:"height"`
	StartX       float64  `yaml:"start_x"`
	StartY       *float64 `yaml:"start_y"` // nil means window_height / 2
}

// WallSettings defines obstacle geometry, speed and spawn pacing.
type WallSettings struct {
	Speed         float64 `yaml:"speed"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	ImagePath     string  `yaml:"image_path"`
	GapHeight     float64 `yaml:"gap_height"`
	MinHeight     int     `yaml:"min_height"`
	MaxHeight     int     `yaml:"max_height"`
	SpawnInterval int     `yaml:"spawn_interval"` // Milliseconds
}

// TextSettings defines the overlay strings.
type TextSettings struct {
	ScorePrefix        string `yaml:"score_prefix"`
	GameOver           string `yaml:"game_over"`
	RestartInstruction string `yaml:"restart_instruction"`
}

// StartY returns the avatar's starting y, defaulting to the vertical center.
func (s Settings) StartY() float64 {
	if s.Bird.StartY != nil {
		return *s.Bird.StartY
	}
	return float64(s.Game.WindowHeight / 2)
}

// SpawnEvery returns the obstacle spawn interval as a duration.
func (w WallSettings) SpawnEvery() time.Duration {
	return time.Duration(w.SpawnInterval) * time.Millisecond
}

// sanitize restores defaults for values the game cannot run with.
func (s *Settings) sanitize() {
	def := Default()

	if s.Game.WindowWidth <= 0 {
		s.Game.WindowWidth = def.Game.WindowWidth
	}
	if s.Game.WindowHeight <= 0 {
		s.Game.WindowHeight = def.Game.WindowHeight
	}
	if s.Game.FPS <= 0 {
		s.Game.FPS = def.Game.FPS
	}
	if s.Game.FontSize <= 0 {
		s.Game.FontSize = def.Game.FontSize
	}
	if s.Bird.Width <= 0 {
		s.Bird.Width = def.Bird.Width
	}
	if s.Bird.Height <= 0 {
		s.Bird.Height = def.Bird.Height
	}
	if s.Wall.Width <= 0 {
		s.Wall.Width = def.Wall.Width
	}
	if s.Wall.Height <= 0 {
		s.Wall.Height = def.Wall.Height
	}
	if s.Wall.SpawnInterval <= 0 {
		s.Wall.SpawnInterval = def.Wall.SpawnInterval
	}
	if s.Wall.MaxHeight < s.Wall.MinHeight {
		s.Wall.MaxHeight = s.Wall.MinHeight
	}
}
