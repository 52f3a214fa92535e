// Package config provides YAML-based game configuration loading and
// difficulty presets for the pacman platform.
package config

// PacmanConfig contains all tunables for the maze game.
type PacmanConfig struct {
	Gameplay   PacmanGameplay   `yaml:"gameplay"`
	Speeds     PacmanSpeeds     `yaml:"speeds"`
	Timing     PacmanTiming     `yaml:"timing"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
}

// PacmanGameplay defines lives and scoring.
type PacmanGameplay struct {
	Lives             int `yaml:"lives"`
	PelletPoints      int `yaml:"pellet_points"`
	PowerPelletPoints int `yaml:"power_pellet_points"`
}

// PacmanSpeeds defines movement speeds in pixels per reference frame.
type PacmanSpeeds struct {
	Player     float64 `yaml:"player"`
	Ghost      float64 `yaml:"ghost"`
	Frightened float64 `yaml:"frightened"`
}

// PacmanTiming defines the simulation's millisecond timers.
type PacmanTiming struct {
	PowerUpMs float64 `yaml:"power_up_ms"`
	WarningMs float64 `yaml:"warning_ms"`
	ScatterMs float64 `yaml:"scatter_ms"`
	ChaseMs   float64 `yaml:"chase_ms"`
	RespawnMs float64 `yaml:"respawn_ms"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
