package config

import (
	_ "embed"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

// DefaultPacmanConfig returns the default configuration (normal difficulty).
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Gameplay: PacmanGameplay{
			Lives:             3,
			PelletPoints:      10,
			PowerPelletPoints: 50,
		},
		Speeds: PacmanSpeeds{
			Player:     1.2,
			Ghost:      1.0,
			Frightened: 0.6,
		},
		Timing: PacmanTiming{
			PowerUpMs: 6000,
			WarningMs: 2000,
			ScatterMs: 7000,
			ChaseMs:   20000,
			RespawnMs: 2000,
		},
		Difficulty: DifficultyNormal,
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "pacman", "pacman_endless":
		return defaultPacmanYAML
	default:
		return nil
	}
}
