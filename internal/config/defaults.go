package config

import (
	_ "embed"
)

//go:embed defaults/patrol.yaml
var defaultPatrolYAML []byte

// DefaultPatrolConfig returns the default Patrol cart configuration.
func DefaultPatrolConfig() PatrolConfig {
	return PatrolConfig{
		Player: PlayerSpawn{
			X:     56,
			Y:     56,
			Speed: 2,
		},
		Enemies: []EnemySpawn{
			{
				X:     16,
				Y:     24,
				Speed: 1,
				MinX:  8,
				MaxX:  100,
			},
			{
				X:     64,
				Y:     96,
				Speed: 1.5,
				MinX:  40,
				MaxX:  112,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a cart.
func GetDefaultYAML(cartID string) []byte {
	switch cartID {
	case "patrol":
		return defaultPatrolYAML
	default:
		return nil
	}
}
