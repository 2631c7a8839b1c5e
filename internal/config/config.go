// Package config provides YAML-based cart configuration loading for the
// console platform.
package config

// PatrolConfig contains all configuration for the Patrol demo cart.
type PatrolConfig struct {
	Player  PlayerSpawn  `yaml:"player"`
	Enemies []EnemySpawn `yaml:"enemies"`
}

// PlayerSpawn defines where the player starts and how fast it moves.
// A zero speed selects the kind default at construction time.
type PlayerSpawn struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Speed float64 `yaml:"speed"`
}

// EnemySpawn defines one enemy's starting position, speed, and patrol
// bounds. Zero speed and zero bounds select the kind defaults.
type EnemySpawn struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Speed float64 `yaml:"speed"`
	MinX  float64 `yaml:"min_x"`
	MaxX  float64 `yaml:"max_x"`
}
