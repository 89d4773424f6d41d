// Package config provides YAML-based game configuration loading and
// difficulty presets for the platformer.
package config

// PlatformerConfig contains all tunable parameters for a run.
// Velocities and accelerations are in world units per tick; timers in ticks.
type PlatformerConfig struct {
	Physics  PhysicsConfig  `yaml:"physics"`
	Jump     JumpConfig     `yaml:"jump"`
	Enemy    EnemyConfig    `yaml:"enemy"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// PhysicsConfig defines movement and gravity parameters.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`        // added to vy every tick
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // terminal velocity ceiling
	MoveAccel    float64 `yaml:"move_accel"`     // per-tick horizontal acceleration
	MaxRunSpeed  float64 `yaml:"max_run_speed"`  // horizontal velocity clamp
	Friction     float64 `yaml:"friction"`       // vx multiplier when no intent (<1)
	StopEpsilon  float64 `yaml:"stop_epsilon"`   // |vx| below this snaps to zero
}

// JumpConfig defines the jump impulse and the assist windows.
type JumpConfig struct {
	Impulse     float64 `yaml:"impulse"`      // negative, applied to vy on jump
	CutFactor   float64 `yaml:"cut_factor"`   // vy multiplier while rising with jump released
	CoyoteTicks int     `yaml:"coyote_ticks"` // grace window after leaving ground
	BufferTicks int     `yaml:"buffer_ticks"` // grace window before landing
}

// EnemyConfig defines patrol parameters.
type EnemyConfig struct {
	Speed float64 `yaml:"speed"` // constant patrol speed, units per tick
}

// GameplayConfig defines run-level rules.
type GameplayConfig struct {
	Lives            int `yaml:"lives"`
	TimeLimitSeconds int `yaml:"time_limit_seconds"`
	InvulnTicks      int `yaml:"invuln_ticks"` // damage immunity window after a hit
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPlatformerPreset modifies the config based on a difficulty preset.
func ApplyPlatformerPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Gameplay.TimeLimitSeconds = 300
		cfg.Enemy.Speed = 0.4
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Gameplay.TimeLimitSeconds = 120
		cfg.Enemy.Speed = 0.9
	}
}
