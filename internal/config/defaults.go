package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the default platformer configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PhysicsConfig{
			Gravity:      0.3,
			MaxFallSpeed: 6.0,
			MoveAccel:    0.25,
			MaxRunSpeed:  2.5,
			Friction:     0.8,
			StopEpsilon:  0.05,
		},
		Jump: JumpConfig{
			Impulse:     -5.5,
			CutFactor:   0.5,
			CoyoteTicks: 6,
			BufferTicks: 6,
		},
		Enemy: EnemyConfig{
			Speed: 0.6,
		},
		Gameplay: GameplayConfig{
			Lives:            3,
			TimeLimitSeconds: 180,
			InvulnTicks:      90,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultPlatformerYAML
}
