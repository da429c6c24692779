package config

import (
	_ "embed"
)

//go:embed defaults/lanejump.yaml
var defaultLaneJumpYAML []byte

// DefaultLaneJumpConfig returns the built-in configuration.
func DefaultLaneJumpConfig() LaneJumpConfig {
	return LaneJumpConfig{
		Road: RoadConfig{
			Length:        50,
			LateralOffset: -1.5,
		},
		Jump: JumpConfig{
			Duration:      0.1,
			AnimationRate: 3.5,
		},
		Round: RoundConfig{
			Timeout:    1.0,
			InputDelay: 0.1,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultLaneJumpYAML
}
