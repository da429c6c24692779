// Package config provides YAML-based configuration loading for lanejump.
package config

import (
	"github.com/vovakirdan/lanejump/internal/motion"
	"github.com/vovakirdan/lanejump/internal/round"
)

// LaneJumpConfig contains all tunable settings of the game.
type LaneJumpConfig struct {
	Road  RoadConfig  `yaml:"road"`
	Jump  JumpConfig  `yaml:"jump"`
	Round RoundConfig `yaml:"round"`
}

// RoadConfig defines road generation parameters.
type RoadConfig struct {
	Length        int     `yaml:"length"`
	LateralOffset float64 `yaml:"lateral_offset"` // Y offset of spawned blocks
}

// JumpConfig defines jump timing.
type JumpConfig struct {
	Duration      float64 `yaml:"duration"`
	AnimationRate float64 `yaml:"animation_rate"` // Skeletal jump playback rate
}

// RoundConfig defines round timers.
type RoundConfig struct {
	Timeout    float64 `yaml:"timeout"`     // Max idle time between jumps
	InputDelay float64 `yaml:"input_delay"` // Debounce after the menu closes
}

// RoundSettings converts the config into round.Config.
func (c LaneJumpConfig) RoundSettings() round.Config {
	return round.Config{
		RoadLength:    c.Road.Length,
		Timeout:       c.Round.Timeout,
		InputDelay:    c.Round.InputDelay,
		LateralOffset: c.Road.LateralOffset,
	}
}

// MotionSettings converts the config into motion.Config.
func (c LaneJumpConfig) MotionSettings() motion.Config {
	return motion.Config{
		Duration: c.Jump.Duration,
		JumpRate: c.Jump.AnimationRate,
	}
}

// Validate reports the first setting that would break a round.
func (c LaneJumpConfig) Validate() error {
	if err := c.RoundSettings().Validate(); err != nil {
		return err
	}
	return c.MotionSettings().Validate()
}
