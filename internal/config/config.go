// Package config provides YAML-based configuration for the game world and
// physics, with an embedded default and startup validation.
package config

import "fmt"

// Config contains all tunable constants for a game session. Values are fixed
// for the lifetime of a session; there is no difficulty progression.
type Config struct {
	World     World     `yaml:"world"`
	Physics   Physics   `yaml:"physics"`
	Obstacles Obstacles `yaml:"obstacles"`
	Avatar    Avatar    `yaml:"avatar"`
}

// World defines the dimensions of the playfield in world units.
type World struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// Physics defines per-tick motion constants.
type Physics struct {
	Gravity     float64 `yaml:"gravity"`      // Downward acceleration per tick
	JumpImpulse float64 `yaml:"jump_impulse"` // Velocity set by a jump (negative = up)
	ScrollSpeed float64 `yaml:"scroll_speed"` // Leftward obstacle speed per tick
}

// Obstacles defines barrier geometry and spawn cadence.
type Obstacles struct {
	Width         float64 `yaml:"width"`          // Horizontal extent of a barrier pair
	GapHeight     float64 `yaml:"gap_height"`     // Vertical size of the passable gap
	MinGapMargin  float64 `yaml:"min_gap_margin"` // Minimum height of either barrier
	SpawnInterval int     `yaml:"spawn_interval"` // Ticks between spawns
}

// Avatar defines the player hitbox. The start position is derived from the
// world: the avatar is centered at (width/4, height/2) and never moves
// horizontally.
type Avatar struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// GroundY returns the y-coordinate of the ground line.
func (c Config) GroundY() float64 {
	return c.World.Height - c.World.GroundHeight
}

// GapTopMax returns the largest valid top-of-gap position, such that the
// bottom barrier keeps at least the minimum margin of height.
func (c Config) GapTopMax() float64 {
	return c.GroundY() - c.Obstacles.GapHeight - c.Obstacles.MinGapMargin
}

// Validate checks the startup invariants the simulation depends on.
// Obstacle generation is undefined if these do not hold, so violations abort
// the program before a session is created.
func (c Config) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("config: world dimensions must be positive, got %gx%g", c.World.Width, c.World.Height)
	}
	if c.World.GroundHeight < 0 || c.World.GroundHeight >= c.World.Height {
		return fmt.Errorf("config: ground height %g must be within [0, %g)", c.World.GroundHeight, c.World.Height)
	}
	if c.Physics.Gravity <= 0 {
		return fmt.Errorf("config: gravity must be positive, got %g", c.Physics.Gravity)
	}
	if c.Physics.JumpImpulse >= 0 {
		return fmt.Errorf("config: jump impulse must be negative (upward), got %g", c.Physics.JumpImpulse)
	}
	if c.Physics.ScrollSpeed <= 0 {
		return fmt.Errorf("config: scroll speed must be positive, got %g", c.Physics.ScrollSpeed)
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.GapHeight <= 0 {
		return fmt.Errorf("config: obstacle width and gap height must be positive, got %g and %g",
			c.Obstacles.Width, c.Obstacles.GapHeight)
	}
	if c.Obstacles.MinGapMargin <= 0 {
		return fmt.Errorf("config: minimum gap margin must be positive, got %g", c.Obstacles.MinGapMargin)
	}
	if c.Obstacles.SpawnInterval <= 0 {
		return fmt.Errorf("config: spawn interval must be positive, got %d", c.Obstacles.SpawnInterval)
	}
	if c.Avatar.Width <= 0 || c.Avatar.Height <= 0 {
		return fmt.Errorf("config: avatar dimensions must be positive, got %gx%g", c.Avatar.Width, c.Avatar.Height)
	}

	// Both barriers need strictly positive height at every gap position:
	// gap + 2*margin must fit in the playable band above the ground.
	playable := c.World.Height - c.World.GroundHeight
	needed := c.Obstacles.GapHeight + 2*c.Obstacles.MinGapMargin
	if needed > playable {
		return fmt.Errorf("config: gap height %g plus twice the margin %g exceeds the playable height %g",
			c.Obstacles.GapHeight, c.Obstacles.MinGapMargin, playable)
	}
	return nil
}
