// Package game implements the simulation core: the falling avatar, the
// scrolling obstacle stream, and the session state machine that ties them
// together. It is pure logic with no terminal or Bubble Tea dependencies.
package game

import (
	"github.com/vovakirdan/flappybird-tui/internal/config"
	"github.com/vovakirdan/flappybird-tui/internal/core"
)

// Avatar is the player-controlled falling entity. Its horizontal position is
// fixed for its whole lifetime; the world scrolls past it instead.
type Avatar struct {
	x   float64 // Left edge, never changes after creation
	y   float64 // Top edge
	vel float64 // Vertical velocity, positive = down

	w, h        float64
	gravity     float64
	jumpImpulse float64
}

// NewAvatar creates an avatar at the fixed start position, centered at
// (world width / 4, world height / 2), with zero velocity.
func NewAvatar(cfg config.Config) *Avatar {
	return &Avatar{
		x:           cfg.World.Width/4 - cfg.Avatar.Width/2,
		y:           cfg.World.Height/2 - cfg.Avatar.Height/2,
		vel:         0,
		w:           cfg.Avatar.Width,
		h:           cfg.Avatar.Height,
		gravity:     cfg.Physics.Gravity,
		jumpImpulse: cfg.Physics.JumpImpulse,
	}
}

// Jump sets the vertical velocity to the jump impulse, unconditionally.
func (a *Avatar) Jump() {
	a.vel = a.jumpImpulse
}

// Tick applies gravity to the velocity and the velocity to the position.
// The avatar never leaves through the top of the world: crossing it clamps
// the position to the boundary and zeroes the velocity.
func (a *Avatar) Tick() {
	a.vel += a.gravity
	a.y += a.vel

	if a.y < 0 {
		a.y = 0
		a.vel = 0
	}
}

// Rect returns the avatar's bounding rectangle.
func (a *Avatar) Rect() core.Rect {
	return core.NewRect(a.x, a.y, a.w, a.h)
}

// X returns the fixed left-edge position.
func (a *Avatar) X() float64 {
	return a.x
}

// Bottom returns the y-coordinate of the bottom edge.
func (a *Avatar) Bottom() float64 {
	return a.y + a.h
}

// Velocity returns the current vertical velocity.
func (a *Avatar) Velocity() float64 {
	return a.vel
}

// snapBottom pins the bottom edge to the given line. Used for the visual
// snap onto the ground when a session ends.
func (a *Avatar) snapBottom(y float64) {
	a.y = y - a.h
}
