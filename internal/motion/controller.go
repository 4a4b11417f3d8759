// Package motion implements the player controller of the endless runner:
// running acceleration, jumps, gravity, platform snapping and the one-shot
// void fall notification.
package motion

import (
	"github.com/vovakirdan/sky-runner/internal/config"
	"github.com/vovakirdan/sky-runner/internal/core"
	"github.com/vovakirdan/sky-runner/internal/event"
)

// Input reports whether an action is held during the current tick.
type Input interface {
	IsPressed(a core.Action) bool
}

// Body is the host's player entity. The controller only ever deactivates it.
type Body interface {
	SetActive(active bool)
}

// State is the contact state of the player.
type State int

const (
	Airborne State = iota
	Grounded
	Disabled
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case Airborne:
		return "Airborne"
	case Grounded:
		return "Grounded"
	case Disabled:
		return "Disabled"
	default:
		return "Unknown"
	}
}

// Collider describes the geometry used to snap the player onto platforms.
// Positions are box centres.
type Collider struct {
	PlayerHeight      float64
	PlatformThickness float64
}

// HeightOffset is the centre-to-centre distance of the player standing on a platform.
func (c Collider) HeightOffset() float64 {
	return (c.PlayerHeight + c.PlatformThickness) / 2
}

// Controller owns the player's position and velocity.
type Controller struct {
	cfg  config.MotionConfig
	body Body

	position core.Vec2
	velocity core.Vec2

	grounded         bool
	notifiedVoidFall bool
	disabled         bool
	heightOffset     float64

	// Landed is published on every transition onto a platform.
	Landed *event.Signal
	// FellIntoTheVoid is published once, when the player first drops below
	// the bottom of the world.
	FellIntoTheVoid *event.Signal
}

// New creates a controller for body starting at start. heightOffset is
// computed here, once, from the collider.
func New(cfg config.MotionConfig, body Body, start core.Vec2, collider Collider) *Controller {
	return &Controller{
		cfg:             cfg,
		body:            body,
		position:        start,
		heightOffset:    collider.HeightOffset(),
		Landed:          event.NewSignal("LandedOnPlatform"),
		FellIntoTheVoid: event.NewSignal("FellIntoTheVoid"),
	}
}

// OnOverlapBegin handles the player's trigger starting to touch a platform
// whose centre is at platformPos.
func (c *Controller) OnOverlapBegin(platformPos core.Vec2) {
	if c.disabled {
		return
	}
	c.grounded = true
	c.Landed.Publish()
	c.position.Y = platformPos.Y + c.heightOffset
	c.velocity.Y = 0
}

// OnOverlapEnd handles the player's trigger leaving the platform.
func (c *Controller) OnOverlapEnd() {
	if c.disabled {
		return
	}
	c.grounded = false
}

// Tick advances the player by dt seconds.
//
// When both jump actions are held, the full jump wins.
func (c *Controller) Tick(dt float64, in Input) {
	if c.disabled {
		return
	}

	if c.grounded {
		c.velocity.X += c.cfg.RunningAccelerationRate * dt
		switch {
		case in.IsPressed(core.ActionJump):
			c.velocity.Y = c.cfg.JumpSpeed
		case in.IsPressed(core.ActionShortJump):
			c.velocity.Y = c.cfg.JumpSpeed / 2
		}
	} else {
		c.velocity.Y -= c.cfg.Gravity * dt
	}

	c.position = c.position.Add(c.velocity.Scale(dt))

	if !c.notifiedVoidFall && c.position.Y < c.cfg.BottomOfTheWorld {
		c.notifiedVoidFall = true
		c.FellIntoTheVoid.Publish()
	}

	if c.position.Y < 2*c.cfg.BottomOfTheWorld {
		c.disabled = true
		c.grounded = false
		if c.body != nil {
			c.body.SetActive(false)
		}
	}
}

// Position returns the player's centre.
func (c *Controller) Position() core.Vec2 {
	return c.position
}

// Velocity returns the player's velocity in units per second.
func (c *Controller) Velocity() core.Vec2 {
	return c.velocity
}

// HeightOffset returns the snap distance computed from the collider.
func (c *Controller) HeightOffset() float64 {
	return c.heightOffset
}

// IsGrounded reports whether the player is on a platform.
func (c *Controller) IsGrounded() bool {
	return c.grounded
}

// HasFallen reports whether FellIntoTheVoid has fired.
func (c *Controller) HasFallen() bool {
	return c.notifiedVoidFall
}

// IsDisabled reports whether the player entity has been deactivated for good.
func (c *Controller) IsDisabled() bool {
	return c.disabled
}

// State returns the current contact state.
func (c *Controller) State() State {
	switch {
	case c.disabled:
		return Disabled
	case c.grounded:
		return Grounded
	default:
		return Airborne
	}
}
