package runner

import (
	"github.com/vovakirdan/sky-runner/internal/config"
	"github.com/vovakirdan/sky-runner/internal/core"
	"github.com/vovakirdan/sky-runner/internal/spawner"
)

// Kind tells platform entities apart from the player.
type Kind int

const (
	KindPlatform Kind = iota
	KindPlayer
)

// Entity is a host-side object with a transform and an active flag.
// Size is the unscaled extent; the collision box is Size scaled by Scale.
type Entity struct {
	ID     int
	Kind   Kind
	active bool
	pos    core.Vec2
	scale  core.Vec2
	size   core.Vec2
}

// SetActive shows or hides the entity.
func (e *Entity) SetActive(active bool) { e.active = active }

// Active reports whether the entity takes part in the world.
func (e *Entity) Active() bool { return e.active }

// SetPosition moves the entity centre.
func (e *Entity) SetPosition(p core.Vec2) { e.pos = p }

// Position returns the entity centre.
func (e *Entity) Position() core.Vec2 { return e.pos }

// SetScale sets the scale applied to the entity's base size.
func (e *Entity) SetScale(s core.Vec2) { e.scale = s }

// Scale returns the current scale.
func (e *Entity) Scale() core.Vec2 { return e.scale }

// Box returns the world-space collision box.
func (e *Entity) Box() core.Box {
	return core.NewBox(e.pos, e.size.X*e.scale.X, e.size.Y*e.scale.Y)
}

// World stores every entity the runner has created. Platforms are created on
// demand by the pool and never removed.
type World struct {
	cfg       config.RunnerConfig
	platforms []*Entity
	player    *Entity
	nextID    int
}

// NewWorld creates a world holding only the player entity.
func NewWorld(cfg config.RunnerConfig) *World {
	w := &World{cfg: cfg}
	w.player = &Entity{
		ID:     w.allocID(),
		Kind:   KindPlayer,
		active: true,
		pos:    core.V(cfg.Player.StartX, cfg.Player.StartY),
		scale:  core.V(1, 1),
		size:   core.V(cfg.Player.Width, cfg.Player.Height),
	}
	return w
}

func (w *World) allocID() int {
	id := w.nextID
	w.nextID++
	return id
}

// CreatePlatform instantiates a platform at the origin with unit scale.
// The platform is one unit wide before scaling, so the x scale is its width.
func (w *World) CreatePlatform() spawner.Platform {
	e := &Entity{
		ID:     w.allocID(),
		Kind:   KindPlatform,
		active: true,
		scale:  core.V(1, 1),
		size:   core.V(1, w.cfg.World.PlatformThickness),
	}
	w.platforms = append(w.platforms, e)
	return e
}

// Player returns the player entity.
func (w *World) Player() *Entity {
	return w.player
}

// ActivePlatforms returns the platforms currently in the world.
func (w *World) ActivePlatforms() []*Entity {
	out := make([]*Entity, 0, len(w.platforms))
	for _, p := range w.platforms {
		if p.active {
			out = append(out, p)
		}
	}
	return out
}

// PlatformCount returns the number of platform entities ever created.
func (w *World) PlatformCount() int {
	return len(w.platforms)
}

// PlayerTrigger returns the player's trigger volume: its box grown downward
// by the configured skin so that standing on a surface counts as contact.
func (w *World) PlayerTrigger() core.Box {
	return w.player.Box().ExtendDown(w.cfg.World.TriggerSkin)
}

// ContactListener receives trigger overlap transitions.
type ContactListener interface {
	OnOverlapBegin(otherPosition core.Vec2)
	OnOverlapEnd()
}

// Contacts turns per-tick overlap tests into begin/end notifications.
// Only transitions are delivered: begin when the trigger starts touching any
// platform, end when it touches none.
type Contacts struct {
	touching bool
}

// Update tests trigger against platforms and notifies l on transitions.
// When several platforms overlap the one with the highest top is reported.
func (c *Contacts) Update(trigger core.Box, platforms []*Entity, l ContactListener) {
	var hit *Entity
	for _, p := range platforms {
		if !trigger.Overlaps(p.Box()) {
			continue
		}
		if hit == nil || p.Box().Top() > hit.Box().Top() {
			hit = p
		}
	}

	switch {
	case hit != nil && !c.touching:
		c.touching = true
		l.OnOverlapBegin(hit.Position())
	case hit == nil && c.touching:
		c.touching = false
		l.OnOverlapEnd()
	}
}

// Touching reports whether the trigger overlapped a platform at the last update.
func (c *Contacts) Touching() bool {
	return c.touching
}

// Reset forgets the contact state.
func (c *Contacts) Reset() {
	c.touching = false
}
