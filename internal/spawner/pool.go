// Package spawner implements the platform pool of the endless runner.
//
// The pool keeps a sliding window of platforms around the player. Platforms
// that fall far behind are deactivated and parked on a free list; new ones are
// placed ahead at a randomly advancing spawn point, reusing parked handles
// before asking the factory for more. Handles are never destroyed, so the
// number ever created stays bounded by the window size.
package spawner

import (
	"fmt"

	"github.com/vovakirdan/sky-runner/internal/config"
	"github.com/vovakirdan/sky-runner/internal/core"
)

// Platform is an externally owned, renderable and collidable platform handle.
type Platform interface {
	SetActive(active bool)
	SetPosition(p core.Vec2)
	SetScale(s core.Vec2)
	Position() core.Vec2
}

// Factory instantiates new platform entities with a default transform.
type Factory interface {
	CreatePlatform() Platform
}

// Random supplies uniform draws in [min, max].
type Random interface {
	Uniform(min, max float64) float64
}

// record is one arena slot. A slot is created once and lives forever.
type record struct {
	handle Platform
	width  float64
}

// Pool manages the active window and free list of platforms.
type Pool struct {
	cfg     config.SpawnerConfig
	factory Factory
	rng     Random

	arena  []record
	active indexRing // arena indices, oldest first
	free   []int     // arena indices, unordered

	nextSpawn   core.Vec2
	initialized bool
	over        bool

	spawns     int
	recycles   int
	peakActive int
}

// Stats is a snapshot of pool counters.
type Stats struct {
	Created    int // Handles ever obtained from the factory
	Active     int
	Free       int
	PeakActive int // Largest active window observed
	Spawns     int // Placements, including reuse
	Recycles   int
}

// New creates a pool. The configuration is assumed to be validated.
func New(cfg config.SpawnerConfig, factory Factory, rng Random) *Pool {
	return &Pool{
		cfg:       cfg,
		factory:   factory,
		rng:       rng,
		arena:     make([]record, 0, 8),
		active:    newIndexRing(8),
		free:      make([]int, 0, 8),
		nextSpawn: core.V(cfg.SpawnOriginX, cfg.SpawnOriginY),
	}
}

// Initialize spawns the first platform at the default spawn point.
// It must be called exactly once, before the first Tick.
func (p *Pool) Initialize() {
	if p.initialized {
		panic("spawner: Initialize called twice")
	}
	p.initialized = true
	p.SpawnPlatform()
}

// Tick runs one recycle check and one spawn check, in that order.
// Nothing happens when gameActive is false or after GameOver.
func (p *Pool) Tick(playerX float64, gameActive bool) {
	if !p.initialized {
		panic("spawner: Tick before Initialize")
	}
	if !gameActive || p.over {
		return
	}

	if playerX-p.Oldest().Position().X > p.cfg.RecycleDistance {
		p.recycleOldest()
	}

	if p.nextSpawn.X-playerX < p.cfg.SpawnAtDistance {
		p.SpawnPlatform()
	}
}

// SpawnPlatform places one platform at the next spawn point and advances it.
func (p *Pool) SpawnPlatform() {
	idx := p.acquire()
	rec := &p.arena[idx]

	rec.width = p.rng.Uniform(p.cfg.MinPlatformWidth, p.cfg.MaxPlatformWidth)
	rec.handle.SetPosition(p.nextSpawn)
	rec.handle.SetScale(core.V(rec.width, 1))
	p.active.Push(idx)

	p.nextSpawn.X += p.rng.Uniform(p.cfg.MinXSpacing, p.cfg.MaxXSpacing)
	p.nextSpawn.Y += p.rng.Uniform(p.cfg.MinYSpacing, p.cfg.MaxYSpacing)

	p.spawns++
	if n := p.active.Len(); n > p.peakActive {
		p.peakActive = n
	}
}

// acquire returns an active arena slot, reusing a free one when possible.
func (p *Pool) acquire() int {
	if n := len(p.free); n > 0 {
		idx := p.free[n-1]
		p.free = p.free[:n-1]
		p.arena[idx].handle.SetActive(true)
		return idx
	}

	p.arena = append(p.arena, record{handle: p.factory.CreatePlatform()})
	idx := len(p.arena) - 1
	p.arena[idx].handle.SetActive(true)
	return idx
}

func (p *Pool) recycleOldest() {
	idx := p.active.Pop()
	p.arena[idx].handle.SetActive(false)
	p.free = append(p.free, idx)
	p.recycles++
}

// GameOver permanently stops recycling and spawning. Calling it again has no effect.
func (p *Pool) GameOver() {
	p.over = true
}

// IsOver reports whether GameOver has been called.
func (p *Pool) IsOver() bool {
	return p.over
}

// Oldest returns the rearmost active platform.
// The active window is never empty after Initialize; an empty window is a
// broken invariant and panics.
func (p *Pool) Oldest() Platform {
	if p.active.Len() == 0 {
		panic("spawner: oldest platform requested from an empty active queue")
	}
	return p.arena[p.active.Peek()].handle
}

// Active returns the active platforms ordered from oldest to newest.
func (p *Pool) Active() []Platform {
	out := make([]Platform, 0, p.active.Len())
	p.active.Each(func(idx int) {
		out = append(out, p.arena[idx].handle)
	})
	return out
}

// ActiveCount returns the size of the active window.
func (p *Pool) ActiveCount() int {
	return p.active.Len()
}

// FreeCount returns the number of parked handles.
func (p *Pool) FreeCount() int {
	return len(p.free)
}

// Created returns the number of handles ever obtained from the factory.
func (p *Pool) Created() int {
	return len(p.arena)
}

// NextSpawnPoint returns where the next platform will be placed.
func (p *Pool) NextSpawnPoint() core.Vec2 {
	return p.nextSpawn
}

// Stats returns a snapshot of the pool counters.
func (p *Pool) Stats() Stats {
	return Stats{
		Created:    len(p.arena),
		Active:     p.active.Len(),
		Free:       len(p.free),
		PeakActive: p.peakActive,
		Spawns:     p.spawns,
		Recycles:   p.recycles,
	}
}

// String implements fmt.Stringer for debugging.
func (s Stats) String() string {
	return fmt.Sprintf("created=%d active=%d free=%d peak=%d spawns=%d recycles=%d",
		s.Created, s.Active, s.Free, s.PeakActive, s.Spawns, s.Recycles)
}
