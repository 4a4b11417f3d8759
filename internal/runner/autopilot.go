package runner

import (
	"context"
	"fmt"

	"github.com/vovakirdan/sky-runner/internal/core"
)

// Policy names a scripted input strategy for headless runs.
type Policy string

const (
	PolicyIdle Policy = "idle" // Never jump
	PolicyEdge Policy = "edge" // Jump near the end of the current platform
)

// Autopilot produces input frames for headless runs.
type Autopilot struct {
	policy Policy
	lead   float64 // Seconds of run-up kept before the edge
}

// NewAutopilot creates an autopilot for the given policy.
func NewAutopilot(p Policy) (*Autopilot, error) {
	switch p {
	case PolicyIdle, PolicyEdge:
		return &Autopilot{policy: p, lead: 0.15}, nil
	}
	return nil, fmt.Errorf("runner: unknown autopilot policy %q", p)
}

// Next returns the input for the game's next tick.
func (a *Autopilot) Next(g *Game) core.InputFrame {
	in := core.NewInputFrame()
	if a.policy == PolicyIdle || !g.player.IsGrounded() {
		return in
	}

	pos := g.player.Position()
	edge, ok := g.platformEdgeUnder(pos.X)
	if !ok {
		return in
	}
	if pos.X+g.player.Velocity().X*a.lead+g.cfg.Player.Width/2 >= edge {
		in.Set(core.ActionJump)
	}
	return in
}

// platformEdgeUnder returns the right edge of the active platform spanning x.
func (g *Game) platformEdgeUnder(x float64) (float64, bool) {
	for _, p := range g.world.ActivePlatforms() {
		box := p.Box()
		if x >= box.Left() && x <= box.Right() {
			return box.Right(), true
		}
	}
	return 0, false
}

// Progress is called by Simulate every 600 ticks with the running game.
type Progress func(g *Game)

const checkEvery = 600

// Simulate steps g with the autopilot until the player is disabled, maxTicks
// ticks have run or ctx is done. It returns the context error, if any.
// g must have been Reset.
func Simulate(ctx context.Context, g *Game, a *Autopilot, maxTicks int, progress Progress) error {
	for i := 0; i < maxTicks && !g.Finished(); i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
			if progress != nil && i > 0 {
				progress(g)
			}
		}
		g.Step(a.Next(g))
	}
	return nil
}
