package runner

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/sky-runner/internal/core"
)

func TestNewAutopilotRejectsUnknownPolicy(t *testing.T) {
	if _, err := NewAutopilot("bunny-hop"); err == nil {
		t.Error("expected an error for an unknown policy")
	}
}

func TestAutopilotIdleNeverJumps(t *testing.T) {
	ap, err := NewAutopilot(PolicyIdle)
	if err != nil {
		t.Fatal(err)
	}
	g := New()
	g.Reset(testRuntime(1))

	for i := 0; i < 1200; i++ {
		in := ap.Next(g)
		if in.IsPressed(core.ActionJump) || in.IsPressed(core.ActionShortJump) {
			t.Fatalf("idle autopilot jumped at tick %d", i)
		}
		g.Step(in)
	}
}

func TestAutopilotEdgeJumpsBeforeTheEdge(t *testing.T) {
	ap, err := NewAutopilot(PolicyEdge)
	if err != nil {
		t.Fatal(err)
	}
	g := New()
	g.Reset(testRuntime(1))

	for i := 0; i < 600 && !g.Player().IsGrounded(); i++ {
		g.Step(ap.Next(g))
	}
	if !g.Player().IsGrounded() {
		t.Fatal("player should land on the first platform")
	}
	edge, ok := g.platformEdgeUnder(g.Player().Position().X)
	if !ok {
		t.Fatal("expected a platform under the landed player")
	}

	if ap.Next(g).IsPressed(core.ActionJump) {
		t.Fatal("a player standing near the platform centre should not jump")
	}

	for i := 0; i < 3000; i++ {
		in := ap.Next(g)
		if in.IsPressed(core.ActionJump) {
			if x := g.Player().Position().X; x > edge {
				t.Errorf("jumped at x=%v, past the edge at %v", x, edge)
			}
			return
		}
		g.Step(in)
	}
	t.Error("edge autopilot never jumped")
}

func TestSimulateStopsWhenFinished(t *testing.T) {
	ap, _ := NewAutopilot(PolicyIdle)
	g := New(WithConfig(fallingConfig()))
	g.Reset(testRuntime(2))

	if err := Simulate(context.Background(), g, ap, 100000, nil); err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}
	if !g.Finished() {
		t.Error("simulation should run until the player is disabled")
	}
	if g.Ticks() >= 100000 {
		t.Errorf("Ticks() = %d, expected an early stop", g.Ticks())
	}
}

func TestSimulateRespectsTickLimitAndProgress(t *testing.T) {
	ap, _ := NewAutopilot(PolicyEdge)
	g := New()
	g.Reset(testRuntime(2))

	calls := 0
	if err := Simulate(context.Background(), g, ap, 1500, func(*Game) { calls++ }); err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}
	if g.Ticks() > 1500 {
		t.Errorf("Ticks() = %d, expected at most 1500", g.Ticks())
	}
	if !g.Finished() && g.Ticks() != 1500 {
		t.Errorf("Ticks() = %d for an unfinished run, expected 1500", g.Ticks())
	}
	if !g.Finished() && calls != 2 {
		t.Errorf("progress called %d times, expected 2 (ticks 600 and 1200)", calls)
	}
}

func TestSimulateCancelled(t *testing.T) {
	ap, _ := NewAutopilot(PolicyEdge)
	g := New()
	g.Reset(testRuntime(2))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := Simulate(ctx, g, ap, 1000, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("Simulate() error = %v, expected context.Canceled", err)
	}
	if g.Ticks() != 0 {
		t.Errorf("Ticks() = %d, a cancelled simulation must not step", g.Ticks())
	}
}
