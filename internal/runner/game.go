// Package runner implements the Sky Runner game: the host world that wires the
// platform pool and the motion controller together and drives them per tick.
package runner

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sky-runner/internal/config"
	"github.com/vovakirdan/sky-runner/internal/core"
	"github.com/vovakirdan/sky-runner/internal/motion"
	"github.com/vovakirdan/sky-runner/internal/spawner"
	"github.com/vovakirdan/sky-runner/internal/storage"
)

// Game implements the endless runner.
type Game struct {
	cfg     config.RunnerConfig
	runtime core.RuntimeConfig
	clock   core.FixedClock
	logger  *log.Logger

	world    *World
	pool     *spawner.Pool
	player   *motion.Controller
	contacts Contacts

	gameOver  bool // Latched by FellIntoTheVoid
	fallTick  int
	paused    bool
	landings  int
	tickCount int
}

// Option configures a Game.
type Option func(*Game)

// WithConfig sets the runner configuration. The default is config.DefaultRunnerConfig().
func WithConfig(cfg config.RunnerConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
	}
}

// WithLogger sets the logger for landing and void events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a new runner. Call Reset before stepping it.
func New(opts ...Option) *Game {
	g := &Game{
		cfg:    config.DefaultRunnerConfig(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Sky Runner"
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}

// Reset initializes or restarts the run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.clock = core.NewFixedClock(runtime.TickRate)

	g.world = NewWorld(g.cfg)
	g.pool = spawner.New(g.cfg.Spawner, g.world, core.NewRand(runtime.Seed))

	start := core.V(g.cfg.Player.StartX, g.cfg.Player.StartY)
	collider := motion.Collider{
		PlayerHeight:      g.cfg.Player.Height,
		PlatformThickness: g.cfg.World.PlatformThickness,
	}
	g.player = motion.New(g.cfg.Motion, g.world.Player(), start, collider)
	g.player.Landed.Subscribe(g.onLanded)
	g.player.FellIntoTheVoid.Subscribe(g.onFellIntoTheVoid)

	g.contacts.Reset()
	g.gameOver = false
	g.fallTick = 0
	g.paused = false
	g.landings = 0
	g.tickCount = 0

	g.pool.Initialize()
}

func (g *Game) onLanded() {
	g.landings++
	g.logger.Debug("landed on platform", "tick", g.tickCount, "x", g.player.Position().X, "landings", g.landings)
}

func (g *Game) onFellIntoTheVoid() {
	g.gameOver = true
	g.fallTick = g.tickCount
	g.pool.GameOver()
	g.logger.Info("fell into the void",
		"tick", g.tickCount,
		"distance", g.distance(),
		"landings", g.landings,
		"pool", g.pool.Stats().String(),
	)
}

// Step advances the game by one tick.
//
// Contact changes are delivered before the controller integrates, and the
// pool runs last with the player's new x-position. After a void fall the
// player keeps falling until it is disabled; the pool stays frozen.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.player.IsDisabled() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	g.contacts.Update(g.world.PlayerTrigger(), g.world.ActivePlatforms(), g.player)
	g.player.Tick(g.clock.DeltaTime(), in)
	g.world.Player().SetPosition(g.player.Position())

	g.pool.Tick(g.player.Position().X, !g.gameOver)

	if g.player.IsDisabled() {
		g.logger.Info("player disabled", "tick", g.tickCount, "y", g.player.Position().Y)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) distance() int {
	d := int(g.player.Position().X - g.cfg.Player.StartX)
	if d < 0 {
		return 0
	}
	return d
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Distance: g.distance(),
		Landings: g.landings,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Finished reports whether the player entity has been disabled.
// Nothing changes on later steps.
func (g *Game) Finished() bool {
	return g.player.IsDisabled()
}

// Ticks returns the number of simulated ticks since Reset.
func (g *Game) Ticks() int {
	return g.tickCount
}

// Player returns the motion controller.
func (g *Game) Player() *motion.Controller {
	return g.player
}

// Pool returns the platform pool.
func (g *Game) Pool() *spawner.Pool {
	return g.pool
}

// World returns the host world.
func (g *Game) World() *World {
	return g.world
}

// Record summarizes the run for the run log.
func (g *Game) Record(source string, preset config.Preset) storage.RunRecord {
	stats := g.pool.Stats()
	return storage.RunRecord{
		Source:       source,
		Preset:       string(preset),
		Seed:         g.runtime.Seed,
		Ticks:        g.tickCount,
		Distance:     g.distance(),
		Landings:     g.landings,
		FellIntoVoid: g.gameOver,
		FallTick:     g.fallTick,
		Created:      stats.Created,
		PeakActive:   stats.PeakActive,
		Spawns:       stats.Spawns,
		Recycles:     stats.Recycles,
	}
}
