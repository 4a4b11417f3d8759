package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-runner/internal/config"
	"github.com/vovakirdan/sky-runner/internal/core"
	"github.com/vovakirdan/sky-runner/internal/runner"
	"github.com/vovakirdan/sky-runner/internal/storage"
)

var (
	flagSimTicks   int
	flagSimRuns    int
	flagSimPolicy  string
	flagSimNoSave  bool
	flagSimVerbose bool
	flagSimConfig  string
	flagSimPreset  string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run headless autopilot runs",
	Long: `Run the game without a terminal, driven by an autopilot, and report
pool diagnostics. Useful for checking that the platform pool stays bounded
over very long runs.

Policies:
  edge  - Jump when the end of the current platform comes close
  idle  - Never jump (the run ends at the first gap)

Each run is recorded in the run log unless --no-save is given.
Seeds are --seed, --seed+1, ... (time based when --seed is 0).

Examples:
  runner simulate
  runner simulate --runs 20 --ticks 216000 --preset snappy
  runner simulate --policy idle --verbose --no-save`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimTicks, "ticks", 36000, "Maximum ticks per run")
	simulateCmd.Flags().IntVar(&flagSimRuns, "runs", 1, "Number of runs")
	simulateCmd.Flags().StringVar(&flagSimPolicy, "policy", string(runner.PolicyEdge), "Autopilot policy: edge, idle")
	simulateCmd.Flags().BoolVar(&flagSimNoSave, "no-save", false, "Do not record runs in the run log")
	simulateCmd.Flags().BoolVarP(&flagSimVerbose, "verbose", "v", false, "Log landings and progress")
	simulateCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom runner config YAML")
	simulateCmd.Flags().StringVar(&flagSimPreset, "preset", "", "Tuning preset: classic, easy, hard, snappy")
	simulateCmd.SilenceUsage = true
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "simulate",
	})
	if flagSimVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	if flagSimRuns <= 0 || flagSimTicks <= 0 {
		return errors.New("--runs and --ticks must be positive")
	}

	preset := config.Preset(flagSimPreset)
	runnerCfg, err := loadRunnerConfig(flagSimConfig, preset)
	if err != nil {
		return err
	}
	if preset == "" {
		preset = config.PresetClassic
	}

	pilot, err := runner.NewAutopilot(runner.Policy(flagSimPolicy))
	if err != nil {
		return err
	}

	var store *storage.Store
	if !flagSimNoSave {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	maxCreated := 0
	for i := 0; i < flagSimRuns; i++ {
		rec, err := simulateOne(ctx, logger, runnerCfg, preset, pilot, seed+int64(i))
		if err != nil {
			return err
		}
		maxCreated = max(maxCreated, rec.Created)

		if store != nil {
			if _, err := store.SaveRun(rec); err != nil {
				return err
			}
		}
	}

	logger.Info("simulation finished",
		"runs", flagSimRuns,
		"max_created", maxCreated,
		"saved", store != nil,
	)
	return nil
}

func simulateOne(
	ctx context.Context,
	logger *log.Logger,
	cfg config.RunnerConfig,
	preset config.Preset,
	pilot *runner.Autopilot,
	seed int64,
) (storage.RunRecord, error) {
	game := runner.New(runner.WithConfig(cfg), runner.WithLogger(logger))
	game.Reset(core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: flagFPS,
		Seed:     seed,
	})

	start := time.Now()
	progress := func(g *runner.Game) {
		logger.Debug("progress",
			"seed", seed,
			"tick", g.Ticks(),
			"distance", g.State().Distance,
			"pool", g.Pool().Stats().String(),
		)
	}

	if err := runner.Simulate(ctx, game, pilot, flagSimTicks, progress); err != nil {
		return storage.RunRecord{}, fmt.Errorf("simulation interrupted: %w", err)
	}

	rec := game.Record(storage.SourceSimulate, preset)
	logger.Info("run complete",
		"seed", seed,
		"ticks", rec.Ticks,
		"distance", rec.Distance,
		"landings", rec.Landings,
		"fell", rec.FellIntoVoid,
		"created", rec.Created,
		"peak", rec.PeakActive,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return rec, nil
}
