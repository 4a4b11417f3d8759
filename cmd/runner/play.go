package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sky-runner/internal/config"
	"github.com/vovakirdan/sky-runner/internal/core"
	"github.com/vovakirdan/sky-runner/internal/platform/tui"
	"github.com/vovakirdan/sky-runner/internal/runner"
	"github.com/vovakirdan/sky-runner/internal/storage"
)

var (
	flagConfig string
	flagPreset string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run straight away.

Controls:
  Space/Up/W   - Jump
  Down/J/S     - Short hop
  P            - Pause
  R            - Restart (after falling)
  Ctrl+S       - Screenshot
  Q/Ctrl+C     - Quit

Presets:
  classic - Tunables as loaded from the config chain
  easy    - Wider platforms, smaller gaps
  hard    - Narrow platforms, wide gaps
  snappy  - Heavy gravity and quick jumps

Examples:
  runner play
  runner play --preset snappy
  runner play --seed 42 --preset hard
  runner play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Tuning preset: classic, easy, hard, snappy")
}

func runPlay(_ *cobra.Command, _ []string) {
	preset := config.Preset(flagPreset)
	runnerCfg, err := loadRunnerConfig(flagConfig, preset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if preset == "" {
		preset = config.PresetClassic
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run log: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	game := runner.New(runner.WithConfig(runnerCfg))
	runErr := tui.Run(game, store, cfg, tui.RunInfo{Source: storage.SourcePlay, Preset: preset})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
