// runner is Sky Runner, an endless platform runner for the terminal.
//
// Usage:
//
//	runner play              - Play a run with a preset
//	runner menu              - Pick presets interactively and browse the run log
//	runner serve             - Start SSH server for remote play
//	runner simulate          - Run headless autopilot runs and log pool diagnostics
//	runner runs              - Show recorded runs
//	runner presets           - List tuning presets
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.arcade/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-runner/internal/config"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Sky Runner - an endless platform runner in your terminal",
	Long: `Sky Runner keeps a sliding window of floating platforms ahead of you.
Run, jump the gaps, and don't fall into the void.

Available commands:
  play      - Play a run directly
  menu      - Interactive preset picker and run log
  serve     - Start SSH server for remote play
  simulate  - Headless autopilot runs for soak testing
  runs      - View recorded runs
  presets   - List tuning presets

Examples:
  runner play
  runner play --preset snappy
  runner menu
  runner serve --ssh :2222
  runner simulate --runs 10 --ticks 36000
  runner runs --longest`,
}

func init() {
	rootCmd.SilenceErrors = true // main prints the error
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/runs.db", "Path to run log database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(presetsCmd)
}

// loadRunnerConfig loads the YAML config chain and applies a preset on top.
func loadRunnerConfig(path string, preset config.Preset) (config.RunnerConfig, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.RunnerConfig{}, err
	}
	if err := config.ApplyPreset(&cfg, preset); err != nil {
		return config.RunnerConfig{}, err
	}
	return cfg, nil
}
