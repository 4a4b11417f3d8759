package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-runner/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List tuning presets",
	Long:  `Shows the tuning presets and the values they change.`,
	Run:   runPresets,
}

func runPresets(_ *cobra.Command, _ []string) {
	fmt.Println("Available presets:")
	fmt.Println()

	fmt.Printf("  %-8s  %-11s  %-11s  %-7s  %s\n", "Preset", "Widths", "X spacing", "Gravity", "Jump")
	fmt.Printf("  %-8s  %-11s  %-11s  %-7s  %s\n", "------", "------", "---------", "-------", "----")

	for _, p := range config.Presets() {
		cfg := config.DefaultRunnerConfig()
		if err := config.ApplyPreset(&cfg, p); err != nil {
			continue
		}
		s, m := cfg.Spawner, cfg.Motion
		fmt.Printf("  %-8s  %-11s  %-11s  %-7g  %g\n",
			p,
			fmt.Sprintf("%g-%g", s.MinPlatformWidth, s.MaxPlatformWidth),
			fmt.Sprintf("%g-%g", s.MinXSpacing, s.MaxXSpacing),
			m.Gravity,
			m.JumpSpeed,
		)
	}

	fmt.Println()
	fmt.Println("Run 'runner play --preset <name>' to use one.")
}
