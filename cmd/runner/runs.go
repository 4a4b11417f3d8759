package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sky-runner/internal/platform/tui"
	"github.com/vovakirdan/sky-runner/internal/storage"
)

var (
	flagRunsLongest bool
	flagRunsLimit   int
	flagRunsSource  string
	flagRunsBrowse  bool
	flagRunsClear   bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recorded runs",
	Long: `Display recorded runs with their pool diagnostics.

Pool shows platforms ever created / largest active window.

Examples:
  runner runs
  runner runs --longest --limit 5
  runner runs --source simulate
  runner runs --browse
  runner runs --clear --source simulate`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagRunsLongest, "longest", false, "Order by distance instead of recency")
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().StringVar(&flagRunsSource, "source", "", "Only runs from this source: play, ssh, simulate")
	runsCmd.Flags().BoolVar(&flagRunsBrowse, "browse", false, "Browse the run log interactively")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete runs (all, or only --source)")
}

func runRuns(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run log: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRunsClear {
		if err := store.ClearRuns(flagRunsSource); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run log cleared.")
		return
	}

	if flagRunsBrowse {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		if _, err := tui.RunRuns(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var runs []storage.RunRecord
	title := "Recent Runs"
	if flagRunsLongest || flagRunsSource != "" {
		title = "Longest Runs"
		runs, err = store.LongestRuns(flagRunsSource, flagRunsLimit)
	} else {
		runs, err = store.RecentRuns(flagRunsLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' or 'runner simulate' to record one.")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-6s  %-7s  %-8s  %-8s  %s\n",
		"#", "Distance", "Landings", "Pool", "Preset", "Source", "Ticks", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-6s  %-7s  %-8s  %-8s  %s\n",
		"-", "--------", "--------", "----", "------", "------", "-----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-8d  %-6s  %-7s  %-8s  %-8d  %s\n",
			i+1, r.Distance, r.Landings,
			fmt.Sprintf("%d/%d", r.Created, r.PeakActive),
			r.Preset, r.Source, r.Ticks,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	fmt.Println()
	if stats, err := store.Stats(); err == nil {
		fmt.Printf("Runs: %d  Best: %d  Avg: %.1f  Largest pool: %d\n",
			stats.Runs, stats.BestDistance, stats.AvgDistance, stats.MaxCreated)
	}
}
