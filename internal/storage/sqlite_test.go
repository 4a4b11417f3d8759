package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	want := RunRecord{
		Source:       SourceSimulate,
		Preset:       "snappy",
		Seed:         42,
		Ticks:        1800,
		Distance:     517,
		Landings:     9,
		FellIntoVoid: true,
		FallTick:     1700,
		Created:      5,
		PeakActive:   4,
		Spawns:       14,
		Recycles:     10,
	}
	id, err := store.SaveRun(want)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil for a saved run")
	}

	want.ID = id
	got.CreatedAt = want.CreatedAt
	if *got != want {
		t.Errorf("RunByID() = %+v, expected %+v", *got, want)
	}
}

func TestStoreRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.RunByID(99)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("RunByID() = %+v, expected nil", got)
	}
}

func TestStoreSaveRunRequiresSource(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(RunRecord{Distance: 10}); err == nil {
		t.Error("SaveRun() without a source should fail")
	}
}

func TestStoreDefaultPreset(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(RunRecord{Source: SourcePlay})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	got, _ := store.RunByID(id)
	if got.Preset != "classic" {
		t.Errorf("Preset = %q, expected classic", got.Preset)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 5; i++ {
		if _, err := store.SaveRun(RunRecord{Source: SourcePlay, Distance: i * 100}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	// Newest first
	if runs[0].Distance != 500 || runs[1].Distance != 400 || runs[2].Distance != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreLongestRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Source: SourcePlay, Distance: 100})
	store.SaveRun(RunRecord{Source: SourcePlay, Distance: 300})
	store.SaveRun(RunRecord{Source: SourceSimulate, Distance: 900})
	store.SaveRun(RunRecord{Source: SourcePlay, Distance: 200})

	tests := []struct {
		name   string
		source string
		want   []int
	}{
		{"all sources", "", []int{900, 300, 200, 100}},
		{"play only", SourcePlay, []int{300, 200, 100}},
		{"simulate only", SourceSimulate, []int{900}},
		{"unknown source", "nope", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs, err := store.LongestRuns(tt.source, 10)
			if err != nil {
				t.Fatalf("LongestRuns() failed: %v", err)
			}
			if len(runs) != len(tt.want) {
				t.Fatalf("got %d runs, expected %d", len(runs), len(tt.want))
			}
			for i, r := range runs {
				if r.Distance != tt.want[i] {
					t.Errorf("run %d distance = %d, expected %d", i, r.Distance, tt.want[i])
				}
			}
		})
	}
}

func TestStoreBestDistance(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestDistance()
	if err != nil {
		t.Fatalf("BestDistance() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best distance 0 for an empty log, got %d", best)
	}

	store.SaveRun(RunRecord{Source: SourcePlay, Distance: 100})
	store.SaveRun(RunRecord{Source: SourcePlay, Distance: 300})
	store.SaveRun(RunRecord{Source: SourcePlay, Distance: 200})

	best, err = store.BestDistance()
	if err != nil {
		t.Fatalf("BestDistance() failed: %v", err)
	}
	if best != 300 {
		t.Errorf("Expected best distance 300, got %d", best)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed on empty log: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Stats() on empty log = %+v", empty)
	}

	store.SaveRun(RunRecord{Source: SourceSimulate, Distance: 100, Ticks: 600, Created: 4})
	store.SaveRun(RunRecord{Source: SourceSimulate, Distance: 300, Ticks: 900, Created: 6})

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 {
		t.Errorf("Runs = %d, expected 2", stats.Runs)
	}
	if stats.BestDistance != 300 {
		t.Errorf("BestDistance = %d, expected 300", stats.BestDistance)
	}
	if stats.AvgDistance != 200 {
		t.Errorf("AvgDistance = %v, expected 200", stats.AvgDistance)
	}
	if stats.MaxCreated != 6 {
		t.Errorf("MaxCreated = %d, expected 6", stats.MaxCreated)
	}
	if stats.TotalTicks != 1500 {
		t.Errorf("TotalTicks = %d, expected 1500", stats.TotalTicks)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Source: SourcePlay, Distance: 100})
	store.SaveRun(RunRecord{Source: SourceSimulate, Distance: 200})

	if err := store.ClearRuns(SourceSimulate); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	runs, _ := store.RecentRuns(10)
	if len(runs) != 1 || runs[0].Source != SourcePlay {
		t.Errorf("Play runs should not be affected by clearing simulate runs, got %v", runs)
	}

	if err := store.ClearRuns(""); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	runs, _ = store.RecentRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected an empty log, got %d runs", len(runs))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
