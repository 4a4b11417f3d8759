package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sky-runner/internal/config"
	"github.com/vovakirdan/sky-runner/internal/core"
	"github.com/vovakirdan/sky-runner/internal/runner"
	"github.com/vovakirdan/sky-runner/internal/storage"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
}

// fallingGame starts the player just above the void so runs end quickly.
func fallingGame() *runner.Game {
	cfg := config.DefaultRunnerConfig()
	cfg.Player.StartY = -59
	cfg.Motion.Gravity = 50
	return runner.New(runner.WithConfig(cfg))
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return mm
}

func tickUntil(t *testing.T, m Model, limit int, done func(Model) bool) Model {
	t.Helper()
	for i := 0; i < limit && !done(m); i++ {
		m = send(t, m, TickMsg{})
	}
	return m
}

func TestKeyMapperMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"space jumps", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump, false},
		{"up jumps", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{"w jumps", runes("w"), core.ActionJump, false},
		{"down hops", tea.KeyMsg{Type: tea.KeyDown}, core.ActionShortJump, false},
		{"j hops", runes("j"), core.ActionShortJump, false},
		{"p pauses", runes("p"), core.ActionPause, false},
		{"r restarts", runes("r"), core.ActionRestart, false},
		{"q quits", runes("q"), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound key", runes("x"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestKeyMapperMenuActions(t *testing.T) {
	km := NewKeyMapper()

	tests := map[string]MenuAction{
		"k":   MenuActionUp,
		"j":   MenuActionDown,
		"b":   MenuActionBack,
		"q":   MenuActionQuit,
		"x":   MenuActionNone,
		"tab": MenuActionRuns,
	}
	for k, want := range tests {
		msg := runes(k)
		if k == "tab" {
			msg = tea.KeyMsg{Type: tea.KeyTab}
		}
		if got := km.MapKeyToMenuAction(msg); got != want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", k, got, want)
		}
	}
}

func TestModelSavesFinishedRun(t *testing.T) {
	store := openTestStore(t)
	m := NewModel(fallingGame(), store, testRuntime(), RunInfo{Preset: config.PresetHard})
	m.Init()

	m = tickUntil(t, m, 2000, func(m Model) bool { return m.RunSaved() })
	if !m.RunSaved() {
		t.Fatal("finished run should be saved")
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 saved run, got %d", len(runs))
	}
	if runs[0].Source != storage.SourcePlay || runs[0].Preset != "hard" || runs[0].Seed != 7 {
		t.Errorf("saved run = %+v", runs[0])
	}
	if !runs[0].FellIntoVoid {
		t.Error("saved run should record the void fall")
	}

	// More ticks after the run finished must not save it again
	for i := 0; i < 10; i++ {
		m = send(t, m, TickMsg{})
	}
	runs, _ = store.RecentRuns(10)
	if len(runs) != 1 {
		t.Errorf("run saved %d times, expected once", len(runs))
	}
}

func TestModelQuitBeforeFirstTickSavesNothing(t *testing.T) {
	store := openTestStore(t)
	m := NewModel(runner.New(), store, testRuntime(), RunInfo{})
	m.Init()

	m = send(t, m, runes("q"))
	if !m.IsQuitting() {
		t.Fatal("q should quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
	runs, _ := store.RecentRuns(10)
	if len(runs) != 0 {
		t.Errorf("expected no saved runs, got %d", len(runs))
	}
}

func TestModelQuitMidRunSavesIt(t *testing.T) {
	store := openTestStore(t)
	m := NewModel(runner.New(), store, testRuntime(), RunInfo{})
	m.Init()
	for i := 0; i < 5; i++ {
		m = send(t, m, TickMsg{})
	}

	m = send(t, m, runes("q"))

	runs, _ := store.RecentRuns(10)
	if len(runs) != 1 || runs[0].Ticks != 5 || runs[0].FellIntoVoid {
		t.Errorf("abandoned run = %+v", runs)
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	store := openTestStore(t)
	game := fallingGame()
	m := NewModel(game, store, testRuntime(), RunInfo{})
	m.Init()

	m = tickUntil(t, m, 2000, func(m Model) bool { return m.State().GameOver })
	if !m.State().GameOver {
		t.Fatal("expected game over")
	}

	m = send(t, m, runes("r"))
	m = send(t, m, TickMsg{})

	if game.Ticks() != 0 || m.State().GameOver {
		t.Errorf("restart should reset the run, ticks=%d state=%+v", game.Ticks(), m.State())
	}
	if m.RunSaved() {
		t.Error("the new run should not be marked as saved")
	}
	runs, _ := store.RecentRuns(10)
	if len(runs) != 1 {
		t.Errorf("restart should save the previous run, got %d runs", len(runs))
	}
}

func TestModelRestartIgnoredWhileRunning(t *testing.T) {
	game := runner.New()
	m := NewModel(game, nil, testRuntime(), RunInfo{})
	m.Init()

	m = send(t, m, TickMsg{})
	m = send(t, m, runes("r"))
	m = send(t, m, TickMsg{})

	if game.Ticks() != 2 {
		t.Errorf("Ticks() = %d, restart must only work after game over", game.Ticks())
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	game := runner.New()
	m := NewModel(game, nil, testRuntime(), RunInfo{})
	m.Init()
	for i := 0; i < 30; i++ {
		m = send(t, m, TickMsg{})
	}

	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if game.Ticks() != 30 {
		t.Errorf("Ticks() = %d after resize, expected the run to continue", game.Ticks())
	}
	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 120x39", m.screen.Width(), m.screen.Height())
	}
}

func TestModelBackNeedsMenu(t *testing.T) {
	pause := runes("p")

	standalone := NewModel(runner.New(), nil, testRuntime(), RunInfo{})
	standalone.Init()
	standalone = send(t, standalone, pause)
	standalone = send(t, standalone, TickMsg{})
	standalone = send(t, standalone, tea.KeyMsg{Type: tea.KeyEsc})
	if standalone.BackToMenu() {
		t.Error("standalone model has no menu to go back to")
	}

	session := NewModel(runner.New(), nil, testRuntime(), RunInfo{}).withMenu()
	session.Init()
	session = send(t, session, pause)
	session = send(t, session, TickMsg{})
	session = send(t, session, tea.KeyMsg{Type: tea.KeyEsc})
	if !session.BackToMenu() {
		t.Error("paused session model should go back to the menu")
	}
}

func TestModelViewHasHelpFooter(t *testing.T) {
	m := NewModel(runner.New(), nil, testRuntime(), RunInfo{})
	m.Init()
	m = send(t, m, TickMsg{})

	view := m.View()
	if !strings.Contains(view, "Distance") {
		t.Error("view should contain the HUD")
	}
	if !strings.Contains(view, "jump") {
		t.Error("view should contain the key help")
	}
}

func TestMenuSelection(t *testing.T) {
	menu := NewMenuModel(testRuntime(), 0)

	next, _ := menu.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m := next.(MenuModel)

	if m.Selected() == nil || m.Selected().Preset != config.PresetEasy {
		t.Fatalf("Selected() = %v, expected the easy preset", m.Selected())
	}

	next, _ = NewMenuModel(testRuntime(), 0).Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsRuns() {
		t.Error("tab should open the run log")
	}

	next, _ = NewMenuModel(testRuntime(), 0).Update(tea.KeyMsg{Type: tea.KeyUp})
	if next.(MenuModel).cursor != 0 {
		t.Error("cursor must not move above the first item")
	}
}

func TestMenuViewListsPresets(t *testing.T) {
	view := NewMenuModel(testRuntime(), 1234).View()
	for _, want := range []string{"Classic", "Easy", "Hard", "Snappy", "Best: 1234"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view is missing %q", want)
		}
	}
}

func TestRunsModelViews(t *testing.T) {
	store := openTestStore(t)
	store.SaveRun(storage.RunRecord{Source: storage.SourcePlay, Distance: 111})
	store.SaveRun(storage.RunRecord{Source: storage.SourceSSH, Distance: 999})

	m := NewRunsModel(store, 100, 30)
	if len(m.runs) != 2 || m.runs[0].Distance != 999 {
		t.Fatalf("longest view runs = %+v", m.runs)
	}
	if !strings.Contains(m.View(), "LONGEST RUNS") {
		t.Error("default view should be the longest runs")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(RunsModel)
	if m.runs[0].Distance != 999 || m.runs[1].Distance != 111 || !strings.Contains(m.View(), "RECENT RUNS") {
		t.Errorf("recent view runs = %+v", m.runs)
	}

	next, _ = m.Update(runes("b"))
	if !next.(RunsModel).IsGoingBack() {
		t.Error("b should go back")
	}
}

func TestRunsModelEmpty(t *testing.T) {
	m := NewRunsModel(nil, 80, 24)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty log should show a hint")
	}
}

func TestSessionModelFlow(t *testing.T) {
	store := openTestStore(t)
	s := NewSessionModel(store, config.DefaultRunnerConfig(), testRuntime(), nil)

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if s.screen != screenGame || s.gameModel == nil {
		t.Fatal("selecting a preset should start a run")
	}
	if s.gameModel.info.Source != storage.SourceSSH || s.gameModel.info.Preset != config.PresetClassic {
		t.Errorf("run info = %+v", s.gameModel.info)
	}

	next, _ = s.Update(TickMsg{})
	next, _ = next.Update(runes("p"))
	next, _ = next.Update(TickMsg{})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.screen != screenMenu {
		t.Fatal("back from a paused run should return to the menu")
	}

	runs, _ := store.RecentRuns(10)
	if len(runs) != 1 || runs[0].Source != storage.SourceSSH {
		t.Errorf("leaving the run should save it, got %+v", runs)
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyTab})
	s = next.(SessionModel)
	if s.screen != screenRuns {
		t.Error("tab should open the run log")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "hello")
	s.SetColored(0, 1, '#', core.ColorGreen)

	out := RenderScreen(s)
	if !strings.Contains(out, "hello") || !strings.Contains(out, "#") {
		t.Errorf("RenderScreen() = %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
}
