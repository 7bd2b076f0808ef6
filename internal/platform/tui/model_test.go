package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mvasilenko/wordly/internal/core"
	"github.com/mvasilenko/wordly/internal/game"
	"github.com/mvasilenko/wordly/internal/words"
)

func testCatalog(t *testing.T) *words.Catalog {
	t.Helper()
	c, err := words.Load("", 5, 5)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func testModel(t *testing.T) PlayModel {
	t.Helper()
	m, err := NewPlayModel(testCatalog(t), core.RuntimeConfig{ScreenW: 60, ScreenH: 24, Seed: 42}, 6)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func typeWord(m PlayModel, word string) PlayModel {
	for _, r := range word {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(PlayModel)
	}
	return m
}

func press(m PlayModel, key tea.KeyType) PlayModel {
	next, _ := m.Update(tea.KeyMsg{Type: key})
	return next.(PlayModel)
}

func TestNewPlayModelEmptyCatalogFails(t *testing.T) {
	empty, err := words.Load("", 20, 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewPlayModel(empty, core.DefaultConfig(), 6); err != words.ErrEmptyCatalog {
		t.Fatalf("NewPlayModel with empty catalog = %v, want ErrEmptyCatalog", err)
	}
}

func TestSeededModelsPickSameSecret(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 60, ScreenH: 24, Seed: 7}
	a, err := NewPlayModel(testCatalog(t), cfg, 6)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewPlayModel(testCatalog(t), cfg, 6)
	if err != nil {
		t.Fatal(err)
	}
	if a.Session().Secret() != b.Session().Secret() {
		t.Errorf("seed 7 picked %q and %q", a.Session().Secret(), b.Session().Secret())
	}
}

func TestModelTypeAndSubmit(t *testing.T) {
	m := testModel(t)
	secret := m.Session().Secret()

	m = typeWord(m, secret)
	if m.Session().Buffer() != secret {
		t.Fatalf("buffer = %q, want %q", m.Session().Buffer(), secret)
	}

	m = press(m, tea.KeyEnter)
	if m.Session().State() != game.StateWon {
		t.Errorf("state after guessing the secret = %v, want won", m.Session().State())
	}
}

func TestModelShortSubmitReprompts(t *testing.T) {
	m := testModel(t)

	m = typeWord(m, "ab")
	m = press(m, tea.KeyEnter)

	if m.Session().Remaining() != 6 {
		t.Errorf("remaining = %d, want 6 (no turn consumed)", m.Session().Remaining())
	}
	if !strings.Contains(m.View(), "Guess must be 5 letters") {
		t.Error("re-prompt notice missing from view")
	}
	if m.Session().Buffer() != "AB" {
		t.Errorf("buffer = %q, want AB kept for further typing", m.Session().Buffer())
	}
}

func TestModelBackspaceErases(t *testing.T) {
	m := testModel(t)

	m = typeWord(m, "abc")
	m = press(m, tea.KeyBackspace)
	if m.Session().Buffer() != "AB" {
		t.Errorf("buffer = %q, want AB", m.Session().Buffer())
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	m := testModel(t)

	// The r key types a letter while the game is running
	m = typeWord(m, "r")
	if m.Session().Buffer() != "R" {
		t.Fatalf("buffer = %q, want R (r is a letter during play)", m.Session().Buffer())
	}
	m = press(m, tea.KeyBackspace)

	secret := m.Session().Secret()
	m = typeWord(m, secret)
	m = press(m, tea.KeyEnter)
	if !m.Session().Over() {
		t.Fatal("session should be over")
	}

	m = typeWord(m, "r")
	if m.Session().Over() {
		t.Error("r after game over should start a fresh session")
	}
	if len(m.Session().Turns()) != 0 {
		t.Errorf("fresh session has %d turns", len(m.Session().Turns()))
	}
}

func TestModelQuit(t *testing.T) {
	m := testModel(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(PlayModel)
	if cmd == nil {
		t.Fatal("esc should produce a quit command")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelResize(t *testing.T) {
	m := testModel(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(PlayModel)

	view := m.View()
	if view == "" {
		t.Fatal("view should render after resize")
	}
	if !strings.Contains(view, "W O R D L Y") {
		t.Error("title missing after resize")
	}
}

func TestRenderScreenStylesRuns(t *testing.T) {
	s := core.NewScreen(5, 1)
	s.DrawTextColored(0, 0, "AB", core.ColorGreen)
	s.DrawText(2, 0, "CDE")

	out := RenderScreen(s)
	if !strings.Contains(out, "AB") || !strings.Contains(out, "CDE") {
		t.Errorf("RenderScreen lost content: %q", out)
	}
}
