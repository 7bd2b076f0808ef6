package game

import (
	"strings"
	"testing"

	"github.com/mvasilenko/wordly/internal/core"
)

func renderToString(s *Session, info RenderInfo) string {
	scr := core.NewScreen(60, 24)
	s.Render(scr, info)
	return scr.String()
}

func TestRenderShowsBoardAndStatus(t *testing.T) {
	s := NewSession("CRANE", 6)
	if _, err := s.Guess("SLATE"); err != nil {
		t.Fatal(err)
	}

	out := renderToString(s, RenderInfo{})
	if !strings.Contains(out, "S L A T E") {
		t.Errorf("scored guess missing from board:\n%s", out)
	}
	if !strings.Contains(out, "5 guesses left") {
		t.Errorf("remaining count missing:\n%s", out)
	}
}

func TestRenderVerdictColorsOnBoard(t *testing.T) {
	s := NewSession("CRANE", 6)
	if _, err := s.Guess("SLATE"); err != nil {
		t.Fatal(err)
	}

	scr := core.NewScreen(60, 24)
	s.Render(scr, RenderInfo{})

	// Find the rendered guess row and check tile colors
	row := -1
	for y := 0; y < scr.Height(); y++ {
		if strings.Contains(scr.Row(y), "S L A T E") {
			row = y
			break
		}
	}
	if row < 0 {
		t.Fatal("guess row not found")
	}

	left := strings.Index(scr.Row(row), "S")
	wantColors := []core.Color{core.ColorGray, core.ColorGray, core.ColorGreen, core.ColorGray, core.ColorGreen}
	for i, want := range wantColors {
		if got := scr.GetCell(left+i*2, row).Color; got != want {
			t.Errorf("tile %d color = %v, want %v", i, got, want)
		}
	}
}

func TestRenderKeyboardHeatmap(t *testing.T) {
	s := NewSession("CRANE", 6)
	if _, err := s.Guess("SLATE"); err != nil {
		t.Fatal(err)
	}

	scr := core.NewScreen(60, 24)
	s.Render(scr, RenderInfo{})

	// Middle keyboard row holds A (hit) and S (miss)
	row := -1
	for y := 0; y < scr.Height(); y++ {
		if strings.Contains(scr.Row(y), "A S D F G H J K L") {
			row = y
			break
		}
	}
	if row < 0 {
		t.Fatal("keyboard row not found")
	}

	left := strings.Index(scr.Row(row), "A")
	if got := scr.GetCell(left, row).Color; got != core.ColorGreen {
		t.Errorf("A key color = %v, want green (hit)", got)
	}
	if got := scr.GetCell(left+2, row).Color; got != core.ColorGray {
		t.Errorf("S key color = %v, want gray (miss)", got)
	}
	if got := scr.GetCell(left+4, row).Color; got != core.ColorWhite {
		t.Errorf("D key color = %v, want white (unguessed)", got)
	}
}

func TestRenderWinAndReplay(t *testing.T) {
	s := NewSession("CRANE", 6)
	mustGuess(t, s, "SLATE")
	mustGuess(t, s, "CRANE")

	out := renderToString(s, RenderInfo{})
	if !strings.Contains(out, "You won in 2 guesses!") {
		t.Errorf("win message missing:\n%s", out)
	}
	// Replay: one compact tile strip per turn, single-width runes only
	if strings.Count(out, "■■■■■") != 2 {
		t.Errorf("turn replay strips missing:\n%s", out)
	}
	if strings.ContainsRune(out, '\U0001F7E9') {
		t.Errorf("replay must not use double-width glyphs on screen:\n%s", out)
	}
}

func TestRenderReplayTileColors(t *testing.T) {
	s := NewSession("CRANE", 6)
	mustGuess(t, s, "SLATE")
	mustGuess(t, s, "CRANE")

	scr := core.NewScreen(60, 24)
	s.Render(scr, RenderInfo{})

	rows := []int{}
	for y := 0; y < scr.Height(); y++ {
		if strings.Contains(scr.Row(y), "■■■■■") {
			rows = append(rows, y)
		}
	}
	if len(rows) != 2 {
		t.Fatalf("found %d replay rows, want 2", len(rows))
	}

	// First strip mirrors the SLATE verdicts, second is the all-green win
	left := strings.IndexRune(scr.Row(rows[0]), '■')
	wantFirst := []core.Color{core.ColorGray, core.ColorGray, core.ColorGreen, core.ColorGray, core.ColorGreen}
	for i, want := range wantFirst {
		if got := scr.GetCell(left+i, rows[0]).Color; got != want {
			t.Errorf("first replay tile %d color = %v, want %v", i, got, want)
		}
	}
	for i := 0; i < 5; i++ {
		if got := scr.GetCell(left+i, rows[1]).Color; got != core.ColorGreen {
			t.Errorf("winning replay tile %d color = %v, want green", i, got)
		}
	}
}

func TestRenderExhaustedDisclosesSecret(t *testing.T) {
	s := NewSession("CRANE", 1)
	mustGuess(t, s, "SLATE")

	out := renderToString(s, RenderInfo{})
	if !strings.Contains(out, "The word was CRANE.") {
		t.Errorf("secret disclosure missing:\n%s", out)
	}
}

func TestRenderDebugLine(t *testing.T) {
	s := NewSession("CRANE", 6)

	out := renderToString(s, RenderInfo{Debug: true, CatalogSize: 123})
	if !strings.Contains(out, "secret: CRANE (5 chars)") {
		t.Errorf("debug secret missing:\n%s", out)
	}
	if !strings.Contains(out, "catalog: 123 words") {
		t.Errorf("debug catalog size missing:\n%s", out)
	}

	if out := renderToString(s, RenderInfo{}); strings.Contains(out, "secret:") {
		t.Error("secret must not leak without debug")
	}
}

func TestRenderNoticeOverridesStatus(t *testing.T) {
	s := NewSession("CRANE", 6)

	out := renderToString(s, RenderInfo{Notice: "Guess must be 5 letters"})
	if !strings.Contains(out, "Guess must be 5 letters") {
		t.Errorf("notice missing:\n%s", out)
	}
}

func TestRenderTinyTerminal(t *testing.T) {
	s := NewSession("CRANE", 6)
	scr := core.NewScreen(20, 5)
	s.Render(scr, RenderInfo{})

	if !strings.Contains(scr.String(), "Terminal too small") {
		t.Error("tiny terminal should show a size warning")
	}
}

func mustGuess(t *testing.T, s *Session, word string) {
	t.Helper()
	if _, err := s.Guess(word); err != nil {
		t.Fatal(err)
	}
}
