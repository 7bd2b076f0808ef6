package game

import (
	"fmt"

	"github.com/mvasilenko/wordly/internal/core"
)

// Keyboard rows for the letter heatmap.
var keyboardRows = []string{
	"QWERTYUIOP",
	"ASDFGHJKL",
	"ZXCVBNM",
}

// RenderInfo carries display-only context the session does not own.
type RenderInfo struct {
	Notice      string // transient message, e.g. a wrong-length warning
	Debug       bool   // disclose the secret word and catalog size
	CatalogSize int
}

// Render draws the session into the screen buffer: title, guess board,
// keyboard heatmap, status line, and on game over the turn replay.
func (s *Session) Render(dst *core.Screen, info RenderInfo) {
	minH := s.maxGuesses + 12
	if dst.Width() < 24 || dst.Height() < minH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	dst.DrawTextCentered(1, "W O R D L Y")

	y := 3
	s.renderBoard(dst, y)
	y += s.maxGuesses + 1

	s.renderKeyboard(dst, y)
	y += len(keyboardRows) + 1

	s.renderStatus(dst, y, info.Notice)
	y += 2

	if s.Over() {
		for _, t := range s.turns {
			s.renderReplayRow(dst, y, t)
			y++
		}
	}

	if info.Debug {
		debug := fmt.Sprintf("secret: %s (%d chars) · catalog: %d words", s.secret, s.WordLen(), info.CatalogSize)
		dst.DrawTextColored(1, dst.Height()-1, debug, core.ColorCyan)
	}
}

// renderBoard draws one row per budgeted guess: scored turns in verdict
// colors, then the row being typed, then empty placeholder rows.
func (s *Session) renderBoard(dst *core.Screen, top int) {
	rowW := s.WordLen()*2 - 1
	left := (dst.Width() - rowW) / 2

	for row := 0; row < s.maxGuesses; row++ {
		y := top + row
		switch {
		case row < len(s.turns):
			t := s.turns[row]
			for i, r := range []rune(t.Guess) {
				dst.SetCell(left+i*2, y, r, verdictColor(t.Verdicts[i]))
			}
		case row == len(s.turns) && !s.Over():
			typed := []rune(s.Buffer())
			for i := 0; i < s.WordLen(); i++ {
				if i < len(typed) {
					dst.SetCell(left+i*2, y, typed[i], core.ColorBrightWhite)
				} else {
					dst.SetCell(left+i*2, y, '_', core.ColorGray)
				}
			}
		default:
			for i := 0; i < s.WordLen(); i++ {
				dst.SetCell(left+i*2, y, '·', core.ColorGray)
			}
		}
	}
}

// renderKeyboard draws the QWERTY heatmap. Letters that ever hit are green,
// letters that ever missed are dimmed, the rest stay neutral. A letter in
// both sets shows as a hit.
func (s *Session) renderKeyboard(dst *core.Screen, top int) {
	for row, letters := range keyboardRows {
		rowW := len(letters)*2 - 1
		left := (dst.Width() - rowW) / 2
		y := top + row

		for i, r := range letters {
			c := core.ColorWhite
			switch {
			case s.memory.Hit(r):
				c = core.ColorGreen
			case s.memory.Miss(r):
				c = core.ColorGray
			}
			dst.SetCell(left+i*2, y, r, c)
		}
	}
}

// renderStatus draws the one-line game status under the keyboard.
func (s *Session) renderStatus(dst *core.Screen, y int, notice string) {
	switch {
	case notice != "":
		dst.DrawTextCenteredColored(y, notice, core.ColorRed)
	case s.state == StateWon:
		dst.DrawTextCenteredColored(y, fmt.Sprintf("You won in %d guesses!", len(s.turns)), core.ColorBrightGreen)
		dst.DrawTextCentered(y+1, "Press r to play again, esc to quit")
	case s.state == StateExhausted:
		dst.DrawTextCenteredColored(y, fmt.Sprintf("Out of guesses! The word was %s.", s.secret), core.ColorRed)
		dst.DrawTextCentered(y+1, "Press r to play again, esc to quit")
	default:
		plural := "guesses"
		if s.remaining == 1 {
			plural = "guess"
		}
		dst.DrawTextCentered(y, fmt.Sprintf("%d %s left", s.remaining, plural))
	}
}

// renderReplayRow draws one finished turn as a centered strip of verdict
// tiles. Single-width block runes keep cell alignment; the emoji tokens in
// Turn.Symbols are wide and would skew the grid.
func (s *Session) renderReplayRow(dst *core.Screen, y int, t Turn) {
	left := (dst.Width() - len(t.Verdicts)) / 2
	for i, v := range t.Verdicts {
		dst.SetCell(left+i, y, '■', verdictColor(v))
	}
}

// verdictColor maps a verdict to its tile color.
func verdictColor(v Verdict) core.Color {
	switch v {
	case VerdictCorrect:
		return core.ColorGreen
	case VerdictPresent:
		return core.ColorYellow
	default:
		return core.ColorGray
	}
}
