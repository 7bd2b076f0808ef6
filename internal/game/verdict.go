// Package game contains the word-guessing rules: per-character guess scoring,
// the accumulated letter memory behind the keyboard heatmap, and the session
// turn loop. It has no rendering or terminal dependencies beyond drawing into
// a core.Screen buffer.
package game

// Verdict classifies one guessed character at a fixed position.
type Verdict int

const (
	VerdictAbsent  Verdict = iota // character does not occur in the secret word
	VerdictPresent                // character occurs elsewhere in the secret word
	VerdictCorrect                // character matches the secret at this position
)

// String returns a human-readable name for the verdict.
func (v Verdict) String() string {
	switch v {
	case VerdictAbsent:
		return "Absent"
	case VerdictPresent:
		return "Present"
	case VerdictCorrect:
		return "Correct"
	default:
		return "Unknown"
	}
}

// Rune returns the display token for the verdict: a green square for Correct,
// a yellow square for Present, a white square for Absent.
func (v Verdict) Rune() rune {
	switch v {
	case VerdictCorrect:
		return '\U0001F7E9'
	case VerdictPresent:
		return '\U0001F7E8'
	default:
		return '⬜'
	}
}
