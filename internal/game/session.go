package game

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// State is the coarse session state.
type State int

const (
	StatePlaying State = iota
	StateWon
	StateExhausted
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

var (
	// ErrGuessLength signals a guess whose length does not match the secret
	// word. The turn is not consumed; the player just guesses again.
	ErrGuessLength = errors.New("game: guess has the wrong length")

	// ErrSessionOver signals a guess submitted after the session ended.
	ErrSessionOver = errors.New("game: session is over")
)

// Turn is one scored guess.
type Turn struct {
	Guess    string
	Verdicts []Verdict
}

// Symbols returns the compact square-per-character replay string for the
// turn. The emoji squares are meant for plain text output; they are two
// terminal columns wide and do not fit fixed-width cell grids.
func (t Turn) Symbols() string {
	var sb strings.Builder
	for _, v := range t.Verdicts {
		sb.WriteRune(v.Rune())
	}
	return sb.String()
}

// Session is one game: a fixed secret word, a guess budget, the scored turn
// history and the letter memory. It is created at game start, mutated by
// guesses, and discarded when the game ends.
type Session struct {
	secret     string
	maxGuesses int
	remaining  int
	turns      []Turn
	memory     *LetterMemory
	state      State
	buffer     []rune // guess being typed, not yet submitted
}

// NewSession starts a session for the given secret word and guess budget.
// The secret is expected to be uppercase (the catalog normalizes it).
func NewSession(secret string, maxGuesses int) *Session {
	return &Session{
		secret:     strings.ToUpper(secret),
		maxGuesses: maxGuesses,
		remaining:  maxGuesses,
		memory:     NewLetterMemory(),
	}
}

// Secret returns the session's secret word.
func (s *Session) Secret() string { return s.secret }

// WordLen returns the required guess length.
func (s *Session) WordLen() int { return len([]rune(s.secret)) }

// State returns the current session state.
func (s *Session) State() State { return s.state }

// Over reports whether the session has ended, won or lost.
func (s *Session) Over() bool { return s.state != StatePlaying }

// Remaining returns the number of guesses left.
func (s *Session) Remaining() int { return s.remaining }

// MaxGuesses returns the session's guess budget.
func (s *Session) MaxGuesses() int { return s.maxGuesses }

// Turns returns the scored guesses so far, oldest first.
func (s *Session) Turns() []Turn { return s.turns }

// Memory returns the session's accumulated letter memory.
func (s *Session) Memory() *LetterMemory { return s.memory }

// ShareText returns the spoiler-free result card for a finished game: a
// score header plus one symbol row per turn. Empty while still playing.
func (s *Session) ShareText() string {
	if !s.Over() {
		return ""
	}

	score := fmt.Sprintf("%d/%d", len(s.turns), s.maxGuesses)
	if s.state == StateExhausted {
		score = fmt.Sprintf("X/%d", s.maxGuesses)
	}

	lines := make([]string, 0, len(s.turns)+1)
	lines = append(lines, "Wordly "+score)
	for _, t := range s.turns {
		lines = append(lines, t.Symbols())
	}
	return strings.Join(lines, "\n")
}

// Guess scores one submitted word. The input is trimmed and uppercased; any
// string of the right length is accepted, dictionary membership is not
// checked. A wrong-length guess returns ErrGuessLength and costs nothing.
//
// Every accepted guess consumes one unit of the budget. Matching the secret
// ends the session as Won; draining the budget ends it as Exhausted.
func (s *Session) Guess(raw string) (Turn, error) {
	if s.state != StatePlaying {
		return Turn{}, ErrSessionOver
	}

	word := strings.ToUpper(strings.TrimSpace(raw))
	if n := len([]rune(word)); n != s.WordLen() {
		return Turn{}, fmt.Errorf("%w: got %d characters, want %d", ErrGuessLength, n, s.WordLen())
	}

	turn := Turn{Guess: word, Verdicts: Score(word, s.secret)}
	s.turns = append(s.turns, turn)
	s.memory.Observe(word, turn.Verdicts)
	s.remaining--

	switch {
	case word == s.secret:
		s.state = StateWon
	case s.remaining <= 0:
		s.state = StateExhausted
	}

	return turn, nil
}

// Type appends a letter to the in-progress guess. Non-letters are ignored,
// and typing stops at the secret word's length.
func (s *Session) Type(r rune) {
	if s.state != StatePlaying || len(s.buffer) >= s.WordLen() {
		return
	}
	if !unicode.IsLetter(r) {
		return
	}
	s.buffer = append(s.buffer, unicode.ToUpper(r))
}

// Erase removes the last typed letter, if any.
func (s *Session) Erase() {
	if len(s.buffer) > 0 {
		s.buffer = s.buffer[:len(s.buffer)-1]
	}
}

// Buffer returns the in-progress guess.
func (s *Session) Buffer() string {
	return string(s.buffer)
}

// Submit scores the typed buffer. On success the buffer is cleared; on a
// length error it is kept so the player can finish typing.
func (s *Session) Submit() (Turn, error) {
	turn, err := s.Guess(string(s.buffer))
	if err != nil {
		return turn, err
	}
	s.buffer = s.buffer[:0]
	return turn, nil
}
