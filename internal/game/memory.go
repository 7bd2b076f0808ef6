package game

import "sort"

// LetterMemory accumulates which letters have been confirmed present (Hits)
// or absent (Misses) over the course of one session. Both sets only grow:
// once a letter lands in a set it stays there until the session ends. The
// sets are independent unions, so nothing prevents a letter from appearing
// in both. The memory feeds the keyboard heatmap and nothing else.
type LetterMemory struct {
	hits   map[rune]struct{}
	misses map[rune]struct{}
}

// NewLetterMemory creates an empty letter memory.
func NewLetterMemory() *LetterMemory {
	return &LetterMemory{
		hits:   make(map[rune]struct{}),
		misses: make(map[rune]struct{}),
	}
}

// Observe folds one scored turn into the memory. Correct and Present letters
// join Hits, Absent letters join Misses.
func (m *LetterMemory) Observe(guess string, verdicts []Verdict) {
	for i, r := range []rune(guess) {
		if i >= len(verdicts) {
			return
		}
		switch verdicts[i] {
		case VerdictCorrect, VerdictPresent:
			m.hits[r] = struct{}{}
		case VerdictAbsent:
			m.misses[r] = struct{}{}
		}
	}
}

// Hit reports whether the letter has ever scored Correct or Present.
func (m *LetterMemory) Hit(r rune) bool {
	_, ok := m.hits[r]
	return ok
}

// Miss reports whether the letter has ever scored Absent.
func (m *LetterMemory) Miss(r rune) bool {
	_, ok := m.misses[r]
	return ok
}

// Hits returns the hit letters in alphabetical order.
func (m *LetterMemory) Hits() []rune {
	return sorted(m.hits)
}

// Misses returns the missed letters in alphabetical order.
func (m *LetterMemory) Misses() []rune {
	return sorted(m.misses)
}

func sorted(set map[rune]struct{}) []rune {
	out := make([]rune, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
