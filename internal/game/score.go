package game

import "strings"

// Score compares a guess against the secret word and returns one verdict per
// guessed character, in position order. Both words must have the same length
// (session input validation guarantees this).
//
// Each position is judged independently: an exact match is Correct, a
// character found anywhere in the secret is Present, anything else is Absent.
// The membership test does not consume secret letters, so a guess with
// repeated characters can collect several Present or Correct verdicts from a
// single occurrence in the secret word.
func Score(guess, secret string) []Verdict {
	g := []rune(guess)
	s := []rune(secret)

	verdicts := make([]Verdict, len(g))
	for i, r := range g {
		switch {
		case r == s[i]:
			verdicts[i] = VerdictCorrect
		case strings.ContainsRune(secret, r):
			verdicts[i] = VerdictPresent
		default:
			verdicts[i] = VerdictAbsent
		}
	}
	return verdicts
}
