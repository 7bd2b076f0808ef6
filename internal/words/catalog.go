// Package words loads and filters the pool of selectable secret words.
//
// The word source is a newline-delimited text file with one word per line;
// on comma-separated lines only the first field counts. Words are normalized
// to uppercase and filtered by length bounds. When no file is configured, a
// small embedded list keeps the game playable out of the box.
package words

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
)

//go:embed default_words.txt
var defaultWords string

// ErrEmptyCatalog is returned when a secret word is requested from a catalog
// that has no words left after filtering.
var ErrEmptyCatalog = errors.New("words: catalog is empty")

// Stats describes how the source list was curated.
type Stats struct {
	Kept     int // words that passed the length filter
	Dropped  int // words removed by the length filter
	Shortest int // shortest kept word length (0 when empty)
	Longest  int // longest kept word length (0 when empty)
}

// Catalog is an immutable pool of uppercase candidate words.
type Catalog struct {
	words []string
	stats Stats
}

// Load reads a word list from path and filters it to words with
// charMin <= length <= charMax. A charMax <= 0 leaves the upper bound
// unrestricted. An empty path loads the embedded default list.
//
// An unreadable file is an error; a list where nothing passes the filter is
// not — callers must check Len before asking for a secret word.
func Load(path string, charMin, charMax int) (*Catalog, error) {
	if path == "" {
		c, err := parse(strings.NewReader(defaultWords), charMin, charMax)
		if err != nil {
			return nil, fmt.Errorf("words: cannot read embedded word list: %w", err)
		}
		return c, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: cannot read word list: %w", err)
	}
	defer f.Close()

	c, err := parse(f, charMin, charMax)
	if err != nil {
		return nil, fmt.Errorf("words: cannot read word list: %w", err)
	}
	return c, nil
}

// parse builds a catalog from a line-oriented word source.
// A scan failure is an error: a half-read list must not silently pass for a
// smaller catalog.
func parse(r io.Reader, charMin, charMax int) (*Catalog, error) {
	c := &Catalog{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		// First field only, for comma-separated sources
		if i := strings.IndexByte(line, ','); i >= 0 {
			line = line[:i]
		}
		word := strings.ToUpper(strings.TrimSpace(line))
		if word == "" {
			continue
		}

		n := len([]rune(word))
		if n < charMin || (charMax > 0 && n > charMax) {
			c.stats.Dropped++
			continue
		}

		c.words = append(c.words, word)
		c.stats.Kept++
		if c.stats.Shortest == 0 || n < c.stats.Shortest {
			c.stats.Shortest = n
		}
		if n > c.stats.Longest {
			c.stats.Longest = n
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return c, nil
}

// Len returns the number of selectable words.
func (c *Catalog) Len() int {
	return len(c.words)
}

// Words returns a copy of the selectable words.
func (c *Catalog) Words() []string {
	out := make([]string, len(c.words))
	copy(out, c.words)
	return out
}

// Stats returns curation statistics for the catalog.
func (c *Catalog) Stats() Stats {
	return c.stats
}

// Pick returns one word chosen uniformly at random using the given source.
// Fails with ErrEmptyCatalog when nothing survived filtering.
func (c *Catalog) Pick(rng *rand.Rand) (string, error) {
	if len(c.words) == 0 {
		return "", ErrEmptyCatalog
	}
	return c.words[rng.Intn(len(c.words))], nil
}
