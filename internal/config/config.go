// Package config provides YAML-based configuration loading for wordly.
package config

// Config contains all user-tunable game parameters.
type Config struct {
	Words WordsConfig `yaml:"words"`
	Game  GameConfig  `yaml:"game"`
}

// WordsConfig controls the word catalog.
type WordsConfig struct {
	// File is the path to a newline-delimited word list.
	// Empty means the embedded default list.
	File string `yaml:"file"`

	// CharMin is the minimum secret word length.
	CharMin int `yaml:"char_min"`

	// CharMax is the maximum secret word length. Zero means unbounded.
	CharMax int `yaml:"char_max"`
}

// GameConfig controls session rules.
type GameConfig struct {
	// MaxGuesses is the guess budget per session.
	MaxGuesses int `yaml:"max_guesses"`
}
