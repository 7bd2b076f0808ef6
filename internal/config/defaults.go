package config

import (
	_ "embed"
)

//go:embed defaults/wordly.yaml
var defaultYAML []byte

// Default returns the built-in configuration: five-letter words, six guesses.
func Default() Config {
	return Config{
		Words: WordsConfig{
			File:    "",
			CharMin: 5,
			CharMax: 5,
		},
		Game: GameConfig{
			MaxGuesses: 6,
		},
	}
}
