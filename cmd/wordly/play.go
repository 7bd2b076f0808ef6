package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mvasilenko/wordly/internal/config"
	"github.com/mvasilenko/wordly/internal/core"
	"github.com/mvasilenko/wordly/internal/platform/tui"
	"github.com/mvasilenko/wordly/internal/words"
)

var (
	flagConfig     string
	flagFilepath   string
	flagCharMin    int
	flagCharMax    int
	flagMaxGuesses int
	flagDebug      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game in the current terminal.

Controls:
  Letters    - Type your guess
  Enter      - Submit guess
  Backspace  - Erase a letter
  R          - Play again (after the game ends)
  Esc/Ctrl+C - Quit

A guess with the wrong length is rejected on the spot and does not cost a
turn. Any word of the right length is accepted, dictionary or not.

Examples:
  wordly play
  wordly play --char-min 4 --char-max 7
  wordly play --filepath ./words.txt --max-guesses 8
  wordly play --debug --seed 42`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagFilepath, "filepath", "", "Path to word list file (empty = embedded list)")
	playCmd.Flags().IntVar(&flagCharMin, "char-min", 5, "Minimum secret word length")
	playCmd.Flags().IntVar(&flagCharMax, "char-max", 5, "Maximum secret word length (0 = unbounded)")
	playCmd.Flags().IntVar(&flagMaxGuesses, "max-guesses", 6, "Number of guesses per game")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Reveal the secret word and catalog statistics")
}

// resolveSettings layers CLI flags over the loaded YAML config.
// A flag the user actually set wins; otherwise the config value stands.
func resolveSettings(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("filepath") {
		cfg.Words.File = flagFilepath
	}
	if cmd.Flags().Changed("char-min") {
		cfg.Words.CharMin = flagCharMin
	}
	if cmd.Flags().Changed("char-max") {
		cfg.Words.CharMax = flagCharMax
	}
	if cmd.Flags().Changed("max-guesses") {
		cfg.Game.MaxGuesses = flagMaxGuesses
	}

	if cfg.Words.CharMin <= 0 {
		cfg.Words.CharMin = 1
	}
	if cfg.Game.MaxGuesses <= 0 {
		if cmd.Flags().Changed("max-guesses") {
			return cfg, fmt.Errorf("max-guesses must be positive, got %d", cfg.Game.MaxGuesses)
		}
		// Partial config files fall back to the built-in budget
		cfg.Game.MaxGuesses = config.Default().Game.MaxGuesses
	}

	return cfg, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := resolveSettings(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	catalog, err := words.Load(cfg.Words.File, cfg.Words.CharMin, cfg.Words.CharMax)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if catalog.Len() == 0 {
		fmt.Fprintf(os.Stderr, "Error: no words between %d and %d characters in the list\n",
			cfg.Words.CharMin, cfg.Words.CharMax)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtimeCfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
		Debug:   flagDebug,
	}

	if err := tui.Run(catalog, runtimeCfg, cfg.Game.MaxGuesses); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
