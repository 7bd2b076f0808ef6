// wordly is a terminal word-guessing game.
//
// Usage:
//
//	wordly play              - Play a game in the current terminal
//	wordly words             - Show word catalog statistics
//	wordly serve             - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible secret selection
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordly",
	Short: "Wordly - Guess the word in your terminal",
	Long: `Wordly is a terminal word-guessing game. A secret word is drawn from a
curated word list; you get a fixed number of guesses and per-letter feedback
after each one, plus a keyboard heatmap of confirmed and ruled-out letters.

Available commands:
  play     - Play a game in the current terminal
  words    - Show word catalog statistics
  serve    - Start SSH server for remote play

Examples:
  wordly play
  wordly play --char-min 4 --char-max 7 --max-guesses 8
  wordly play --filepath ./my-words.txt --debug
  wordly words
  wordly serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(serveCmd)
}
