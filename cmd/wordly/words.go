package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mvasilenko/wordly/internal/words"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Show word catalog statistics",
	Long: `Load the word catalog with the current settings and report how many
words survived the length filter.

Examples:
  wordly words
  wordly words --filepath ./words.txt --char-min 4 --char-max 0`,
	Run: runWords,
}

func init() {
	wordsCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	wordsCmd.Flags().StringVar(&flagFilepath, "filepath", "", "Path to word list file (empty = embedded list)")
	wordsCmd.Flags().IntVar(&flagCharMin, "char-min", 5, "Minimum secret word length")
	wordsCmd.Flags().IntVar(&flagCharMax, "char-max", 5, "Maximum secret word length (0 = unbounded)")
}

func runWords(cmd *cobra.Command, args []string) {
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

	source := cfg.Words.File
	if source == "" {
		source = "(embedded list)"
	}

	stats := catalog.Stats()
	total := stats.Kept + stats.Dropped

	fmt.Printf("Word catalog - %s\n", source)
	fmt.Println()
	fmt.Printf("  %-10s  %d\n", "Total", total)
	fmt.Printf("  %-10s  %d\n", "Kept", stats.Kept)
	fmt.Printf("  %-10s  %d\n", "Dropped", stats.Dropped)

	if stats.Kept > 0 {
		fmt.Printf("  %-10s  %d..%d chars\n", "Lengths", stats.Shortest, stats.Longest)
	} else {
		fmt.Println()
		fmt.Println("Nothing passed the length filter - the game cannot start with these settings.")
	}
}
