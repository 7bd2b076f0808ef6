package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mvasilenko/wordly/internal/platform/tui"
	"github.com/mvasilenko/wordly/internal/words"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the wordly SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own single-player game sized to its terminal;
the word catalog is loaded once and shared.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.wordly/host_key

Examples:
  wordly serve                           # Listen on :23234 with auto-generated key
  wordly serve --ssh :2222               # Listen on port 2222
  wordly serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	serveCmd.Flags().StringVar(&flagFilepath, "filepath", "", "Path to word list file (empty = embedded list)")
	serveCmd.Flags().IntVar(&flagCharMin, "char-min", 5, "Minimum secret word length")
	serveCmd.Flags().IntVar(&flagCharMax, "char-max", 5, "Maximum secret word length (0 = unbounded)")
	serveCmd.Flags().IntVar(&flagMaxGuesses, "max-guesses", 6, "Number of guesses per game")
}

func runServe(cmd *cobra.Command, _ []string) {
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

	serverCfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		MaxGuesses:  cfg.Game.MaxGuesses,
	}

	server, err := tui.NewSSHServer(serverCfg, catalog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting wordly SSH server on %s\n", serverCfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
