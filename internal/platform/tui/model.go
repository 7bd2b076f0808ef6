// Package tui provides the Bubble Tea integration for wordly.
// It handles the terminal UI loop, key mapping, and screen rendering;
// all game rules live in the game package.
package tui

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mvasilenko/wordly/internal/core"
	"github.com/mvasilenko/wordly/internal/game"
	"github.com/mvasilenko/wordly/internal/words"
)

// PlayModel is the Bubble Tea model for one interactive game.
// The game is turn-based, so there is no tick loop: the model only reacts
// to key presses and window resizes.
type PlayModel struct {
	session    *game.Session
	catalog    *words.Catalog
	rng        *rand.Rand
	screen     *core.Screen
	config     core.RuntimeConfig
	maxGuesses int
	keys       KeyMap
	help       help.Model
	notice     string
	quitting   bool
}

// NewPlayModel creates a model with a freshly picked secret word.
// Fails when the catalog is empty.
func NewPlayModel(catalog *words.Catalog, cfg core.RuntimeConfig, maxGuesses int) (PlayModel, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	secret, err := catalog.Pick(rng)
	if err != nil {
		return PlayModel{}, err
	}

	return PlayModel{
		session:    game.NewSession(secret, maxGuesses),
		catalog:    catalog,
		rng:        rng,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		maxGuesses: maxGuesses,
		keys:       DefaultKeyMap(),
		help:       help.New(),
	}, nil
}

// Session exposes the current session, mainly for tests.
func (m PlayModel) Session() *game.Session {
	return m.session
}

// Init implements tea.Model.
func (m PlayModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart) && m.session.Over():
		m.restart()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		if _, err := m.session.Submit(); err != nil {
			m.notice = submitNotice(err, m.session.WordLen())
		} else {
			m.notice = ""
		}
		return m, nil

	case key.Matches(msg, m.keys.Erase):
		m.session.Erase()
		m.notice = ""
		return m, nil
	}

	// Everything else feeds the guess buffer
	if msg.Type == tea.KeyRunes {
		for _, r := range msg.Runes {
			m.session.Type(r)
		}
		m.notice = ""
	}

	return m, nil
}

// restart begins a new session with a fresh secret word.
func (m *PlayModel) restart() {
	secret, err := m.catalog.Pick(m.rng)
	if err != nil {
		// The catalog was non-empty at startup, so this cannot happen
		return
	}
	m.session = game.NewSession(secret, m.maxGuesses)
	m.notice = ""
}

// View renders the current state to a string for display.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.session.Render(m.screen, game.RenderInfo{
		Notice:      m.notice,
		Debug:       m.config.Debug,
		CatalogSize: m.catalog.Len(),
	})

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// submitNotice converts a submit error into the in-place re-prompt message.
// A submit after the game ended is silently ignored.
func submitNotice(err error, wordLen int) string {
	if errors.Is(err, game.ErrGuessLength) {
		return fmt.Sprintf("Guess must be %d letters. Guess again.", wordLen)
	}
	return ""
}

// Run starts the Bubble Tea program for a single local game. When the game
// finished, the shareable result card is printed after the alt screen closes.
func Run(catalog *words.Catalog, cfg core.RuntimeConfig, maxGuesses int) error {
	model, err := NewPlayModel(catalog, cfg, maxGuesses)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(PlayModel); ok && m.Session().Over() {
		fmt.Println(m.Session().ShareText())
	}
	return nil
}
