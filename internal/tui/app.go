package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/robby/hackswipe/internal/persist"
	"github.com/robby/hackswipe/internal/session"
)

// AppScreen represents the different screens in the application flow.
type AppScreen int

const (
	ScreenLoading AppScreen = iota
	ScreenDeck
	ScreenLiked
	ScreenHistory
	ScreenProject
)

// AppModel is the root Bubble Tea model that manages screen transitions.
// It owns the session and routes all mutations through it; screen models
// never write session fields directly.
type AppModel struct {
	// Dependencies
	session  *session.Session
	store    persist.Store // nil when persistence is disabled
	saver    *persist.Saver
	identity string
	logger   *slog.Logger
	ctx      context.Context

	// Current state
	currentScreen AppScreen
	currentModel  tea.Model
	err           error

	// Where to return from the read-only project view
	returnScreen AppScreen

	// Cached models to preserve state across screen transitions
	deckModel    *DeckModel
	likedModel   *LikedModel
	historyModel *HistoryModel
}

// NewAppModel creates the root model. store and saver are nil for ephemeral
// sessions; identity is empty for anonymous ones.
func NewAppModel(sess *session.Session, store persist.Store, saver *persist.Saver, identity string, logger *slog.Logger, ctx context.Context) AppModel {
	return AppModel{
		session:       sess,
		store:         store,
		saver:         saver,
		identity:      identity,
		logger:        logger,
		ctx:           ctx,
		currentScreen: ScreenLoading,
	}
}

// Init starts the snapshot load, or goes straight to the deck when there is
// nothing to load.
func (m AppModel) Init() tea.Cmd {
	if m.store == nil {
		return func() tea.Msg { return snapshotLoadedMsg{found: false} }
	}
	return m.loadSnapshot()
}

// Update handles messages and transitions between screens.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global quit handler while no screen is active
		if msg.String() == "ctrl+c" && m.currentModel == nil {
			return m, tea.Quit
		}

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case QuitMsg:
		return m, tea.Quit

	case snapshotLoadedMsg:
		if msg.found {
			m.session.Hydrate(msg.snap)
		}
		deck := NewDeckModel(m.session, m.saver, m.identity != "")
		m.deckModel = &deck
		m.currentModel = m.deckModel
		m.currentScreen = ScreenDeck
		return m, deck.Init()

	case openLikedMsg:
		m.currentScreen = ScreenLiked
		liked := NewLikedModel(m.session.Liked())
		m.likedModel = &liked
		m.currentModel = m.likedModel
		return m, liked.Init()

	case openHistoryMsg:
		m.currentScreen = ScreenHistory
		history := NewHistoryModel(m.session.History())
		m.historyModel = &history
		m.currentModel = m.historyModel
		return m, history.Init()

	case viewProjectMsg:
		m.returnScreen = m.currentScreen
		m.currentScreen = ScreenProject
		project := NewProjectModel(msg.project)
		m.currentModel = project
		return m, project.Init()

	case closeViewMsg:
		// Return to the list the project was opened from
		m.currentScreen = m.returnScreen
		switch m.returnScreen {
		case ScreenHistory:
			m.currentModel = m.historyModel
		default:
			m.currentModel = m.likedModel
		}
		return m, tea.WindowSize()

	case backToDeckMsg:
		m.currentScreen = ScreenDeck
		m.currentModel = m.deckModel
		return m, tea.WindowSize()

	case logoutMsg:
		// Tear down the identity context: stop scheduling saves, drop the
		// store, revert to an empty local session. The remote copy stays.
		if m.saver != nil {
			m.saver.Stop()
		}
		m.saver = nil
		m.store = nil
		m.identity = ""
		m.session.ResetToEmpty()
		m.logger.Info("logged out, switched to anonymous session")

		deck := NewDeckModel(m.session, nil, false)
		m.deckModel = &deck
		m.currentModel = m.deckModel
		m.currentScreen = ScreenDeck
		return m, deck.Init()
	}

	// Delegate to current screen's model
	if m.currentModel != nil {
		var cmd tea.Cmd
		m.currentModel, cmd = m.currentModel.Update(msg)
		// Keep cached models in sync with the active screen
		switch m.currentScreen {
		case ScreenDeck:
			if dm, ok := m.currentModel.(DeckModel); ok {
				m.deckModel = &dm
			}
		case ScreenLiked:
			if lm, ok := m.currentModel.(LikedModel); ok {
				m.likedModel = &lm
			}
		case ScreenHistory:
			if hm, ok := m.currentModel.(HistoryModel); ok {
				m.historyModel = &hm
			}
		}
		return m, cmd
	}

	return m, nil
}

// View renders the current screen.
func (m AppModel) View() string {
	if m.err != nil {
		return ErrorStyle.Render(fmt.Sprintf("Error: %v\n\nPress Ctrl+C to quit", m.err))
	}

	if m.currentModel != nil {
		return m.currentModel.View()
	}

	return "Loading projects...\n\nPress Ctrl+C to quit"
}

// loadSnapshot creates a command to fetch the saved session. Any load
// failure, including no saved snapshot, starts a fresh session rather than
// blocking the UI.
func (m AppModel) loadSnapshot() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.store.Load(m.ctx, m.identity)
		if err != nil {
			if !errors.Is(err, persist.ErrNoSnapshot) {
				m.logger.Warn("loading saved session failed, starting fresh", "error", err)
			}
			return snapshotLoadedMsg{found: false}
		}
		return snapshotLoadedMsg{snap: snap, found: true}
	}
}
