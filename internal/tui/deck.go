package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/robby/hackswipe/internal/domain"
	"github.com/robby/hackswipe/internal/persist"
	"github.com/robby/hackswipe/internal/session"
)

// advanceDelay is how long a swiped card stays on screen before the queue
// advances. Input during the delay is discarded, so at most one swipe applies
// per displayed project.
const advanceDelay = 300 * time.Millisecond

// Layout constants
const (
	chromeHeight   = 14 // Header, card meta, footer, help line
	minCardWidth   = 40
	maxCardWidth   = 90
	minViewportRow = 3
)

// DeckModel is the main swipe view: one project card at a time, like or pass.
type DeckModel struct {
	// Dependencies
	session *session.Session
	saver   *persist.Saver // nil when persistence is disabled

	// UI components
	keymap   KeyMap
	help     HelpModel
	viewport viewport.Model

	// View state
	width        int
	height       int
	showHelp     bool
	confirmReset bool
	flash        domain.Direction // Rendered while the advance is pending
	loggedIn     bool
}

// NewDeckModel creates the deck over an initialized session. saver may be nil
// for ephemeral sessions.
func NewDeckModel(sess *session.Session, saver *persist.Saver, loggedIn bool) DeckModel {
	vp := viewport.New(60, 10) // Resized on WindowSizeMsg
	m := DeckModel{
		session:  sess,
		saver:    saver,
		keymap:   DefaultKeyMap(),
		help:     NewHelpModel(DefaultKeyMap()),
		viewport: vp,
		loggedIn: loggedIn,
	}
	m.refreshCard()
	return m
}

// Init initializes the deck model.
func (m DeckModel) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update handles messages.
func (m DeckModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeViewport()
		m.refreshCard()
		return m, nil

	case advanceMsg:
		m.session.Advance()
		if m.saver != nil {
			m.saver.Record(m.session.Snapshot())
		}
		m.refreshCard()
		m.viewport.GotoTop()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

// handleKeyPress processes keyboard input.
func (m DeckModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Help overlay
	if m.showHelp {
		if msg.String() == "?" || msg.String() == "q" || msg.String() == "esc" {
			m.showHelp = false
		}
		return m, nil
	}

	// Reset confirmation
	if m.confirmReset {
		switch msg.String() {
		case "y", "Y":
			m.confirmReset = false
			m.session.Reset()
			// Reset bypasses the debounce and writes immediately.
			if m.saver != nil {
				m.saver.Flush(m.session.Snapshot())
			}
			m.refreshCard()
			m.viewport.GotoTop()
			return m, nil
		case "n", "N", "esc":
			m.confirmReset = false
			return m, nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keymap.Like):
		return m.swipe(domain.Like)

	case key.Matches(msg, m.keymap.Pass):
		return m.swipe(domain.Pass)

	case key.Matches(msg, m.keymap.Down):
		m.viewport.LineDown(1)
		return m, nil

	case key.Matches(msg, m.keymap.Up):
		m.viewport.LineUp(1)
		return m, nil

	case key.Matches(msg, m.keymap.Liked):
		return m, func() tea.Msg { return openLikedMsg{} }

	case key.Matches(msg, m.keymap.History):
		return m, func() tea.Msg { return openHistoryMsg{} }

	case key.Matches(msg, m.keymap.Reset):
		m.confirmReset = true
		return m, nil

	case key.Matches(msg, m.keymap.Logout):
		if m.loggedIn {
			return m, func() tea.Msg { return logoutMsg{} }
		}
		return m, nil

	case key.Matches(msg, m.keymap.OpenProject):
		if p, ok := m.session.Current(); ok {
			openLink(p.ProjectURL)
		}
		return m, nil

	case key.Matches(msg, m.keymap.OpenGitHub):
		if p, ok := m.session.Current(); ok {
			openLink(p.GitHub)
		}
		return m, nil

	case key.Matches(msg, m.keymap.OpenVideo):
		if p, ok := m.session.Current(); ok {
			openLink(p.YouTube)
		}
		return m, nil

	case key.Matches(msg, m.keymap.OpenDemo):
		if p, ok := m.session.Current(); ok {
			openLink(p.Demo)
		}
		return m, nil
	}

	return m, nil
}

// swipe records the decision and schedules the advance after the exit delay.
// Swipes during the delay or past exhaustion are no-ops.
func (m DeckModel) swipe(dir domain.Direction) (tea.Model, tea.Cmd) {
	if !m.session.Swipe(dir) {
		return m, nil
	}
	m.flash = dir
	return m, tea.Tick(advanceDelay, func(time.Time) tea.Msg {
		return advanceMsg{}
	})
}

// resizeViewport recomputes the summary viewport dimensions.
func (m *DeckModel) resizeViewport() {
	w := m.cardWidth()
	m.viewport.Width = w - 4

	h := m.height - chromeHeight
	if h < minViewportRow {
		h = minViewportRow
	}
	m.viewport.Height = h
}

func (m DeckModel) cardWidth() int {
	w := m.width
	if w == 0 {
		w = 80
	}
	if w < minCardWidth {
		return minCardWidth
	}
	if w > maxCardWidth {
		return maxCardWidth
	}
	return w
}

// refreshCard loads the current project's summary into the viewport.
func (m *DeckModel) refreshCard() {
	if p, ok := m.session.Current(); ok {
		m.viewport.SetContent(summaryContent(p, m.viewport.Width))
	} else {
		m.viewport.SetContent("")
	}
}

// View renders the deck.
func (m DeckModel) View() string {
	width := m.cardWidth()

	header := m.renderHeader(width)

	if m.showHelp {
		return header + "\n" + m.help.View(width)
	}

	if m.confirmReset {
		prompt := warningStyle.Render("Reset progress?") + "\n\n" +
			"This clears all liked projects and history.\n\n" +
			dimStyle.Render("[y] reset  [n] cancel")
		return header + "\n\n" + prompt
	}

	p, ok := m.session.Current()
	if !ok && !m.session.Pending() {
		return header + "\n\n" + m.renderEndScreen()
	}
	if m.session.Pending() {
		// The swiped card is on its way out; keep rendering it.
		p = m.session.History()[len(m.session.History())-1].Project
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(cardMeta(p, width-4))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n\n")
	b.WriteString(cardFooter(p, width-4))
	b.WriteString("\n")
	b.WriteString(m.renderStatusLine())

	return cardBorderStyle.Width(width - 2).Render(b.String())
}

// renderHeader renders the top bar: app name, progress stats, identity.
func (m DeckModel) renderHeader(width int) string {
	left := TitleStyle.Render("HackSwipe")

	stats := fmt.Sprintf("%s %d  %s %d  %s",
		likedStatStyle.Render("♥"), len(m.session.Liked()),
		passedStatStyle.Render("✗"), len(m.session.Passed()),
		dimStyle.Render(fmt.Sprintf("%d left", m.session.Remaining())))

	mode := dimStyle.Render("local")
	if m.loggedIn {
		mode = dimStyle.Render("synced")
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(stats) - lipgloss.Width(mode) - 8
	if padding < 1 {
		padding = 1
	}

	return left + strings.Repeat(" ", padding) + stats + "  " + mode
}

// renderStatusLine renders the swipe flash or the short key hints.
func (m DeckModel) renderStatusLine() string {
	if m.session.Pending() {
		if m.flash == domain.Like {
			return likeFlashStyle.Render("LIKED ♥")
		}
		return passFlashStyle.Render("PASSED ✗")
	}
	return dimStyle.Render("←/h pass  →/l like  j/k scroll  ? help")
}

// renderEndScreen renders the exhausted state.
func (m DeckModel) renderEndScreen() string {
	var b strings.Builder
	b.WriteString(cardTitleStyle.Render("You've seen all projects!"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("You liked %d out of %d projects.\n\n",
		len(m.session.Liked()), m.session.Len()))
	b.WriteString(dimStyle.Render("[L] liked projects  [H] history  [r] start over  [q] quit"))
	return b.String()
}
