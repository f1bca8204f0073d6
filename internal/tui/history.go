package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/robby/hackswipe/internal/domain"
)

// HistoryModel lists every swipe in order with its outcome, for review and
// undo-by-inspection: a passed project can be reopened and its links visited,
// but the decision itself is not mutated.
type HistoryModel struct {
	entries []domain.HistoryEntry
	cursor  int
	offset  int
	width   int
	height  int
}

// NewHistoryModel creates the history screen.
func NewHistoryModel(entries []domain.HistoryEntry) HistoryModel {
	return HistoryModel{entries: entries}
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update handles messages.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q", "esc":
			return m, func() tea.Msg { return backToDeckMsg{} }
		case "j", "down":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
				m.adjustScroll()
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
				m.adjustScroll()
			}
		case "enter":
			if len(m.entries) > 0 {
				project := m.entries[m.cursor].Project
				return m, func() tea.Msg { return viewProjectMsg{project: project} }
			}
		}
	}

	return m, nil
}

func (m *HistoryModel) adjustScroll() {
	visible := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
}

func (m HistoryModel) visibleRows() int {
	rows := m.height - 4
	if rows < 1 {
		return 10
	}
	return rows
}

// View renders the history list.
func (m HistoryModel) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("☰ History (%d)", len(m.entries))))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString(dimStyle.Render("No projects viewed yet. Start swiping!"))
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render("[q] back"))
		return b.String()
	}

	visible := m.visibleRows()
	end := m.offset + visible
	if end > len(m.entries) {
		end = len(m.entries)
	}

	for i := m.offset; i < end; i++ {
		e := m.entries[i]
		marker := passedStatStyle.Render("✗")
		if e.Liked {
			marker = likedStatStyle.Render("♥")
		}
		line := marker + " " + e.Project.Title
		if i == m.cursor {
			b.WriteString(selectedItemStyle.Render("> ") + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("j/k move  enter view  q back"))
	return b.String()
}
