package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/robby/hackswipe/internal/domain"
)

// LikedModel lists the projects the user liked, newest last, and lets them
// reopen one in a read-only view.
type LikedModel struct {
	projects []domain.Project
	cursor   int
	offset   int
	width    int
	height   int
}

// NewLikedModel creates the liked projects screen.
func NewLikedModel(projects []domain.Project) LikedModel {
	return LikedModel{projects: projects}
}

// Init initializes the liked model.
func (m LikedModel) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update handles messages.
func (m LikedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.cursor < len(m.projects)-1 {
				m.cursor++
				m.adjustScroll()
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
				m.adjustScroll()
			}
		case "enter":
			if len(m.projects) > 0 {
				project := m.projects[m.cursor]
				return m, func() tea.Msg { return viewProjectMsg{project: project} }
			}
		}
	}

	return m, nil
}

func (m *LikedModel) adjustScroll() {
	visible := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
}

func (m LikedModel) visibleRows() int {
	rows := m.height - 4
	if rows < 1 {
		return 10
	}
	return rows
}

// View renders the liked list.
func (m LikedModel) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("✦ Liked (%d)", len(m.projects))))
	b.WriteString("\n\n")

	if len(m.projects) == 0 {
		b.WriteString(dimStyle.Render("No projects liked yet. Start swiping!"))
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render("[q] back"))
		return b.String()
	}

	visible := m.visibleRows()
	end := m.offset + visible
	if end > len(m.projects) {
		end = len(m.projects)
	}

	for i := m.offset; i < end; i++ {
		p := m.projects[i]
		line := p.Title
		if p.Prize != "" {
			line += "  " + prizeStyle.Render("🏆")
		}
		if i == m.cursor {
			b.WriteString(selectedItemStyle.Render("> " + line))
		} else {
			b.WriteString(normalItemStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("j/k move  enter view  q back"))
	return b.String()
}
