package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/robby/hackswipe/internal/domain"
)

// ProjectModel is a read-only card view for a project opened from the liked
// or history lists. No swiping; links still work.
type ProjectModel struct {
	project  domain.Project
	viewport viewport.Model
	width    int
	height   int
}

// NewProjectModel creates a read-only project view.
func NewProjectModel(project domain.Project) ProjectModel {
	vp := viewport.New(60, 10)
	vp.SetContent(summaryContent(project, vp.Width))
	return ProjectModel{project: project, viewport: vp}
}

// Init initializes the project model.
func (m ProjectModel) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update handles messages.
func (m ProjectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = m.cardWidth() - 4
		h := m.height - chromeHeight
		if h < minViewportRow {
			h = minViewportRow
		}
		m.viewport.Height = h
		m.viewport.SetContent(summaryContent(m.project, m.viewport.Width))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q", "esc":
			return m, func() tea.Msg { return closeViewMsg{} }
		case "j", "down":
			m.viewport.LineDown(1)
		case "k", "up":
			m.viewport.LineUp(1)
		case "o":
			openLink(m.project.ProjectURL)
		case "g":
			openLink(m.project.GitHub)
		case "y":
			openLink(m.project.YouTube)
		case "d":
			openLink(m.project.Demo)
		}
	}

	return m, nil
}

func (m ProjectModel) cardWidth() int {
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

// View renders the read-only card.
func (m ProjectModel) View() string {
	width := m.cardWidth()

	var b strings.Builder
	b.WriteString(dimStyle.Render("[q] back") + "\n")
	b.WriteString(cardMeta(m.project, width-4))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n\n")
	b.WriteString(cardFooter(m.project, width-4))

	return cardBorderStyle.Width(width - 2).Render(b.String())
}
