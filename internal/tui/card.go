package tui

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/pkg/browser"
	"github.com/robby/hackswipe/internal/domain"
)

// cardMeta renders the lines above the summary: prize, title, hackathon, and
// video availability.
func cardMeta(p domain.Project, width int) string {
	var b strings.Builder

	if p.Prize != "" {
		b.WriteString(prizeStyle.Render(wordwrap.String("🏆 "+p.Prize, width)))
		b.WriteString("\n")
	}

	b.WriteString(cardTitleStyle.Render(wordwrap.String(p.Title, width)))
	b.WriteString("\n")

	if p.Hackathon != "" {
		b.WriteString(hackathonStyle.Render(p.Hackathon))
		b.WriteString("\n")
	}

	if id := domain.YouTubeID(p.YouTube); id != "" {
		b.WriteString(dimStyle.Render("▶ demo video (y to watch)"))
	} else {
		b.WriteString(dimStyle.Render("no demo video"))
	}

	return b.String()
}

// cardFooter renders the lines below the summary: tech stack, team and date,
// and the available links.
func cardFooter(p domain.Project, width int) string {
	var sections []string

	if p.TechStack != "" {
		var chips []string
		for _, tech := range strings.Split(p.TechStack, ", ") {
			chips = append(chips, techChipStyle.Render("["+tech+"]"))
		}
		sections = append(sections, wordwrap.String(strings.Join(chips, " "), width))
	}

	var meta []string
	if p.Team != "" {
		meta = append(meta, p.Team)
	}
	if p.Date != "" {
		meta = append(meta, p.Date)
	}
	if len(meta) > 0 {
		sections = append(sections, dimStyle.Render(strings.Join(meta, " • ")))
	}

	var links []string
	if p.GitHub != "" {
		links = append(links, "[g]ithub")
	}
	if p.YouTube != "" {
		links = append(links, "[y]outube")
	}
	if p.Demo != "" {
		links = append(links, "[d]emo")
	}
	if p.ProjectURL != "" {
		links = append(links, "[o]n devpost")
	}
	if len(links) > 0 {
		sections = append(sections, dimStyle.Render(strings.Join(links, "  ")))
	}

	return strings.Join(sections, "\n")
}

// summaryContent wraps the summary text for viewport display.
func summaryContent(p domain.Project, width int) string {
	if width < 20 {
		width = 20
	}
	return summaryStyle.Render(wordwrap.String(p.Summary, width))
}

// openLink opens a project URL in the system browser. Empty URLs are ignored;
// open failures are swallowed since the TUI owns the terminal.
func openLink(url string) {
	if url != "" {
		_ = browser.OpenURL(url)
	}
}
