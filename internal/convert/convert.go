// Package convert reshapes scraped Devpost records into the corpus the app
// consumes. It assembles a long-form summary from whatever sections the
// scrape captured, canonicalizes the demo video URL, and drops records that
// end up without a title or summary so malformed entries never reach the
// session.
package convert

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/robby/hackswipe/internal/domain"
)

// Raw is one scraped Devpost record. Fields mirror the scraper's output;
// anything may be missing.
type Raw struct {
	Title           string   `json:"title"`
	Tagline         string   `json:"tagline"`
	AISummary       string   `json:"aiSummary"`
	WhatItDoes      string   `json:"whatItDoes"`
	Inspiration     string   `json:"inspiration"`
	HowWeBuiltIt    string   `json:"howWeBuiltIt"`
	Challenges      string   `json:"challenges"`
	Accomplishments string   `json:"accomplishments"`
	WhatWeLearned   string   `json:"whatWeLearned"`
	WhatsNext       string   `json:"whatsNext"`
	FullDescription string   `json:"fullDescription"`
	Hackathon       string   `json:"hackathon"`
	Prizes          []string `json:"prizes"`
	BuiltWith       []string `json:"builtWith"`
	GithubLinks     []string `json:"githubLinks"`
	YoutubeLinks    []string `json:"youtubeLinks"`
	DemoURL         string   `json:"demoUrl"`
	Team            []Member `json:"team"`
	SubmittedDate   string   `json:"submittedDate"`
	ProjectURL      string   `json:"projectUrl"`
}

// Member is a scraped team member entry.
type Member struct {
	Name string `json:"name"`
}

var (
	ideaHeaderRe = regexp.MustCompile(`(?i)IDEA SUMMARY[:\s]*`)
	techHeaderRe = regexp.MustCompile(`(?i)TECHNICAL HIGHLIGHTS[:\s]*`)
	headingRe    = regexp.MustCompile(`(?m)^#+\s*`)
	numberingRe  = regexp.MustCompile(`(?m)^\d+\.\s*`)
	blankRunsRe  = regexp.MustCompile(`\n{3,}`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// dedupePrefixLen is how many leading characters of a section are matched
// against already-collected text to decide it is a duplicate.
const dedupePrefixLen = 50

// cleanSynopsis strips markdown emphasis, scraper section headers, heading
// markers, and list numbering from the AI-generated synopsis.
func cleanSynopsis(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = ideaHeaderRe.ReplaceAllString(s, "")
	s = techHeaderRe.ReplaceAllString(s, "")
	s = headingRe.ReplaceAllString(s, "")
	s = numberingRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// section is one labeled summary part in its fixed assembly order.
type section struct {
	label string
	text  string
}

func (r Raw) sections() []section {
	return []section{
		{"What it does: ", r.WhatItDoes},
		{"Inspiration: ", r.Inspiration},
		{"How it was built: ", r.HowWeBuiltIt},
		{"Challenges: ", r.Challenges},
		{"Accomplishments: ", r.Accomplishments},
		{"What we learned: ", r.WhatWeLearned},
		{"What's next: ", r.WhatsNext},
	}
}

// buildSummary concatenates the AI synopsis and the labeled sections, in
// fixed order, skipping any section whose leading text already appears in
// what has been collected. Falls back to the tagline or long description
// when no sections are present.
func buildSummary(r Raw) string {
	var parts []string

	if synopsis := cleanSynopsis(r.AISummary); synopsis != "" {
		parts = append(parts, synopsis)
	}

	for _, sec := range r.sections() {
		text := strings.TrimSpace(sec.text)
		if text == "" || isDuplicate(parts, text) {
			continue
		}
		parts = append(parts, sec.label+text)
	}

	summary := strings.Join(parts, "\n\n")
	if summary == "" {
		summary = r.Tagline
	}
	if summary == "" {
		summary = r.FullDescription
	}

	summary = strings.ReplaceAll(summary, "**", "")
	summary = blankRunsRe.ReplaceAllString(summary, "\n\n")
	return strings.TrimSpace(summary)
}

// isDuplicate reports whether the first dedupePrefixLen characters of text
// already appear in any collected part.
func isDuplicate(parts []string, text string) bool {
	prefix := text
	if len(prefix) > dedupePrefixLen {
		prefix = prefix[:dedupePrefixLen]
	}
	for _, p := range parts {
		if strings.Contains(p, prefix) {
			return true
		}
	}
	return false
}

// canonicalVideoURL picks a single video URL from the scraped links: a direct
// watch or short URL wins; an embed-only link is converted to canonical watch
// form.
func canonicalVideoURL(links []string) string {
	for _, link := range links {
		if strings.Contains(link, "youtube.com/watch") || strings.Contains(link, "youtu.be/") {
			return link
		}
	}
	if len(links) > 0 {
		if id := domain.YouTubeID(links[0]); id != "" {
			return "https://www.youtube.com/watch?v=" + id
		}
	}
	return ""
}

// cleanPrizes normalizes whitespace, drops the bare "Winner" marker, and
// joins the rest with semicolons.
func cleanPrizes(prizes []string) string {
	var kept []string
	for _, p := range prizes {
		p = strings.TrimSpace(whitespaceRe.ReplaceAllString(p, " "))
		if p == "" || p == "Winner" {
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, "; ")
}

func teamNames(members []Member) string {
	var names []string
	for _, m := range members {
		if m.Name != "" {
			names = append(names, m.Name)
		}
	}
	return strings.Join(names, ", ")
}

// truncateDate reduces a full timestamp to day precision.
func truncateDate(ts string) string {
	if idx := strings.Index(ts, "T"); idx >= 0 {
		return ts[:idx]
	}
	return ts
}

// Project converts one scraped record. ok is false when the record lacks a
// title or ends up with an empty summary; such records are dropped so the
// corpus invariant (non-empty title and summary) holds.
func Project(r Raw) (domain.Project, bool) {
	title := strings.TrimSpace(r.Title)
	summary := buildSummary(r)
	if title == "" || summary == "" {
		return domain.Project{}, false
	}

	var github string
	if len(r.GithubLinks) > 0 {
		github = r.GithubLinks[0]
	}

	return domain.Project{
		Title:      title,
		Summary:    summary,
		Hackathon:  r.Hackathon,
		Prize:      cleanPrizes(r.Prizes),
		TechStack:  strings.Join(r.BuiltWith, ", "),
		GitHub:     github,
		YouTube:    canonicalVideoURL(r.YoutubeLinks),
		Demo:       r.DemoURL,
		Team:       teamNames(r.Team),
		Date:       truncateDate(r.SubmittedDate),
		ProjectURL: r.ProjectURL,
	}, true
}

// Corpus converts all records, dropping the malformed ones.
func Corpus(raws []Raw) []domain.Project {
	projects := make([]domain.Project, 0, len(raws))
	for _, r := range raws {
		if p, ok := Project(r); ok {
			projects = append(projects, p)
		}
	}
	return projects
}

// File reads a scraped JSON array from inPath and writes the converted corpus
// to outPath. Returns how many projects were written.
func File(inPath, outPath string) (int, error) {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return 0, fmt.Errorf("read scraped data: %w", err)
	}

	var raws []Raw
	if err := json.Unmarshal(data, &raws); err != nil {
		return 0, fmt.Errorf("decode scraped data: %w", err)
	}

	projects := Corpus(raws)
	out, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("encode corpus: %w", err)
	}
	out = append(out, '\n')

	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return 0, fmt.Errorf("write corpus: %w", err)
	}
	return len(projects), nil
}
