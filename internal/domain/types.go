// Package domain defines the normalized domain types for hackathon project
// browsing. These types represent the core concepts independent of the scraped
// Devpost data shape and the persistence backend.
package domain

import "strings"

// Project represents one hackathon submission's display-ready data.
// Records are immutable once converted; optional fields are empty strings.
type Project struct {
	Title      string `json:"title"`                // Submission title (always non-empty)
	Summary    string `json:"summary"`              // Assembled long-form summary (always non-empty)
	Hackathon  string `json:"hackathon,omitempty"`  // Hackathon name
	Prize      string `json:"prize,omitempty"`      // Semicolon-joined prize list
	TechStack  string `json:"techStack,omitempty"`  // Comma-joined technology tags
	GitHub     string `json:"github,omitempty"`     // Repository URL
	YouTube    string `json:"youtube,omitempty"`    // Demo video URL
	Demo       string `json:"demo,omitempty"`       // Live demo URL
	Team       string `json:"team,omitempty"`       // Comma-joined team member names
	Date       string `json:"date,omitempty"`       // Submission date, day precision (YYYY-MM-DD)
	ProjectURL string `json:"projectUrl,omitempty"` // Devpost project page URL
}

// Direction is a user swipe decision applied to the current head of the queue.
type Direction int

const (
	// Like marks the current project as liked (swipe right).
	Like Direction = iota
	// Pass skips the current project (swipe left).
	Pass
)

// String returns the direction name for logging.
func (d Direction) String() string {
	if d == Like {
		return "like"
	}
	return "pass"
}

// HistoryEntry is one recorded swipe: the project and whether it was liked.
type HistoryEntry struct {
	Project Project `json:"project"`
	Liked   bool    `json:"liked"`
}

// Snapshot is the persisted mutable session state, keyed by identity.
// The queue itself is never persisted; it is reshuffled client-side from the
// fixed seed on every launch.
type Snapshot struct {
	Liked        []Project      `json:"likedProjects"`
	Passed       []Project      `json:"passedProjects"`
	History      []HistoryEntry `json:"history"`
	CurrentIndex int            `json:"currentIndex"`
}

// YouTubeID extracts a YouTube video identifier from a URL, accepting the
// three common shapes: watch?v=<id>, youtu.be/<id>, and embed/<id>. The
// identifier runs up to the next '&', '?', or '#'. Returns "" when the URL
// carries no resolvable video.
func YouTubeID(url string) string {
	if url == "" {
		return ""
	}

	markers := []string{"youtube.com/watch?v=", "youtu.be/", "youtube.com/embed/"}
	for _, marker := range markers {
		idx := strings.Index(url, marker)
		if idx < 0 {
			continue
		}
		id := url[idx+len(marker):]
		if end := strings.IndexAny(id, "&?#"); end >= 0 {
			id = id[:end]
		}
		if id != "" {
			return id
		}
	}
	return ""
}

// HasVideo reports whether the project carries a resolvable demo video link.
// Used both to partition the queue (video-bearing entries first) and to
// decide whether a video section is rendered.
func (p Project) HasVideo() bool {
	return YouTubeID(p.YouTube) != ""
}
