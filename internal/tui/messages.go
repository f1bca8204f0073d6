// Package tui provides Bubble Tea models for the interactive TUI.
package tui

import "github.com/robby/hackswipe/internal/domain"

// ErrorMsg is emitted when an unrecoverable error occurs.
type ErrorMsg struct {
	Err error
}

// QuitMsg is emitted when the user requests to quit.
type QuitMsg struct{}

// snapshotLoadedMsg carries the result of the initial snapshot load. found is
// false for brand-new sessions, including load failures, which are treated
// the same way.
type snapshotLoadedMsg struct {
	snap  domain.Snapshot
	found bool
}

// advanceMsg fires when the swipe exit delay elapses and the queue should
// move to the next project.
type advanceMsg struct{}

// openLikedMsg switches to the liked projects screen.
type openLikedMsg struct{}

// openHistoryMsg switches to the history screen.
type openHistoryMsg struct{}

// viewProjectMsg opens a read-only view of a project from a review list.
type viewProjectMsg struct {
	project domain.Project
}

// closeViewMsg returns from the read-only project view to the previous list.
type closeViewMsg struct{}

// backToDeckMsg returns to the deck from a review screen.
type backToDeckMsg struct{}

// logoutMsg tears down the identity and reverts to an empty local session.
type logoutMsg struct{}
