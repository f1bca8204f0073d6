// Package session owns the mutable swipe state: the ordered project queue,
// the current position, the liked and passed lists, and the full interaction
// history. All mutations funnel through the methods here; presentation code
// never writes fields directly. A single event loop (the Bubble Tea program)
// delivers events sequentially, so no locking is needed.
package session

import (
	"github.com/robby/hackswipe/internal/domain"
	"github.com/robby/hackswipe/internal/shuffle"
)

// Session is the per-identity swipe state machine.
//
// Invariants outside the advance window:
//
//	len(history) == len(liked) + len(passed) == currentIndex
//
// liked and passed are disjoint, and filtering history by its liked flag
// reproduces each in order.
type Session struct {
	corpus []domain.Project
	seed   int

	queue   []domain.Project
	current int

	liked   []domain.Project
	passed  []domain.Project
	history []domain.HistoryEntry

	// pending is true between a recorded swipe and its index advance. A
	// second swipe arriving in that window is discarded, so at most one
	// swipe applies per displayed project.
	pending bool
}

// New builds a session over corpus: video-bearing projects shuffled first,
// the rest appended, both deterministically from seed. The session starts at
// index 0 with empty liked/passed/history.
func New(corpus []domain.Project, seed int) *Session {
	return &Session{
		corpus: corpus,
		seed:   seed,
		queue:  shuffle.Arrange(corpus, seed),
	}
}

// Current returns the project at the head of the queue, or ok=false when the
// session is exhausted or an advance is pending from a prior swipe.
func (s *Session) Current() (domain.Project, bool) {
	if s.current >= len(s.queue) {
		return domain.Project{}, false
	}
	return s.queue[s.current], true
}

// Exhausted reports whether every project has been swiped. An empty corpus is
// exhausted from initialization.
func (s *Session) Exhausted() bool {
	return s.current >= len(s.queue)
}

// Pending reports whether a swipe has been recorded but not yet advanced.
func (s *Session) Pending() bool {
	return s.pending
}

// Swipe records a decision against the current project. It returns false,
// changing nothing, when the session is exhausted or a previous swipe has not
// advanced yet. The caller must follow a successful Swipe with exactly one
// Advance.
func (s *Session) Swipe(dir domain.Direction) bool {
	if s.pending || s.current >= len(s.queue) {
		return false
	}

	project := s.queue[s.current]
	s.history = append(s.history, domain.HistoryEntry{Project: project, Liked: dir == domain.Like})
	if dir == domain.Like {
		s.liked = append(s.liked, project)
	} else {
		s.passed = append(s.passed, project)
	}
	s.pending = true
	return true
}

// Advance completes the pending swipe by moving to the next project. It is a
// no-op unless a swipe is pending, so the increment is observable exactly
// once per swipe.
func (s *Session) Advance() {
	if !s.pending {
		return
	}
	s.current++
	s.pending = false
}

// Hydrate overwrites liked, passed, history, and the current index from a
// previously persisted snapshot. The queue is left as freshly shuffled; if
// the saved index exceeds the queue length because the corpus shrank, the
// session is simply exhausted.
func (s *Session) Hydrate(snap domain.Snapshot) {
	s.liked = append([]domain.Project(nil), snap.Liked...)
	s.passed = append([]domain.Project(nil), snap.Passed...)
	s.history = append([]domain.HistoryEntry(nil), snap.History...)
	s.current = snap.CurrentIndex
	s.pending = false
}

// Reset clears all progress and rebuilds the queue with the same seed, so the
// order is identical unless the corpus changed.
func (s *Session) Reset() {
	s.queue = shuffle.Arrange(s.corpus, s.seed)
	s.current = 0
	s.liked = nil
	s.passed = nil
	s.history = nil
	s.pending = false
}

// ResetToEmpty reverts to a fresh anonymous session on logout. The remote
// copy, if any, is untouched.
func (s *Session) ResetToEmpty() {
	s.Reset()
}

// Snapshot captures the persistable state. Slices are copied so later swipes
// do not mutate an in-flight save.
func (s *Session) Snapshot() domain.Snapshot {
	return domain.Snapshot{
		Liked:        append([]domain.Project(nil), s.liked...),
		Passed:       append([]domain.Project(nil), s.passed...),
		History:      append([]domain.HistoryEntry(nil), s.history...),
		CurrentIndex: s.current,
	}
}

// Liked returns the liked projects in swipe order.
func (s *Session) Liked() []domain.Project {
	return s.liked
}

// Passed returns the passed projects in swipe order.
func (s *Session) Passed() []domain.Project {
	return s.passed
}

// History returns the full interaction log in swipe order.
func (s *Session) History() []domain.HistoryEntry {
	return s.history
}

// Len returns the queue length.
func (s *Session) Len() int {
	return len(s.queue)
}

// Remaining returns how many projects are left to swipe, counting a pending
// one as not yet consumed.
func (s *Session) Remaining() int {
	if s.current >= len(s.queue) {
		return 0
	}
	return len(s.queue) - s.current
}

// Index returns the current queue position.
func (s *Session) Index() int {
	return s.current
}
