package persist

import (
	"sync"
	"time"

	"github.com/robby/hackswipe/internal/domain"
)

// DefaultDebounce is how long the saver waits after the last mutation before
// writing. Rapid swipes within the window coalesce into one save.
const DefaultDebounce = time.Second

// Saver schedules debounced saves of session snapshots. Each Record cancels
// any pending timer and starts a new one, so the save function runs only once
// the mutations have quiesced. The snapshot is captured at Record time: the
// timer goroutine never touches the live session, which stays owned by the
// event loop. Flush bypasses the debounce (used on reset), and Stop tears the
// saver down on logout or exit without aborting an in-flight save.
type Saver struct {
	mu      sync.Mutex
	timer   *time.Timer
	delay   time.Duration
	save    func(domain.Snapshot)
	latest  domain.Snapshot
	stopped bool
}

// NewSaver creates a saver that invokes save after delay of quiet. The save
// function runs on a timer goroutine; it must be safe to call from there.
func NewSaver(delay time.Duration, save func(domain.Snapshot)) *Saver {
	return &Saver{delay: delay, save: save}
}

// Record notes the latest snapshot and restarts the debounce window.
func (s *Saver) Record(snap domain.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.latest = snap
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.fire)
}

// Flush cancels any pending timer and saves snap immediately.
func (s *Saver) Flush(snap domain.Snapshot) {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.latest = snap
	save := s.save
	s.mu.Unlock()

	save(snap)
}

// Stop cancels any pending save and prevents further scheduling.
func (s *Saver) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Saver) fire() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	snap := s.latest
	save := s.save
	s.mu.Unlock()

	save(snap)
}
