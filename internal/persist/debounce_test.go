package persist

import (
	"sync"
	"testing"
	"time"

	"github.com/robby/hackswipe/internal/domain"
	"github.com/stretchr/testify/assert"
)

// saveRecorder collects snapshots passed to the saver's save function.
type saveRecorder struct {
	mu    sync.Mutex
	snaps []domain.Snapshot
}

func (r *saveRecorder) save(snap domain.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snaps = append(r.snaps, snap)
}

func (r *saveRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.snaps)
}

func (r *saveRecorder) last() domain.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snaps[len(r.snaps)-1]
}

func snapAt(index int) domain.Snapshot {
	return domain.Snapshot{CurrentIndex: index}
}

func TestSaverCoalescesRecords(t *testing.T) {
	rec := &saveRecorder{}
	s := NewSaver(50*time.Millisecond, rec.save)
	defer s.Stop()

	// A burst of mutations within the window yields exactly one save, of
	// the latest snapshot.
	for i := 1; i <= 5; i++ {
		s.Record(snapAt(i))
		time.Sleep(10 * time.Millisecond)
	}
	assert.Equal(t, 0, rec.count(), "no save while mutations keep arriving")

	assert.Eventually(t, func() bool {
		return rec.count() == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, 5, rec.last().CurrentIndex)

	// Quiet after that: still one.
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 1, rec.count())
}

func TestSaverFlushBypassesDebounce(t *testing.T) {
	rec := &saveRecorder{}
	s := NewSaver(time.Hour, rec.save)
	defer s.Stop()

	s.Record(snapAt(1))
	s.Flush(snapAt(0))
	assert.Equal(t, 1, rec.count())
	assert.Equal(t, 0, rec.last().CurrentIndex)

	// The pending timer was cancelled; nothing fires later.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, rec.count())
}

func TestSaverStopCancelsPending(t *testing.T) {
	rec := &saveRecorder{}
	s := NewSaver(30*time.Millisecond, rec.save)

	s.Record(snapAt(1))
	s.Stop()

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, 0, rec.count())

	// Records after Stop are ignored.
	s.Record(snapAt(2))
	s.Flush(snapAt(3))
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, 0, rec.count())
}
