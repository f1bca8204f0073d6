package session

import (
	"testing"

	"github.com/robby/hackswipe/internal/domain"
	"github.com/robby/hackswipe/internal/shuffle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCorpus() []domain.Project {
	return []domain.Project{
		{Title: "A", Summary: "s", YouTube: "https://youtu.be/aaa"},
		{Title: "B", Summary: "s"},
		{Title: "C", Summary: "s", YouTube: "https://youtu.be/ccc"},
	}
}

// swipe records a decision and immediately completes the advance, the way
// the UI does after the exit delay.
func swipe(s *Session, dir domain.Direction) bool {
	ok := s.Swipe(dir)
	s.Advance()
	return ok
}

func TestNewStartsAtZero(t *testing.T) {
	s := New(testCorpus(), 42)

	assert.Equal(t, 0, s.Index())
	assert.Equal(t, 3, s.Len())
	assert.Empty(t, s.Liked())
	assert.Empty(t, s.Passed())
	assert.Empty(t, s.History())
	assert.False(t, s.Exhausted())

	_, ok := s.Current()
	assert.True(t, ok)
}

func TestQueueMatchesArrange(t *testing.T) {
	corpus := testCorpus()
	s := New(corpus, 42)

	expected := shuffle.Arrange(corpus, 42)
	for i := 0; i < s.Len(); i++ {
		p, ok := s.Current()
		require.True(t, ok)
		assert.Equal(t, expected[i], p)
		require.True(t, swipe(s, domain.Like))
	}
}

func TestSwipeScenario(t *testing.T) {
	// Swiping right then left: liked=[queue[0]], passed=[queue[1]],
	// history records both in order, index == 2.
	corpus := testCorpus()
	s := New(corpus, 42)
	queue := shuffle.Arrange(corpus, 42)

	require.True(t, swipe(s, domain.Like))
	require.True(t, swipe(s, domain.Pass))

	assert.Equal(t, []domain.Project{queue[0]}, s.Liked())
	assert.Equal(t, []domain.Project{queue[1]}, s.Passed())
	require.Len(t, s.History(), 2)
	assert.Equal(t, domain.HistoryEntry{Project: queue[0], Liked: true}, s.History()[0])
	assert.Equal(t, domain.HistoryEntry{Project: queue[1], Liked: false}, s.History()[1])
	assert.Equal(t, 2, s.Index())
}

func TestHistoryInvariant(t *testing.T) {
	s := New(testCorpus(), 42)

	dirs := []domain.Direction{domain.Like, domain.Pass, domain.Like}
	for _, d := range dirs {
		require.True(t, swipe(s, d))
		assert.Equal(t, len(s.History()), len(s.Liked())+len(s.Passed()))
		assert.Equal(t, len(s.History()), s.Index())
	}

	// Filtering history by flag reproduces liked/passed in order.
	var liked, passed []domain.Project
	for _, e := range s.History() {
		if e.Liked {
			liked = append(liked, e.Project)
		} else {
			passed = append(passed, e.Project)
		}
	}
	assert.Equal(t, s.Liked(), liked)
	assert.Equal(t, s.Passed(), passed)
}

func TestSwipePastExhaustionIsNoop(t *testing.T) {
	s := New(testCorpus(), 42)
	for i := 0; i < 3; i++ {
		require.True(t, swipe(s, domain.Pass))
	}
	require.True(t, s.Exhausted())

	assert.False(t, swipe(s, domain.Like))
	assert.Len(t, s.Passed(), 3)
	assert.Empty(t, s.Liked())
	assert.Len(t, s.History(), 3)
	assert.Equal(t, 3, s.Index())
}

func TestSwipeDuringPendingIsDiscarded(t *testing.T) {
	s := New(testCorpus(), 42)

	require.True(t, s.Swipe(domain.Like))
	assert.True(t, s.Pending())

	// A second swipe before the advance must be discarded.
	assert.False(t, s.Swipe(domain.Pass))
	assert.Len(t, s.History(), 1)
	assert.Equal(t, 0, s.Index())

	s.Advance()
	assert.False(t, s.Pending())
	assert.Equal(t, 1, s.Index())

	// And the next swipe applies to the next project.
	assert.True(t, s.Swipe(domain.Pass))
}

func TestAdvanceWithoutSwipeIsNoop(t *testing.T) {
	s := New(testCorpus(), 42)
	s.Advance()
	assert.Equal(t, 0, s.Index())
}

func TestReset(t *testing.T) {
	corpus := testCorpus()
	s := New(corpus, 42)
	require.True(t, swipe(s, domain.Like))
	require.True(t, swipe(s, domain.Pass))

	s.Reset()

	assert.Equal(t, 0, s.Index())
	assert.Empty(t, s.Liked())
	assert.Empty(t, s.Passed())
	assert.Empty(t, s.History())

	// Same seed, same corpus: the queue order is unchanged.
	expected := shuffle.Arrange(corpus, 42)
	first, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, expected[0], first)
}

func TestHydrate(t *testing.T) {
	corpus := testCorpus()
	s := New(corpus, 42)
	queue := shuffle.Arrange(corpus, 42)

	snap := domain.Snapshot{
		Liked:        []domain.Project{queue[0]},
		Passed:       []domain.Project{queue[1]},
		History: []domain.HistoryEntry{
			{Project: queue[0], Liked: true},
			{Project: queue[1], Liked: false},
		},
		CurrentIndex: 2,
	}
	s.Hydrate(snap)

	assert.Equal(t, 2, s.Index())
	assert.Equal(t, snap.Liked, s.Liked())
	assert.Equal(t, snap.Passed, s.Passed())
	assert.Equal(t, snap.History, s.History())

	current, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, queue[2], current)
}

func TestHydrateIndexPastQueueMeansExhausted(t *testing.T) {
	// Persisted index from a larger corpus: no crash, no data loss, the
	// session is simply exhausted.
	s := New(testCorpus(), 42)
	s.Hydrate(domain.Snapshot{CurrentIndex: 99})

	assert.True(t, s.Exhausted())
	_, ok := s.Current()
	assert.False(t, ok)
	assert.False(t, s.Swipe(domain.Like))
	assert.Equal(t, 99, s.Index())
}

func TestEmptyCorpusExhaustedFromStart(t *testing.T) {
	s := New(nil, 42)

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.Index())
	assert.True(t, s.Exhausted())
	assert.Equal(t, 0, s.Remaining())
	assert.False(t, s.Swipe(domain.Like))
}

func TestSnapshotIsACopy(t *testing.T) {
	s := New(testCorpus(), 42)
	require.True(t, swipe(s, domain.Like))

	snap := s.Snapshot()
	require.True(t, swipe(s, domain.Pass))

	// The earlier snapshot must not see the later swipe.
	assert.Len(t, snap.History, 1)
	assert.Equal(t, 1, snap.CurrentIndex)
	assert.Len(t, s.History(), 2)
}

func TestRemaining(t *testing.T) {
	s := New(testCorpus(), 42)
	assert.Equal(t, 3, s.Remaining())
	require.True(t, swipe(s, domain.Pass))
	assert.Equal(t, 2, s.Remaining())
}
