package persist

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/robby/hackswipe/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot() domain.Snapshot {
	p := domain.Project{Title: "Proj", Summary: "Summary"}
	return domain.Snapshot{
		Liked:        []domain.Project{p},
		Passed:       nil,
		History:      []domain.HistoryEntry{{Project: p, Liked: true}},
		CurrentIndex: 1,
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	ctx := context.Background()
	snap := testSnapshot()
	require.NoError(t, s.Save(ctx, "local", snap))

	loaded, err := s.Load(ctx, "local")
	require.NoError(t, err)
	assert.Equal(t, snap.Liked, loaded.Liked)
	assert.Equal(t, snap.History, loaded.History)
	assert.Equal(t, 1, loaded.CurrentIndex)
}

func TestFileStoreLoadAbsent(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = s.Load(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestFileStoreSaveIsUpsert(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "local", testSnapshot()))

	updated := testSnapshot()
	updated.CurrentIndex = 5
	require.NoError(t, s.Save(ctx, "local", updated))

	loaded, err := s.Load(ctx, "local")
	require.NoError(t, err)
	assert.Equal(t, 5, loaded.CurrentIndex)
}

func TestFileStoreIdentitiesAreIsolated(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	a := testSnapshot()
	b := testSnapshot()
	b.CurrentIndex = 9

	require.NoError(t, s.Save(ctx, "alice", a))
	require.NoError(t, s.Save(ctx, "bob", b))

	la, err := s.Load(ctx, "alice")
	require.NoError(t, err)
	lb, err := s.Load(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, 1, la.CurrentIndex)
	assert.Equal(t, 9, lb.CurrentIndex)
}

func TestFileStoreCorruptFile(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "local.json"), []byte("{not json"), 0o644))

	_, err = s.Load(context.Background(), "local")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSnapshot)
}

func TestNewFileStoreRequiresDir(t *testing.T) {
	_, err := NewFileStore("  ")
	assert.Error(t, err)
}
