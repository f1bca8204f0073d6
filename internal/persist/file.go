package persist

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/robby/hackswipe/internal/domain"
)

// FileStore persists snapshots as JSON files under a base directory, one file
// per identity. Writes are atomic (temp file + rename) so a crash mid-save
// never corrupts the previous snapshot.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-backed store rooted at dir.
func NewFileStore(dir string) (*FileStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("state directory is required")
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) path(identity string) string {
	return filepath.Join(f.dir, identity+".json")
}

// Load reads the snapshot for identity, returning ErrNoSnapshot when none
// has been saved yet.
func (f *FileStore) Load(_ context.Context, identity string) (domain.Snapshot, error) {
	data, err := os.ReadFile(f.path(identity))
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Snapshot{}, ErrNoSnapshot
		}
		return domain.Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return domain.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}

// Save upserts the snapshot for identity.
func (f *FileStore) Save(_ context.Context, identity string, snap domain.Snapshot) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	path := f.path(identity)
	tmp, err := os.CreateTemp(f.dir, identity+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}
