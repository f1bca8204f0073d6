// Package persist defines the persistence boundary for swipe sessions and
// provides the local JSON-file implementation plus the debounced saver that
// coalesces bursts of swipes into single writes.
package persist

import (
	"context"
	"errors"

	"github.com/robby/hackswipe/internal/domain"
)

// ErrNoSnapshot indicates no saved state exists for the identity. Callers
// treat it as a brand-new session, not a failure.
var ErrNoSnapshot = errors.New("no saved snapshot")

// Store is the adapter the session core requires from a persistence
// collaborator. Save is a best-effort, idempotent upsert; concurrent writers
// for the same identity resolve last-write-wins. No guarantees beyond that
// are assumed.
type Store interface {
	Load(ctx context.Context, identity string) (domain.Snapshot, error)
	Save(ctx context.Context, identity string, snap domain.Snapshot) error
}
