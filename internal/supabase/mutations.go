package supabase

import (
	"context"
	"fmt"

	"github.com/machinebox/graphql"
	"github.com/robby/hackswipe/internal/domain"
)

// Save upserts the snapshot for the identity: update the existing row, insert
// when none exists. Last write wins per identity; redundant calls are safe.
func (c *Client) Save(ctx context.Context, identity string, snap domain.Snapshot) error {
	updated, err := c.updateSession(ctx, identity, snap)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	if updated {
		return nil
	}

	if err := c.insertSession(ctx, identity, snap); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// updateSession updates the user's row and reports whether one existed.
func (c *Client) updateSession(ctx context.Context, identity string, snap domain.Snapshot) (bool, error) {
	req := graphql.NewRequest(`
		mutation($userId: String!, $snapshot: JSON!) {
			updateswipe_sessionsCollection(
				set: {snapshot: $snapshot}
				filter: {user_id: {eq: $userId}}
				atMost: 1
			) {
				affectedCount
			}
		}
	`)

	req.Var("userId", identity)
	req.Var("snapshot", snap)

	var resp struct {
		UpdateSwipeSessionsCollection struct {
			AffectedCount int `json:"affectedCount"`
		} `json:"updateswipe_sessionsCollection"`
	}

	if err := c.makeRequest(ctx, req, &resp); err != nil {
		return false, err
	}
	return resp.UpdateSwipeSessionsCollection.AffectedCount > 0, nil
}

// insertSession creates the user's row on first save.
func (c *Client) insertSession(ctx context.Context, identity string, snap domain.Snapshot) error {
	req := graphql.NewRequest(`
		mutation($userId: String!, $snapshot: JSON!) {
			insertIntoswipe_sessionsCollection(
				objects: [{user_id: $userId, snapshot: $snapshot}]
			) {
				affectedCount
			}
		}
	`)

	req.Var("userId", identity)
	req.Var("snapshot", snap)

	var resp struct {
		InsertIntoSwipeSessionsCollection struct {
			AffectedCount int `json:"affectedCount"`
		} `json:"insertIntoswipe_sessionsCollection"`
	}

	if err := c.makeRequest(ctx, req, &resp); err != nil {
		return err
	}
	if resp.InsertIntoSwipeSessionsCollection.AffectedCount == 0 {
		return fmt.Errorf("insert affected no rows")
	}
	return nil
}
