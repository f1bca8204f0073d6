package supabase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/machinebox/graphql"
	"github.com/robby/hackswipe/internal/domain"
	"github.com/robby/hackswipe/internal/persist"
)

// Load fetches the saved snapshot for the identity from the swipe_sessions
// table. Returns persist.ErrNoSnapshot when the user has never saved.
func (c *Client) Load(ctx context.Context, identity string) (domain.Snapshot, error) {
	req := graphql.NewRequest(`
		query($userId: String!) {
			swipe_sessionsCollection(filter: {user_id: {eq: $userId}}, first: 1) {
				edges {
					node {
						snapshot
					}
				}
			}
		}
	`)

	req.Var("userId", identity)

	var resp struct {
		SwipeSessionsCollection struct {
			Edges []struct {
				Node struct {
					Snapshot json.RawMessage `json:"snapshot"`
				} `json:"node"`
			} `json:"edges"`
		} `json:"swipe_sessionsCollection"`
	}

	if err := c.makeRequest(ctx, req, &resp); err != nil {
		return domain.Snapshot{}, fmt.Errorf("failed to load session: %w", err)
	}

	edges := resp.SwipeSessionsCollection.Edges
	if len(edges) == 0 || len(edges[0].Node.Snapshot) == 0 {
		return domain.Snapshot{}, persist.ErrNoSnapshot
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(edges[0].Node.Snapshot, &snap); err != nil {
		return domain.Snapshot{}, fmt.Errorf("failed to decode session: %w", err)
	}
	return snap, nil
}
