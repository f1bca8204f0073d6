// Package supabase provides the cloud persistence adapter for swipe sessions,
// speaking GraphQL to a Supabase project's pg_graphql endpoint. It implements
// a deep module interface - Load and Save hiding the query details.
package supabase

import (
	"context"
	"fmt"
	"strings"

	"github.com/machinebox/graphql"
	"github.com/robby/hackswipe/internal/auth"
)

// Client is a Supabase GraphQL client scoped to one authenticated user.
// It satisfies the persist.Store interface.
type Client struct {
	gql     *graphql.Client
	anonKey string
	token   string
}

// New creates a client for the given Supabase project URL and anon key,
// authenticated with the user's access token.
func New(projectURL, anonKey string, creds auth.Credentials) (*Client, error) {
	if projectURL == "" || anonKey == "" {
		return nil, fmt.Errorf("supabase project URL and anon key are required")
	}

	endpoint := strings.TrimSuffix(projectURL, "/") + "/graphql/v1"

	return &Client{
		gql:     graphql.NewClient(endpoint),
		anonKey: anonKey,
		token:   creds.AccessToken,
	}, nil
}

// makeRequest executes a GraphQL request with the project and user auth
// headers set.
func (c *Client) makeRequest(ctx context.Context, req *graphql.Request, resp interface{}) error {
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+c.token)
	return c.gql.Run(ctx, req, resp)
}
