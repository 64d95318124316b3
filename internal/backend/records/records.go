// Package records defines the row shapes displayed by the dashboard and
// the fixed query each view issues against the backend's GraphQL layer.
//
// Rows are read-only: they are fetched once per page visit, held as an
// in-memory snapshot, and discarded on navigation. The backend platform is
// the sole owner of persistence and lifecycle.
package records

import (
	"context"

	"github.com/relaydesk/opsdash/internal/backend/graphql"
)

// rowCap is the static row cap applied to every view query. None of the
// views paginate; the backend truncates beyond this cap.
const rowCap = 100

// Client issues the per-view queries.
type Client struct {
	gql *graphql.Client
}

// NewClient wraps a GraphQL query client.
func NewClient(gql *graphql.Client) *Client {
	return &Client{gql: gql}
}

// collection mirrors the backend's generated connection envelope.
type collection[T any] struct {
	Edges []edge[T] `json:"edges"`
}

type edge[T any] struct {
	Node T `json:"node"`
}

func nodes[T any](c collection[T]) []T {
	out := make([]T, 0, len(c.Edges))
	for _, e := range c.Edges {
		out = append(out, e.Node)
	}
	return out
}

func list[T any](ctx context.Context, c *Client, operation, query string, pick func(data map[string]collection[T]) collection[T]) ([]T, error) {
	var data map[string]collection[T]
	if err := c.gql.Query(ctx, operation, query, map[string]any{"first": rowCap}, &data); err != nil {
		return nil, err
	}
	return nodes(pick(data)), nil
}

func field[T any](name string) func(map[string]collection[T]) collection[T] {
	return func(data map[string]collection[T]) collection[T] {
		return data[name]
	}
}
