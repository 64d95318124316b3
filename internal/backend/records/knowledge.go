package records

import "context"

// Source is one knowledge-base source document.
type Source struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Kind    string  `json:"kind"`
	URL     *string `json:"url"`
	Status  string  `json:"status"`
	AddedAt string  `json:"addedAt"`
}

// SourceRef is the related source embedded in entity rows.
type SourceRef struct {
	Title string `json:"title"`
}

// Entity is one extracted knowledge-base entity.
type Entity struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Source       SourceRef `json:"source"`
	MentionCount int       `json:"mentionCount"`
	UpdatedAt    *string   `json:"updatedAt"`
}

const sourcesQuery = `
query Sources($first: Int!) {
  sourcesCollection(first: $first) {
    edges {
      node {
        id
        title
        kind
        url
        status
        addedAt
      }
    }
  }
}`

const entitiesQuery = `
query Entities($first: Int!) {
  entitiesCollection(first: $first) {
    edges {
      node {
        id
        name
        category
        source { title }
        mentionCount
        updatedAt
      }
    }
  }
}`

// ListSources fetches the knowledge-base sources view snapshot.
func (c *Client) ListSources(ctx context.Context) ([]Source, error) {
	return list(ctx, c, "sources", sourcesQuery, field[Source]("sourcesCollection"))
}

// ListEntities fetches the knowledge-base entities view snapshot.
func (c *Client) ListEntities(ctx context.Context) ([]Entity, error) {
	return list(ctx, c, "entities", entitiesQuery, field[Entity]("entitiesCollection"))
}
