package records

import "context"

// Contact is one person tracked by the operations team.
type Contact struct {
	ID        string  `json:"id"`
	FullName  string  `json:"fullName"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Company   *string `json:"company"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"createdAt"`
}

// ContactRef is the related contact embedded in other rows.
type ContactRef struct {
	FullName string `json:"fullName"`
}

// Interaction is one recorded touchpoint with a contact.
type Interaction struct {
	ID         string     `json:"id"`
	Contact    ContactRef `json:"contact"`
	Channel    string     `json:"channel"`
	Summary    string     `json:"summary"`
	Sentiment  *string    `json:"sentiment"`
	OccurredAt string     `json:"occurredAt"`
}

// FollowUp is one pending or completed follow-up task.
type FollowUp struct {
	ID        string     `json:"id"`
	Contact   ContactRef `json:"contact"`
	Note      string     `json:"note"`
	Status    string     `json:"status"`
	DueAt     *string    `json:"dueAt"`
	CreatedAt string     `json:"createdAt"`
}

const contactsQuery = `
query Contacts($first: Int!) {
  contactsCollection(first: $first) {
    edges {
      node {
        id
        fullName
        email
        phone
        company
        status
        createdAt
      }
    }
  }
}`

const interactionsQuery = `
query Interactions($first: Int!) {
  interactionsCollection(first: $first) {
    edges {
      node {
        id
        contact { fullName }
        channel
        summary
        sentiment
        occurredAt
      }
    }
  }
}`

const followUpsQuery = `
query FollowUps($first: Int!) {
  followUpsCollection(first: $first) {
    edges {
      node {
        id
        contact { fullName }
        note
        status
        dueAt
        createdAt
      }
    }
  }
}`

// ListContacts fetches the contacts view snapshot.
func (c *Client) ListContacts(ctx context.Context) ([]Contact, error) {
	return list(ctx, c, "contacts", contactsQuery, field[Contact]("contactsCollection"))
}

// ListInteractions fetches the interactions view snapshot.
func (c *Client) ListInteractions(ctx context.Context) ([]Interaction, error) {
	return list(ctx, c, "interactions", interactionsQuery, field[Interaction]("interactionsCollection"))
}

// ListFollowUps fetches the follow-ups view snapshot.
func (c *Client) ListFollowUps(ctx context.Context) ([]FollowUp, error) {
	return list(ctx, c, "followups", followUpsQuery, field[FollowUp]("followUpsCollection"))
}
