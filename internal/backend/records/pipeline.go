package records

import "context"

// IngestionItem is one document waiting in, or finished with, the
// ingestion queue.
type IngestionItem struct {
	ID          string  `json:"id"`
	FileName    string  `json:"fileName"`
	MimeType    *string `json:"mimeType"`
	Status      string  `json:"status"`
	SubmittedAt string  `json:"submittedAt"`
	ProcessedAt *string `json:"processedAt"`
}

// AnalysisRun is one execution of a backend analysis job.
type AnalysisRun struct {
	ID          string  `json:"id"`
	Kind        string  `json:"kind"`
	Status      string  `json:"status"`
	ItemCount   int     `json:"itemCount"`
	TriggeredBy *string `json:"triggeredBy"`
	StartedAt   string  `json:"startedAt"`
	FinishedAt  *string `json:"finishedAt"`
}

// FeedbackEvent is one piece of operator feedback on dashboard content.
type FeedbackEvent struct {
	ID          string  `json:"id"`
	Subject     string  `json:"subject"`
	Verdict     string  `json:"verdict"`
	Comment     *string `json:"comment"`
	SubmittedBy *string `json:"submittedBy"`
	CreatedAt   string  `json:"createdAt"`
}

const ingestionQuery = `
query IngestionQueue($first: Int!) {
  ingestionItemsCollection(first: $first) {
    edges {
      node {
        id
        fileName
        mimeType
        status
        submittedAt
        processedAt
      }
    }
  }
}`

const analysisRunsQuery = `
query AnalysisRuns($first: Int!) {
  analysisRunsCollection(first: $first) {
    edges {
      node {
        id
        kind
        status
        itemCount
        triggeredBy
        startedAt
        finishedAt
      }
    }
  }
}`

const feedbackQuery = `
query FeedbackEvents($first: Int!) {
  feedbackEventsCollection(first: $first) {
    edges {
      node {
        id
        subject
        verdict
        comment
        submittedBy
        createdAt
      }
    }
  }
}`

// ListIngestionQueue fetches the ingestion queue view snapshot.
func (c *Client) ListIngestionQueue(ctx context.Context) ([]IngestionItem, error) {
	return list(ctx, c, "ingestion", ingestionQuery, field[IngestionItem]("ingestionItemsCollection"))
}

// ListAnalysisRuns fetches the analysis runs view snapshot.
func (c *Client) ListAnalysisRuns(ctx context.Context) ([]AnalysisRun, error) {
	return list(ctx, c, "runs", analysisRunsQuery, field[AnalysisRun]("analysisRunsCollection"))
}

// ListFeedbackEvents fetches the feedback events view snapshot.
func (c *Client) ListFeedbackEvents(ctx context.Context) ([]FeedbackEvent, error) {
	return list(ctx, c, "feedback", feedbackQuery, field[FeedbackEvent]("feedbackEventsCollection"))
}
