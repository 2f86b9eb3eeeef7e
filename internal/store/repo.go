package store

import (
	"context"
	"time"
)

// QueryOpts configures submission queries with filtering and pagination.
type QueryOpts struct {
	Limit int    // max results (0 = unlimited)
	Kind  string // only this outcome kind ("" = all)
	From  time.Time
}

// SubmissionData captures one settled recommendation request.
type SubmissionData struct {
	SessionID    string
	Endpoint     string
	Answers      map[string]string
	Kind         string
	Status       int
	Message      string
	Product      string
	Weather      string
	LatencyMs    int64
	RequestBody  string
	ResponseBody string
}

// Submission is a stored SubmissionData row.
type Submission struct {
	ID        int64
	Timestamp time.Time
	SubmissionData
}

// SubmissionRepo persists submission history.
type SubmissionRepo interface {
	// AppendSubmission records a settled submission.
	AppendSubmission(ctx context.Context, data SubmissionData) error

	// ListSubmissions returns submissions newest first.
	ListSubmissions(ctx context.Context, opts QueryOpts) ([]Submission, error)

	// GetSubmission returns one submission, or nil if it does not exist.
	GetSubmission(ctx context.Context, id int64) (*Submission, error)

	// CountByKind returns how many submissions settled to each kind.
	CountByKind(ctx context.Context) (map[string]int, error)
}
