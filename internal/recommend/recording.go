package recommend

import (
	"context"
	"encoding/json"

	"github.com/michoacana/antojo/internal/store"
)

// RecordingSubmitter is a decorator that stores every settled submission.
type RecordingSubmitter struct {
	inner    Submitter
	repo     store.SubmissionRepo
	endpoint string
	logger   Logger
}

// WithRecording wraps s so each outcome is appended to repo. Write
// failures go to logger, which may be nil.
func WithRecording(s Submitter, repo store.SubmissionRepo, endpoint string, logger Logger) Submitter {
	if logger == nil {
		logger = discardLogger{}
	}
	return &RecordingSubmitter{inner: s, repo: repo, endpoint: endpoint, logger: logger}
}

func (r *RecordingSubmitter) Submit(ctx context.Context, req Request) Outcome {
	out := r.inner.Submit(ctx, req)

	data := store.SubmissionData{
		SessionID:    req.SessionID,
		Endpoint:     r.endpoint,
		Answers:      req.Record.Map(),
		Kind:         string(out.Kind),
		Status:       out.Status,
		Message:      out.Message,
		LatencyMs:    out.Latency.Milliseconds(),
		ResponseBody: string(out.Body),
	}
	if body, err := json.Marshal(req.Record); err == nil {
		data.RequestBody = string(body)
	}
	if out.Recommendation != nil {
		data.Product = out.Recommendation.Product.Name
		data.Weather = string(out.Recommendation.Weather)
	}
	if out.Err != nil && out.Kind == KindNetworkError {
		data.Message = out.Err.Error()
	}

	// A failed write never changes what the user sees.
	if err := r.repo.AppendSubmission(ctx, data); err != nil {
		r.logger.Printf("record submission %s: %v", req.SessionID, err)
	}
	return out
}
