package app

import "github.com/michoacana/antojo/internal/recommend"

// submissionSettledMsg carries the outcome of an in-flight submission.
type submissionSettledMsg struct {
	sessionID string
	outcome   recommend.Outcome
}
