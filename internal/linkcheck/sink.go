package linkcheck

import (
	"context"
	"time"
)

// Sink receives validation outcomes for tracked URLs. Implementations
// mutate the URL row; the validator itself never does.
type Sink interface {
	MarkValid(ctx context.Context, u *URL) error
	MarkInvalid(ctx context.Context, u *URL, reason string) error
}

// Apply persists one validation result through the sink. Skipped results
// leave the URL untouched.
func Apply(ctx context.Context, sink Sink, u *URL, result Result) error {
	switch result.Outcome {
	case OutcomeValid:
		return sink.MarkValid(ctx, u)
	case OutcomeInvalid:
		return sink.MarkInvalid(ctx, u, result.Reason)
	default:
		return nil
	}
}

// markValid stamps the URL as resolving. Shared by the sink
// implementations.
func markValid(u *URL, now time.Time) {
	status := true
	code := 200
	u.Status = &status
	u.StatusCode = &code
	u.ErrorMessage = ""
	u.LastChecked = &now
}

// markInvalid stamps the URL as broken with the stated reason.
func markInvalid(u *URL, reason string, now time.Time) {
	status := false
	u.Status = &status
	u.StatusCode = nil
	u.ErrorMessage = reason
	u.LastChecked = &now
}
