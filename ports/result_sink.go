package ports

import (
	"context"

	"edna/domain/core"
	"edna/domain/profile"
)

// SinkOutcome reports a best-effort sink operation. Failures are carried
// as data, never as a Go error: the sink contract is that nothing it does
// can disturb the caller.
type SinkOutcome struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// ResultSink is the optional, non-authoritative side channel for results.
// Save degrades to {Success:false}; Load degrades to (nil, outcome) and
// treats a missing remote record as a successful empty load.
type ResultSink interface {
	Save(ctx context.Context, userID core.UserID, res profile.Result) SinkOutcome
	Load(ctx context.Context, userID core.UserID) (*profile.Result, SinkOutcome)
}
