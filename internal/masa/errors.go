package masa

import (
	"errors"
	"fmt"
)

var (
	// ErrNoJobID is returned when a live-search submit response carries no uuid
	ErrNoJobID = errors.New("masa: invalid response from Masa API: no uuid returned")

	// ErrJobTimeout is returned when the polling retry budget is exhausted
	ErrJobTimeout = errors.New("masa: search job timed out after maximum retries")
)

// JobError reports a live-search job the provider explicitly marked failed.
// The message is the provider's own error string.
type JobError struct {
	ID      string
	Message string
}

func (e *JobError) Error() string {
	return fmt.Sprintf("masa: search job %s failed: %s", e.ID, e.Message)
}

// ProviderError wraps a transport-level failure talking to the provider:
// a connection error or a non-2xx response at any step of a search.
type ProviderError struct {
	Op         string // "POST /v1/search/live/twitter" etc.
	StatusCode int    // 0 when the request never completed
	Body       string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("masa: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("masa: %s: unexpected status %d: %s", e.Op, e.StatusCode, e.Body)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
