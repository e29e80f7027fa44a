package jobsearch

import (
	"fmt"
	"net/http"
)

// UpstreamError represents a failure talking to the job-search API. Handlers
// treat any UpstreamError as "search temporarily unavailable" and degrade to
// an empty result list rather than failing the whole request.
type UpstreamError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *UpstreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("job search upstream error: %s: %v", e.Message, e.Cause)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("job search upstream error: %s (HTTP %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("job search upstream error: %s", e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// AuthFailure reports whether the upstream rejected our credentials, which
// is a deployment problem rather than a transient outage.
func (e *UpstreamError) AuthFailure() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}
