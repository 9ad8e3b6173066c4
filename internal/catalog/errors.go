package catalog

import (
	"errors"
	"fmt"
)

// Fetch failure categories, matched with errors.Is.
var (
	// ErrUpstreamUnavailable means the catalog answered with a non-2xx status.
	ErrUpstreamUnavailable = errors.New("catalog unavailable")
	// ErrUpstreamTimeout means the catalog could not be reached in time:
	// dial, DNS and connection failures as well as timeouts.
	ErrUpstreamTimeout = errors.New("catalog unreachable")
	// ErrInternal covers every other fetch failure.
	ErrInternal = errors.New("catalog fetch failed")
)

// FetchError describes a failed catalog fetch. Kind is one of the sentinel
// errors above.
type FetchError struct {
	Kind       error
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: GET %s returned status %d", e.Kind, e.URL, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return e.Kind.Error()
	}
}

// Unwrap exposes both the category and the underlying cause.
func (e *FetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// KindLabel returns a stable metric label for the category of err.
func KindLabel(err error) string {
	switch {
	case errors.Is(err, ErrUpstreamUnavailable):
		return "upstream_unavailable"
	case errors.Is(err, ErrUpstreamTimeout):
		return "upstream_timeout"
	default:
		return "internal"
	}
}
