package gc

import (
	"fmt"
	"net/http"
)

// Kind classifies why a request to the GC weather API failed.
type Kind int

const (
	// KindClientError is a 4xx response other than 429. Never retried.
	KindClientError Kind = iota + 1
	// KindExhaustedRetries means every attempt hit a transient failure.
	KindExhaustedRetries
	// KindUnexpected covers failures that are neither HTTP status nor transport errors.
	KindUnexpected
)

func (k Kind) String() string {
	switch k {
	case KindClientError:
		return "client_error"
	case KindExhaustedRetries:
		return "exhausted_retries"
	case KindUnexpected:
		return "unexpected"
	default:
		return "unknown"
	}
}

// RequestError is returned by Client.Execute for every failed request.
type RequestError struct {
	Kind       Kind
	StatusCode int // set for HTTP status failures
	Attempts   int
	Err        error
}

func (e *RequestError) Error() string {
	switch e.Kind {
	case KindClientError:
		return fmt.Sprintf("Client error: %v", e.Err)
	case KindExhaustedRetries:
		return fmt.Sprintf("Failed after %d attempts: %v", e.Attempts, e.Err)
	default:
		return fmt.Sprintf("Unexpected error: %v", e.Err)
	}
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// StatusError represents a non-2xx response from the API
type StatusError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch returned status %s for url '%s'", e.Status, e.URL)
}

// retryable reports whether the status may succeed on a later attempt: every
// non-2xx status except the fatal client errors.
func (e *StatusError) retryable() bool {
	return !e.fatalClient()
}

// fatalClient reports whether the status is a caller error that retries cannot fix.
func (e *StatusError) fatalClient() bool {
	return e.StatusCode >= http.StatusBadRequest &&
		e.StatusCode < http.StatusInternalServerError &&
		e.StatusCode != http.StatusTooManyRequests
}
