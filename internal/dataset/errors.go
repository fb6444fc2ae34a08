package dataset

import (
	"errors"
	"fmt"
)

// Load failure kinds. Match with errors.Is.
var (
	ErrFetchFailed = errors.New("fetch failed")
	ErrParseFailed = errors.New("parse failed")
)

// LoadError describes why a dataset could not be loaded.
type LoadError struct {
	Kind       error  // ErrFetchFailed or ErrParseFailed
	StatusCode int    // HTTP status for fetch failures; 0 when not an HTTP response
	Diagnostic string // parser message for parse failures
	Err        error  // underlying cause, may be nil
}

func (e *LoadError) Error() string {
	switch {
	case e.Kind == ErrFetchFailed && e.StatusCode != 0:
		return fmt.Sprintf("%v: HTTP status %d", e.Kind, e.StatusCode)
	case e.Diagnostic != "":
		return fmt.Sprintf("%v: %s", e.Kind, e.Diagnostic)
	case e.Err != nil:
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	default:
		return e.Kind.Error()
	}
}

func (e *LoadError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// KindName returns the wire name of the failure kind ("FETCH_FAILED" / "PARSE_FAILED").
func KindName(err error) string {
	switch {
	case errors.Is(err, ErrFetchFailed):
		return "FETCH_FAILED"
	case errors.Is(err, ErrParseFailed):
		return "PARSE_FAILED"
	default:
		return ""
	}
}

func fetchError(status int, err error) *LoadError {
	return &LoadError{Kind: ErrFetchFailed, StatusCode: status, Err: err}
}

func parseError(format string, args ...any) *LoadError {
	return &LoadError{Kind: ErrParseFailed, Diagnostic: fmt.Sprintf(format, args...)}
}
