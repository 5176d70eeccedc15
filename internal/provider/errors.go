package provider

import "fmt"

// NotFoundError carries the catalog's own message for a failed lookup.
type NotFoundError struct {
	Title   string
	Message string
}

func (e *NotFoundError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("movie %q not found", e.Title)
	}
	return e.Message
}

// TransportError means the catalog could not be reached or answered with
// something that is not a catalog record. StatusCode is 0 when no response arrived.
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("request %s: HTTP %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("request %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
