package provider

import (
	"context"
	"time"
)

// Metadata is a movie record as reported by an external catalog.
// Nil fields were absent or carried a "no data" placeholder.
type Metadata struct {
	Title       string
	Cover       *string
	ReleaseDate *time.Time
	Duration    *int // minutes
	Director    *string
	Website     *string
}

// MetadataProvider looks a movie up by title in an external catalog.
//
// Lookup issues exactly one outbound request and never retries. It fails with
// *NotFoundError when the catalog reports no match and *TransportError when the
// request could not complete or the response could not be decoded.
type MetadataProvider interface {
	Name() string
	Lookup(ctx context.Context, title string) (*Metadata, error)
}
