package request

// FetchMovieRequest asks for a catalog lookup by title.
// Save defaults to true; false returns the mapped movie without storing it.
type FetchMovieRequest struct {
	Title string `json:"title"`
	Save  *bool  `json:"save,omitempty"`
}

func (r FetchMovieRequest) Persist() bool {
	return r.Save == nil || *r.Save
}

// MovieFilterRequest holds the raw query-string filters of a movie listing.
type MovieFilterRequest struct {
	Title         string
	Director      string
	DurationGT    string
	DurationLT    string
	ReleaseYear   string
	ReleaseYearGT string
	ReleaseYearLT string
}
