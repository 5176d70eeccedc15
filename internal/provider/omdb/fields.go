package omdb

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Field is a key of an OMDb movie record.
type Field string

const (
	FieldTitle    Field = "Title"
	FieldPoster   Field = "Poster"
	FieldReleased Field = "Released"
	FieldRuntime  Field = "Runtime"
	FieldDirector Field = "Director"
	FieldWebsite  Field = "Website"
	FieldResponse Field = "Response"
	FieldError    Field = "Error"
)

// placeholders are the exact, case-sensitive values OMDb uses for "no data".
var placeholders = map[string]struct{}{
	"N/A":  {},
	"":     {},
	"null": {},
	"None": {},
}

// Record is the string-valued part of an OMDb response. Non-string values
// such as the Ratings array are dropped.
type Record map[Field]string

var errNotObject = errors.New("response is not a JSON object")

// DecodeRecord parses a response body. JSON null values are kept as "null"
// so they normalize to absence like the other placeholders.
func DecodeRecord(body []byte) (Record, error) {
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	// a bare null decodes without error into a nil map
	if raw == nil {
		return nil, errNotObject
	}

	record := make(Record, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			record[Field(key)] = v
		case nil:
			record[Field(key)] = "null"
		case bool:
			record[Field(key)] = strconv.FormatBool(v)
		}
	}
	return record, nil
}

// Read returns the value of key, or false when the key is missing or holds a placeholder.
func (r Record) Read(key Field) (string, bool) {
	value, ok := r[key]
	if !ok {
		return "", false
	}
	if _, empty := placeholders[value]; empty {
		return "", false
	}
	return value, true
}

// ReadPtr is Read returning nil for absence.
func (r Record) ReadPtr(key Field) *string {
	value, ok := r.Read(key)
	if !ok {
		return nil
	}
	return &value
}

// Failed reports whether the record signals a failed lookup, with the catalog's message.
func (r Record) Failed() (string, bool) {
	if msg, ok := r[FieldError]; ok {
		return msg, true
	}
	if resp, ok := r[FieldResponse]; ok && strings.EqualFold(resp, "false") {
		return "", true
	}
	return "", false
}

// ParseRuntime keeps only the digits of a free-text duration ("143 min" -> 143).
// Absent input, input without digits, and non-positive values yield nil.
func ParseRuntime(value string, ok bool) *int {
	if !ok {
		return nil
	}

	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, value)
	if digits == "" {
		return nil
	}

	minutes, err := strconv.Atoi(digits)
	if err != nil || minutes <= 0 {
		return nil
	}
	return &minutes
}

// minReleaseYear rejects the year-0 dates the lenient parser builds from junk.
const minReleaseYear = 1800

var releasedLayouts = []string{
	"02 Jan 2006",
	"2006-01-02",
}

// ParseReleased parses a release date leniently. Absent or unparseable input,
// and dates before minReleaseYear, yield nil.
func ParseReleased(value string, ok bool) *time.Time {
	if !ok {
		return nil
	}
	value = strings.TrimSpace(value)

	for _, layout := range releasedLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return plausibleDate(t)
		}
	}

	t, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return nil
	}
	return plausibleDate(t)
}

func plausibleDate(t time.Time) *time.Time {
	y, m, d := t.Date()
	if y < minReleaseYear {
		return nil
	}
	date := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &date
}
