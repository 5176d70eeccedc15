package omdb

import (
	"testing"
	"time"
)

func TestRecordRead_Placeholders(t *testing.T) {
	record, err := DecodeRecord([]byte(`{
		"Title": "Alien",
		"Poster": "N/A",
		"Director": "None",
		"Website": null,
		"Runtime": "",
		"Released": "null"
	}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v, ok := record.Read(FieldTitle); !ok || v != "Alien" {
		t.Fatalf("expected title, got %q %v", v, ok)
	}
	for _, key := range []Field{FieldPoster, FieldDirector, FieldWebsite, FieldRuntime, FieldReleased, "Missing"} {
		if v, ok := record.Read(key); ok {
			t.Fatalf("%s: expected absence, got %q", key, v)
		}
		if record.ReadPtr(key) != nil {
			t.Fatalf("%s: expected nil pointer", key)
		}
	}
}

func TestDecodeRecord_RejectsNonObjects(t *testing.T) {
	for _, body := range []string{`null`, `[]`, `"Alien"`, `42`, ``} {
		if record, err := DecodeRecord([]byte(body)); err == nil {
			t.Fatalf("DecodeRecord(%q) = %v, want error", body, record)
		}
	}

	record, err := DecodeRecord([]byte(`{}`))
	if err != nil || len(record) != 0 {
		t.Fatalf("expected empty record for {}, got %v %v", record, err)
	}
}

func TestRecordRead_PlaceholdersAreCaseSensitive(t *testing.T) {
	record := Record{FieldDirector: "n/a"}
	if v, ok := record.Read(FieldDirector); !ok || v != "n/a" {
		t.Fatalf("expected literal value, got %q %v", v, ok)
	}
}

func TestRecordFailed(t *testing.T) {
	tests := []struct {
		name    string
		record  Record
		failed  bool
		message string
	}{
		{"error key", Record{FieldResponse: "False", FieldError: "Movie not found!"}, true, "Movie not found!"},
		{"response false", Record{FieldResponse: "false"}, true, ""},
		{"success", Record{FieldResponse: "True", FieldTitle: "Alien"}, false, ""},
		{"no markers", Record{FieldTitle: "Alien"}, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, failed := tt.record.Failed()
			if failed != tt.failed || msg != tt.message {
				t.Fatalf("expected (%q, %v), got (%q, %v)", tt.message, tt.failed, msg, failed)
			}
		})
	}
}

func TestParseRuntime(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
		want  *int
	}{
		{"143 min", true, intPtr(143)},
		{"90", true, intPtr(90)},
		{"1h 30m", true, intPtr(130)},
		{"min", true, nil},
		{"0 min", true, nil},
		{"99999999999999999999 min", true, nil},
		{"143 min", false, nil},
	}

	for _, tt := range tests {
		got := ParseRuntime(tt.value, tt.ok)
		switch {
		case tt.want == nil && got != nil:
			t.Fatalf("ParseRuntime(%q, %v) = %d, want nil", tt.value, tt.ok, *got)
		case tt.want != nil && (got == nil || *got != *tt.want):
			t.Fatalf("ParseRuntime(%q, %v) = %v, want %d", tt.value, tt.ok, got, *tt.want)
		}
	}
}

func TestParseReleased(t *testing.T) {
	want := time.Date(2012, 5, 4, 0, 0, 0, 0, time.UTC)

	for _, value := range []string{"04 May 2012", "2012-05-04", "May 4, 2012"} {
		got := ParseReleased(value, true)
		if got == nil || !got.Equal(want) {
			t.Fatalf("ParseReleased(%q) = %v, want %v", value, got, want)
		}
	}

	for _, junk := range []string{"sometime", "1.1.1.1.1", "12:", "0001-01-01", "01 Jan 1700"} {
		if got := ParseReleased(junk, true); got != nil {
			t.Fatalf("ParseReleased(%q) = %v, want nil", junk, got)
		}
	}
	if got := ParseReleased("04 May 2012", false); got != nil {
		t.Fatalf("expected nil for absent date, got %v", got)
	}
}

func intPtr(n int) *int { return &n }
