package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"movies-db/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedRouter(t *testing.T) (*chi.Mux, *observer.ObservedLogs) {
	t.Helper()

	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	r := chi.NewRouter()
	r.Use(Logger(logger))
	r.Use(Recover(logger))

	r.Get("/movies/{id}", func(w http.ResponseWriter, r *http.Request) {
		RecordErrorKind(r.Context(), utils.KindNotFound)
		utils.ResponseNotFound(w, "Movie does not exist.")
	})
	r.Get("/ok", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, "success", nil)
	})
	r.Get("/panic", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	return r, logs
}

func accessLines(logs *observer.ObservedLogs) []observer.LoggedEntry {
	return logs.FilterMessage("HTTP request").All()
}

func TestLogger_ClientErrorCarriesKind(t *testing.T) {
	r, logs := newObservedRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/movies/42", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	lines := accessLines(logs)
	if len(lines) != 1 {
		t.Fatalf("expected one access line, got %d", len(lines))
	}
	line := lines[0]
	if line.Level != zapcore.WarnLevel {
		t.Fatalf("expected warn level, got %s", line.Level)
	}
	fields := line.ContextMap()
	if fields["error_kind"] != "not_found" {
		t.Fatalf("unexpected error_kind %v", fields["error_kind"])
	}
	if fields["status"] != int64(http.StatusNotFound) {
		t.Fatalf("unexpected status %v", fields["status"])
	}
	if fields["route"] != "/movies/{id}" {
		t.Fatalf("unexpected route %v", fields["route"])
	}
}

func TestLogger_Success(t *testing.T) {
	r, logs := newObservedRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))

	lines := accessLines(logs)
	if len(lines) != 1 || lines[0].Level != zapcore.InfoLevel {
		t.Fatalf("expected one info line, got %+v", lines)
	}
	if _, ok := lines[0].ContextMap()["error_kind"]; ok {
		t.Fatal("successful request must not carry an error kind")
	}
}

func TestRecover_LogsInternalKind(t *testing.T) {
	r, logs := newObservedRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	if n := logs.FilterMessage("Handler panicked").Len(); n != 1 {
		t.Fatalf("expected one panic line, got %d", n)
	}
	lines := accessLines(logs)
	if len(lines) != 1 || lines[0].Level != zapcore.ErrorLevel {
		t.Fatalf("expected one error access line, got %+v", lines)
	}
	if lines[0].ContextMap()["error_kind"] != "internal" {
		t.Fatalf("unexpected error_kind %v", lines[0].ContextMap()["error_kind"])
	}
}

func TestRecordErrorKind_OutsideLogger(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	RecordErrorKind(req.Context(), utils.KindNotFound)
}
