package middleware

import (
	"context"
	"net/http"
	"time"

	"movies-db/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type accessLogKey struct{}

// accessLog collects what handlers report about a request for its log line.
type accessLog struct {
	errorKind string
}

// RecordErrorKind tags the access log line of the request in ctx with the
// kind of error it failed with. It is a no-op outside Logger.
func RecordErrorKind(ctx context.Context, kind utils.ErrorKind) {
	if entry, ok := ctx.Value(accessLogKey{}).(*accessLog); ok {
		entry.errorKind = kind.String()
	}
}

// Logger writes one line per request. Server errors log at error level and
// client errors at warn level, with the error kind when a handler recorded one.
func Logger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			entry := &accessLog{}
			r = r.WithContext(context.WithValue(r.Context(), accessLogKey{}, entry))
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			fields := []zap.Field{
				zap.String("request_id", chimw.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("query", r.URL.RawQuery),
				zap.Int("status", status),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.String("user_agent", r.UserAgent()),
			}
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				fields = append(fields, zap.String("route", rctx.RoutePattern()))
			}
			if entry.errorKind != "" {
				fields = append(fields, zap.String("error_kind", entry.errorKind))
			}

			switch {
			case status >= http.StatusInternalServerError:
				logger.Error("HTTP request", fields...)
			case status >= http.StatusBadRequest:
				logger.Warn("HTTP request", fields...)
			default:
				logger.Info("HTTP request", fields...)
			}
		})
	}
}
