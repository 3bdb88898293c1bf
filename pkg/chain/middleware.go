package chain

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Middleware is the standard Go HTTP middleware shape. A middleware chain is
// the chain of responsibility most Go services already run in production.
type Middleware = func(http.Handler) http.Handler

// Compose nests middleware so the first listed is the outermost: requests
// pass through mw[0] first, responses through mw[0] last.
func Compose(mw ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		h := final
		for i := len(mw) - 1; i >= 0; i-- {
			if mw[i] != nil {
				h = mw[i](h)
			}
		}
		return h
	}
}

// NewRouter returns a chi router with the given middleware stack applied in
// order.
func NewRouter(mw ...Middleware) chi.Router {
	r := chi.NewRouter()
	for _, m := range mw {
		if m != nil {
			r.Use(m)
		}
	}
	return r
}

// statusRecorder captures the status code written downstream.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// RequestLogger logs one line per request with method, path, status, and
// duration. A nil logger falls back to slog.Default().
func RequestLogger(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			logger.InfoContext(r.Context(), "request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rec.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

// Recoverer converts downstream panics into 500 responses and logs them, so
// one bad handler cannot take the process down. A nil logger falls back to
// slog.Default().
func Recoverer(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.ErrorContext(r.Context(), "panic recovered",
						slog.String("path", r.URL.Path),
						slog.Any("panic", rec),
					)
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
