package chain_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/patternkit/pkg/chain"
)

func TestCompose(t *testing.T) {
	t.Run("first middleware is outermost", func(t *testing.T) {
		var order []string
		tag := func(name string) chain.Middleware {
			return func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					order = append(order, name+":in")
					next.ServeHTTP(w, r)
					order = append(order, name+":out")
				})
			}
		}

		h := chain.Compose(tag("a"), tag("b"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "handler")
		}))

		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, []string{"a:in", "b:in", "handler", "b:out", "a:out"}, order)
	})

	t.Run("nil middleware skipped", func(t *testing.T) {
		h := chain.Compose(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	})
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	r := chain.NewRouter(chain.RequestLogger(logger))
	r.Get("/orders/{id}", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/42", nil))

	require.Equal(t, http.StatusCreated, rec.Code)
	out := buf.String()
	assert.Contains(t, out, "method=GET")
	assert.Contains(t, out, "path=/orders/42")
	assert.Contains(t, out, "status=201")
}

func TestRecoverer(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	r := chain.NewRouter(chain.RequestLogger(logger), chain.Recoverer(logger))
	r.Get("/boom", func(w http.ResponseWriter, req *http.Request) {
		panic("nil map write")
	})
	r.Get("/ok", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("panic becomes 500", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, buf.String(), "panic recovered")
		assert.Contains(t, buf.String(), "nil map write")
	})

	t.Run("router keeps serving after a panic", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
