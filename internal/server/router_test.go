package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/justfortestingnothibghere/Api/internal/shared"
)

type stubHandler struct{}

func (stubHandler) Routes() []Route {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.Write([]byte("stub")) })
	return []Route{
		{Method: http.MethodGet, Pattern: "/a", Handler: ok},
		{Method: http.MethodPost, Pattern: "/b", Handler: ok},
	}
}

func TestBasicRouter(t *testing.T) {
	t.Run("Handler registers every route", func(t *testing.T) {
		r := NewBasicRouter()
		r.Handler(stubHandler{})

		if rec := do(t, r, http.MethodGet, "/a", ""); rec.Body.String() != "stub" {
			t.Errorf("expected stub, got %q", rec.Body.String())
		}
		if rec := do(t, r, http.MethodPost, "/b", ""); rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("method not allowed", func(t *testing.T) {
		r := NewBasicRouter()
		r.Handler(stubHandler{})

		rec := do(t, r, http.MethodDelete, "/a", "")
		if rec.Code != http.StatusMethodNotAllowed {
			t.Fatalf("expected 405, got %d", rec.Code)
		}
		if rec.Header().Get("Allow") != http.MethodGet {
			t.Errorf("expected Allow: GET, got %s", rec.Header().Get("Allow"))
		}
	})

	t.Run("GET routes answer HEAD", func(t *testing.T) {
		r := NewBasicRouter()
		r.Handler(stubHandler{})

		if rec := do(t, r, http.MethodHead, "/a", ""); rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("unmatched path is JSON 404", func(t *testing.T) {
		r := NewBasicRouter()
		rec := do(t, r, http.MethodGet, "/missing", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		if got := detailOf(t, rec); got != "Not Found" {
			t.Errorf("expected 'Not Found', got %q", got)
		}
	})

	t.Run("middleware order and coverage", func(t *testing.T) {
		var order []string
		mw := func(name string) Middleware {
			return func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					order = append(order, name)
					next.ServeHTTP(w, r)
				})
			}
		}

		r := NewBasicRouter()
		r.Handler(stubHandler{})
		r.Use(mw("first"), mw("second"))
		r.Use(mw("third"))

		do(t, r, http.MethodGet, "/a", "")
		if strings.Join(order, ",") != "first,second,third" {
			t.Errorf("unexpected order %v", order)
		}

		order = nil
		do(t, r, http.MethodGet, "/missing", "")
		if len(order) != 3 {
			t.Errorf("expected middleware to run for unmatched paths, ran %v", order)
		}
	})
}

func TestRecover(t *testing.T) {
	panicky := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { panic("boom") })
	h := Recover(shared.NewLogger(io.Discard))(panicky)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.Write([]byte("next")) })

	preflight := func(h http.Handler, origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/all/songs/", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		req.Header.Set("Access-Control-Request-Headers", shared.APIKeyHeader)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	t.Run("allowed origin preflight", func(t *testing.T) {
		rec := preflight(CORS([]string{"https://app.example.com"})(next), "https://app.example.com")
		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
		if rec.Header().Get("Access-Control-Allow-Origin") != "https://app.example.com" {
			t.Errorf("unexpected allow origin %s", rec.Header().Get("Access-Control-Allow-Origin"))
		}
		if !strings.Contains(rec.Header().Get("Access-Control-Allow-Headers"), shared.APIKeyHeader) {
			t.Errorf("expected x-api-key in allowed headers, got %s", rec.Header().Get("Access-Control-Allow-Headers"))
		}
	})

	t.Run("wildcard", func(t *testing.T) {
		rec := preflight(CORS([]string{"*"})(next), "https://anywhere.test")
		if rec.Code != http.StatusNoContent {
			t.Errorf("expected 204, got %d", rec.Code)
		}
	})

	t.Run("disallowed origin passes through without headers", func(t *testing.T) {
		rec := preflight(CORS([]string{"https://app.example.com"})(next), "https://evil.test")
		if rec.Header().Get("Access-Control-Allow-Origin") != "" {
			t.Error("expected no CORS headers")
		}
		if rec.Body.String() != "next" {
			t.Errorf("expected request to reach next handler, got %q", rec.Body.String())
		}
	})

	t.Run("simple request gets headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://app.example.com")
		rec := httptest.NewRecorder()
		CORS([]string{"https://app.example.com"})(next).ServeHTTP(rec, req)

		if rec.Header().Get("Access-Control-Allow-Origin") != "https://app.example.com" {
			t.Error("expected allow origin header")
		}
		if rec.Body.String() != "next" {
			t.Errorf("expected next handler to run, got %q", rec.Body.String())
		}
	})

	t.Run("preflight skips the gate", func(t *testing.T) {
		config := testConfig()
		config.Server.CORSOrigins = []string{"*"}
		srv, _ := newTestServer(t, config)

		rec := preflight(srv.Handler(), "https://app.example.com")
		if rec.Code != http.StatusNoContent {
			t.Errorf("expected 204, got %d", rec.Code)
		}
	})
}
