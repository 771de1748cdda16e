package httpkit_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"devpulse/internal/modkit/httpkit"
	phttp "devpulse/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestMountAPIV1PrefixesRoutes(t *testing.T) {
	m := chi.NewRouter()
	r := phttp.AdaptChi(m)

	httpkit.MountAPIV1(r, nil, func(api httpkit.Router) {
		httpkit.Get(api, "/ping", func(*http.Request) (any, error) { return "pong", nil })
	})

	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/ping", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d at versioned path", rec.Code)
	}

	rec = httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest("GET", "/ping", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unversioned path must 404, got %d", rec.Code)
	}
}

func TestMountUnderAppliesMiddleware(t *testing.T) {
	m := chi.NewRouter()
	r := phttp.AdaptChi(m)

	var hits int
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			hits++
			next.ServeHTTP(w, req)
		})
	}
	httpkit.MountUnder(r, "/activity", []func(http.Handler) http.Handler{mw}, func(sub httpkit.Router) {
		httpkit.Get(sub, "/ping", func(*http.Request) (any, error) { return "ok", nil })
	})

	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest("GET", "/activity/ping", nil))
	if rec.Code != http.StatusOK || hits != 1 {
		t.Fatalf("status %d hits %d", rec.Code, hits)
	}
}

func TestCommonStackServesHealthAndRecovers(t *testing.T) {
	m := chi.NewRouter()
	r := phttp.AdaptChi(m)
	r.Use(httpkit.CommonStack()...)
	httpkit.Get(r, "/boom", func(*http.Request) (any, error) { panic("kaput") })

	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("heartbeat status %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest("GET", "/boom", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("panic status %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("panic body is not json: %s", rec.Body.String())
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatalf("request id header missing")
	}
}
