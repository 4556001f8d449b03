package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nivaas/ratelim"

	"github.com/julienschmidt/httprouter"
)

func testRouter() *httprouter.Router {
	router := httprouter.New()
	RoutesWrapper(router, ratelim.NewRateLimiter())
	return router
}

// Mutation routes carry no auth gate; a tokenless request must reach the
// handler (here: rejected for its malformed body, not for a missing token).
func TestMutationRoutesAcceptTokenlessRequests(t *testing.T) {
	router := testRouter()

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/properties"},
		{http.MethodPost, "/api/builders"},
		{http.MethodPut, "/api/builders/b123"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, strings.NewReader("{not json"))
		req.RemoteAddr = "198.51.100.7:1234"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code == http.StatusUnauthorized {
			t.Errorf("%s %s: got 401 for a tokenless request", tc.method, tc.path)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s %s: got %d, want 400 for malformed body", tc.method, tc.path, rec.Code)
		}
	}
}

func TestMeRequiresToken(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.RemoteAddr = "198.51.100.8:1234"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("GET /api/me without token: got %d, want 401", rec.Code)
	}
}
