package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"student_manager/internal/service"
)

func TestCurrentUser(t *testing.T) {
	t.Run("valid session cookie toggles logged-in state", func(t *testing.T) {
		auth := &mockAuth{parseID: 5}
		r := newTestRouter(&service.Service{Authorization: auth})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "session", Value: "tok123"})
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status=%d", w.Code)
		}
		if auth.lastParseToken != "tok123" {
			t.Fatalf("expected token to be parsed, got %q", auth.lastParseToken)
		}
		if !strings.Contains(w.Body.String(), "Déconnexion") {
			t.Fatalf("expected logged-in navigation, got: %s", w.Body.String())
		}
	})

	t.Run("invalid token is treated as logged out", func(t *testing.T) {
		auth := &mockAuth{parseErr: errors.New("expired")}
		r := newTestRouter(&service.Service{Authorization: auth})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "session", Value: "bad"})
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status=%d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Connexion") {
			t.Fatalf("expected logged-out navigation, got: %s", w.Body.String())
		}
	})

	t.Run("no cookie leaves the request anonymous", func(t *testing.T) {
		auth := &mockAuth{}
		r := newTestRouter(&service.Service{Authorization: auth})

		w := get(r, "/")
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d", w.Code)
		}
		if auth.lastParseToken != "" {
			t.Fatalf("no token should be parsed without a cookie")
		}
	})
}

func TestRequestLogger(t *testing.T) {
	r := newTestRouter(&service.Service{})

	// Generated id is echoed back.
	w := get(r, "/health")
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected a generated request id header")
	}

	// Caller-provided id is preserved.
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-1")
	r.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); got != "req-1" {
		t.Fatalf("expected request id to be preserved, got %q", got)
	}
}
