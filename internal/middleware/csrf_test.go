package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func csrfHandler() http.Handler {
	mw := NewCSRFMiddleware(CSRFConfig{})
	return mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestCSRFMiddleware_SafeMethodPassesWithoutToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	w := httptest.NewRecorder()

	csrfHandler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestCSRFMiddleware_SafeMethodSetsCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	w := httptest.NewRecorder()

	csrfHandler().ServeHTTP(w, req)

	found := false
	for _, c := range w.Result().Cookies() {
		if c.Name == "csrf_token" && c.Value != "" {
			found = true
			if c.HttpOnly {
				t.Error("csrf_token cookie must be readable from JavaScript (HttpOnly=false)")
			}
		}
	}
	if !found {
		t.Error("safe method should set the csrf_token cookie")
	}
}

func TestCSRFMiddleware_PostWithoutTokenRejected(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	w := httptest.NewRecorder()

	csrfHandler().ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", w.Code, http.StatusForbidden)
	}
}

func TestCSRFMiddleware_PostWithMismatchedTokenRejected(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	req.AddCookie(&http.Cookie{Name: "csrf_token", Value: "cookie-value"})
	req.Header.Set("X-CSRF-Token", "different-value")
	w := httptest.NewRecorder()

	csrfHandler().ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", w.Code, http.StatusForbidden)
	}
}

func TestCSRFMiddleware_PostWithMatchingTokenPasses(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	req.AddCookie(&http.Cookie{Name: "csrf_token", Value: "matching-token"})
	req.Header.Set("X-CSRF-Token", "matching-token")
	w := httptest.NewRecorder()

	csrfHandler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestCSRFTokenHandler_IssuesToken(t *testing.T) {
	h := NewCSRFTokenHandler(CSRFConfig{})

	req := httptest.NewRequest(http.MethodGet, "/api/csrf-token", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["token"] == "" {
		t.Error("token should not be empty")
	}
}

func TestCSRFTokenHandler_ReusesExistingCookieToken(t *testing.T) {
	h := NewCSRFTokenHandler(CSRFConfig{})

	req := httptest.NewRequest(http.MethodGet, "/api/csrf-token", nil)
	req.AddCookie(&http.Cookie{Name: "csrf_token", Value: "existing-token"})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["token"] != "existing-token" {
		t.Errorf("token = %q, want existing-token", body["token"])
	}
}
