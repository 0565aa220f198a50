package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/time/rate"

	"github.com/hitoshi/glowscan/internal/model"
)

func newTestRateLimiter(generalBurst, scanBurst int) *RateLimiter {
	cfg := RateLimiterConfig{
		GeneralRate:     rate.Limit(0.001), // テスト中の補充を事実上ゼロにする
		GeneralBurst:    generalBurst,
		ScanRate:        rate.Limit(0.001),
		ScanBurst:       scanBurst,
		CleanupInterval: time.Hour,
	}
	return NewRateLimiter(cfg)
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestGeneralMiddleware_AllowsWithinBurst(t *testing.T) {
	rl := newTestRateLimiter(3, 1)
	defer rl.Stop()
	handler := rl.GeneralMiddleware()(okHandler())

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want %d", i+1, w.Code, http.StatusOK)
		}
	}
}

func TestGeneralMiddleware_RejectsOverBurst(t *testing.T) {
	rl := newTestRateLimiter(2, 1)
	defer rl.Stop()
	handler := rl.GeneralMiddleware()(okHandler())

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		last = httptest.NewRecorder()
		handler.ServeHTTP(last, req)
	}

	if last.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want %d", last.Code, http.StatusTooManyRequests)
	}
	if last.Header().Get("Retry-After") == "" {
		t.Error("429 response should carry Retry-After header")
	}
}

func TestGeneralMiddleware_ClientsAreIndependent(t *testing.T) {
	rl := newTestRateLimiter(1, 1)
	defer rl.Stop()
	handler := rl.GeneralMiddleware()(okHandler())

	// 1クライアント目がバーストを使い切る
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	handler.ServeHTTP(httptest.NewRecorder(), req)

	// 別クライアントは影響を受けないこと
	req2 := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req2.RemoteAddr = "192.0.2.2:1234"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req2)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d for a distinct client", w.Code, http.StatusOK)
	}
}

func TestScanMiddleware_IndependentFromGeneral(t *testing.T) {
	rl := newTestRateLimiter(1, 1)
	defer rl.Stop()

	general := rl.GeneralMiddleware()(okHandler())
	scan := rl.ScanMiddleware()(okHandler())

	// 一般リミッターを使い切る
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	general.ServeHTTP(httptest.NewRecorder(), req)

	// スキャンリミッターは独立しているため通過すること
	scanReq := httptest.NewRequest(http.MethodPost, "/api/scan", nil)
	scanReq.RemoteAddr = "192.0.2.1:1234"
	w := httptest.NewRecorder()
	scan.ServeHTTP(w, scanReq)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestClientKey_PrefersSessionEmail(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	req = req.WithContext(ContextWithSession(req.Context(), &model.Session{Email: "ada@example.com"}))

	if got := clientKey(req); got != "ada@example.com" {
		t.Errorf("clientKey = %q, want ada@example.com", got)
	}
}

func TestClientKey_FallsBackToRemoteHost(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.RemoteAddr = "192.0.2.1:1234"

	if got := clientKey(req); got != "192.0.2.1" {
		t.Errorf("clientKey = %q, want 192.0.2.1", got)
	}
}

func TestRateLimiter_TracksLimiterEntries(t *testing.T) {
	rl := newTestRateLimiter(10, 10)
	defer rl.Stop()
	handler := rl.GeneralMiddleware()(okHandler())

	for _, addr := range []string{"192.0.2.1:1", "192.0.2.2:1", "192.0.2.3:1"} {
		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		req.RemoteAddr = addr
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	if got := rl.GeneralLimiterCount(); got != 3 {
		t.Errorf("GeneralLimiterCount = %d, want 3", got)
	}
	if got := rl.ScanLimiterCount(); got != 0 {
		t.Errorf("ScanLimiterCount = %d, want 0", got)
	}
}
