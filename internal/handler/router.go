package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hitoshi/glowscan/internal/metrics"
	"github.com/hitoshi/glowscan/internal/middleware"
	"github.com/hitoshi/glowscan/internal/scan"
)

// HealthChecker はヘルスチェックに必要なインターフェース。
// *sql.DB が満たす。
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	SessionSource     middleware.SessionSource
	CORSAllowedOrigin string
	CSRFConfig        middleware.CSRFConfig
	RateLimiter       *middleware.RateLimiter

	// 観測性
	Collector metrics.MetricsCollector
	Gatherer  prometheus.Gatherer

	// ヘルスチェック
	HealthChecker HealthChecker

	// 認証
	AuthService AuthServiceInterface

	// スキャン
	Analyzer      scan.SkinAnalyzer
	ScanRecorder  ScanRecorderInterface
	HistoryLister HistoryListerInterface

	// お問い合わせ
	ContactService ContactServiceInterface
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	CORS → SecurityHeaders → Recovery → Metrics → Session → Logging → CSRF
//
// どのルートも認証でゲートしない（画面の認可制御は存在しない）。
// レート制限はAPIルートにのみ適用し、スキャン実行には専用クラスを追加する。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))
	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewMetricsMiddleware(deps.Collector))
	r.Use(middleware.NewSessionMiddleware(deps.SessionSource))
	r.Use(middleware.NewLoggingMiddleware(slog.Default()))
	r.Use(middleware.NewCSRFMiddleware(deps.CSRFConfig))

	authHandler := NewAuthHandler(deps.AuthService, deps.Collector)
	scanHandler := NewScanHandler(deps.Analyzer, deps.ScanRecorder, deps.HistoryLister, deps.Collector)
	productHandler := NewProductHandler()
	tipsHandler := NewTipsHandler()
	contactHandler := NewContactHandler(deps.ContactService, deps.Collector)

	// --- 運用ルート ---

	r.Get("/health", newHealthHandler(deps.HealthChecker))
	r.Handle("/metrics", metrics.Handler(deps.Gatherer))
	r.Method(http.MethodGet, "/api/csrf-token", middleware.NewCSRFTokenHandler(deps.CSRFConfig))

	// --- 認証ルート ---

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", authHandler.SignUp)
		r.Post("/login", authHandler.SignIn)
		r.Post("/logout", authHandler.SignOut)
		r.Get("/me", authHandler.Me)
	})

	// --- 画面を支えるAPIルート ---

	r.Group(func(r chi.Router) {
		r.Use(deps.RateLimiter.GeneralMiddleware())

		r.Route("/api", func(r chi.Router) {
			// POST /api/scan - スキャン実行（専用レート制限を追加）
			r.With(deps.RateLimiter.ScanMiddleware()).Post("/scan", scanHandler.Analyze)
			r.Get("/scan/history", scanHandler.History)

			r.Get("/products", productHandler.List)
			r.Get("/tips", tipsHandler.List)
			r.Post("/contact", contactHandler.Submit)
		})
	})

	return r
}

// newHealthHandler はストア接続を確認するヘルスチェックハンドラーを返す。
func newHealthHandler(checker HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := checker.PingContext(r.Context()); err != nil {
			slog.Error("health check failed", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]string{"status": "unavailable"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}
