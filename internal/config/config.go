package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config はアプリケーション全体の設定を保持する。
// 環境変数から起動時に1回読み込み、イミュータブルとして扱う。
// デモアプリケーションのため、すべての項目はデフォルト値を持つ。
type Config struct {
	// Store
	StorePath string

	// Scan
	AnalyzeDelay time.Duration
	HistoryLimit int

	// Contact
	ContactSubmitDelay time.Duration

	// Rate Limit
	RateLimitGeneral int
	RateLimitScan    int

	// Server
	ServerPort string
	BaseURL    string

	// Cookie
	CookieSecure bool
	CookieDomain string

	// CORS
	CORSAllowedOrigin string
}

// Load は環境変数からConfigを読み込む。
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.StorePath = getEnvString("STORE_PATH", "glowscan.db")
	cfg.AnalyzeDelay = getEnvDuration("ANALYZE_DELAY", 3*time.Second)
	cfg.HistoryLimit = getEnvInt("HISTORY_LIMIT", 10)
	cfg.ContactSubmitDelay = getEnvDuration("CONTACT_SUBMIT_DELAY", 1500*time.Millisecond)
	cfg.RateLimitGeneral = getEnvInt("RATE_LIMIT_GENERAL", 120)
	cfg.RateLimitScan = getEnvInt("RATE_LIMIT_SCAN", 10)
	cfg.ServerPort = getEnvString("SERVER_PORT", "8080")
	cfg.BaseURL = getEnvString("BASE_URL", "http://localhost:8080")
	cfg.CookieSecure = strings.HasPrefix(cfg.BaseURL, "https://")
	cfg.CookieDomain = getEnvString("COOKIE_DOMAIN", "")
	cfg.CORSAllowedOrigin = getEnvString("CORS_ALLOWED_ORIGIN", "http://localhost:3000")

	return cfg, nil
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
