// Package handler はHTTPハンドラーを提供する。
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hitoshi/glowscan/internal/metrics"
	"github.com/hitoshi/glowscan/internal/middleware"
	"github.com/hitoshi/glowscan/internal/model"
)

// AuthServiceInterface は認証ハンドラーが必要とするサービスインターフェース。
type AuthServiceInterface interface {
	SignUp(ctx context.Context, name, email, password, confirmPassword string) (*model.Session, error)
	SignIn(ctx context.Context, email, password string) (*model.Session, error)
	SignOut(ctx context.Context) error
	CurrentSession(ctx context.Context) (*model.Session, error)
}

// AuthHandler はモック認証関連のHTTPハンドラー。
type AuthHandler struct {
	service   AuthServiceInterface
	collector metrics.MetricsCollector
}

// NewAuthHandler はAuthHandlerを生成する。
func NewAuthHandler(service AuthServiceInterface, collector metrics.MetricsCollector) *AuthHandler {
	return &AuthHandler{
		service:   service,
		collector: collector,
	}
}

type signUpRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Email string `json:"email"`
}

// SignUp は新規ユーザーを登録し、セッションを確立する。
// POST /auth/signup
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteAPIError(w, model.NewMissingFieldError("body"))
		return
	}

	session, err := h.service.SignUp(r.Context(), req.Name, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		var apiErr *model.APIError
		if errors.As(err, &apiErr) {
			middleware.WriteAPIError(w, apiErr)
			return
		}
		slog.Error("signup failed", slog.String("error", err.Error()))
		middleware.WriteInternalServerError(w)
		return
	}

	h.collector.RecordSignup()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(sessionResponse{Email: session.Email})
}

// SignIn は登録済みユーザーとしてログインする。
// POST /auth/login
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteAPIError(w, model.NewMissingFieldError("body"))
		return
	}

	session, err := h.service.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		var apiErr *model.APIError
		if errors.As(err, &apiErr) {
			if apiErr.Category == "auth" {
				h.collector.RecordLoginFailure()
			}
			middleware.WriteAPIError(w, apiErr)
			return
		}
		slog.Error("login failed", slog.String("error", err.Error()))
		middleware.WriteInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sessionResponse{Email: session.Email})
}

// SignOut はセッションを破棄する。冪等。
// POST /auth/logout
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.service.SignOut(r.Context()); err != nil {
		slog.Error("logout failed", slog.String("error", err.Error()))
		middleware.WriteInternalServerError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Me は現在のログインユーザー情報を返す。
// GET /auth/me
// アプリケーション起動時のログイン状態復元に使用する。
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.CurrentSession(r.Context())
	if err != nil {
		slog.Error("failed to get current session", slog.String("error", err.Error()))
		middleware.WriteInternalServerError(w)
		return
	}
	if session == nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sessionResponse{Email: session.Email})
}
