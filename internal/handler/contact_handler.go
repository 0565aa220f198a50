package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hitoshi/glowscan/internal/contact"
	"github.com/hitoshi/glowscan/internal/metrics"
	"github.com/hitoshi/glowscan/internal/middleware"
	"github.com/hitoshi/glowscan/internal/model"
)

// ContactServiceInterface はお問い合わせハンドラーが必要とするサービスインターフェース。
type ContactServiceInterface interface {
	Submit(ctx context.Context, msg contact.Message) (string, error)
}

// ContactHandler はお問い合わせフォーム関連のHTTPハンドラー。
type ContactHandler struct {
	service   ContactServiceInterface
	collector metrics.MetricsCollector
}

// NewContactHandler はContactHandlerを生成する。
func NewContactHandler(service ContactServiceInterface, collector metrics.MetricsCollector) *ContactHandler {
	return &ContactHandler{
		service:   service,
		collector: collector,
	}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type contactResponse struct {
	MessageID string `json:"messageId"`
}

// Submit はお問い合わせメッセージを受け付ける。
// POST /api/contact
// 送信は疑似遅延のみで実際の配送は行わない。
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteAPIError(w, model.NewMissingFieldError("body"))
		return
	}

	id, err := h.service.Submit(r.Context(), contact.Message{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Message,
	})
	if err != nil {
		var apiErr *model.APIError
		if errors.As(err, &apiErr) {
			middleware.WriteAPIError(w, apiErr)
			return
		}
		slog.Error("contact submit failed", slog.String("error", err.Error()))
		middleware.WriteInternalServerError(w)
		return
	}

	h.collector.RecordContactMessage()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(contactResponse{MessageID: id})
}
