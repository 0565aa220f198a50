package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hitoshi/glowscan/internal/contact"
	"github.com/hitoshi/glowscan/internal/metrics"
	"github.com/hitoshi/glowscan/internal/model"
)

// --- モック定義 ---

// mockContactService はContactServiceInterfaceのモック実装。
type mockContactService struct {
	submitFn func(ctx context.Context, msg contact.Message) (string, error)
}

func (m *mockContactService) Submit(ctx context.Context, msg contact.Message) (string, error) {
	if m.submitFn != nil {
		return m.submitFn(ctx, msg)
	}
	return "11111111-2222-3333-4444-555555555555", nil
}

var _ ContactServiceInterface = (*mockContactService)(nil)

func TestContactHandler_Submit_Returns202WithMessageID(t *testing.T) {
	h := NewContactHandler(&mockContactService{}, &metrics.NopCollector{})

	req := httptest.NewRequest(http.MethodPost, "/api/contact", jsonBody(t, map[string]string{
		"name":    "Ada",
		"email":   "ada@example.com",
		"subject": "質問",
		"message": "おすすめを教えてください。",
	}))
	w := httptest.NewRecorder()

	h.Submit(w, req)

	if w.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusAccepted)
	}

	var resp contactResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp.MessageID == "" {
		t.Error("messageId should not be empty")
	}
}

func TestContactHandler_Submit_MapsBodyFieldToMessage(t *testing.T) {
	var got contact.Message
	svc := &mockContactService{
		submitFn: func(ctx context.Context, msg contact.Message) (string, error) {
			got = msg
			return "id", nil
		},
	}
	h := NewContactHandler(svc, &metrics.NopCollector{})

	req := httptest.NewRequest(http.MethodPost, "/api/contact", jsonBody(t, map[string]string{
		"name":    "Ada",
		"email":   "ada@example.com",
		"subject": "質問",
		"message": "本文テキスト",
	}))
	h.Submit(httptest.NewRecorder(), req)

	if got.Body != "本文テキスト" {
		t.Errorf("Body = %q, want 本文テキスト", got.Body)
	}
	if got.Subject != "質問" {
		t.Errorf("Subject = %q, want 質問", got.Subject)
	}
}

func TestContactHandler_Submit_MissingFieldIs400(t *testing.T) {
	svc := &mockContactService{
		submitFn: func(ctx context.Context, msg contact.Message) (string, error) {
			return "", model.NewMissingFieldError("name")
		},
	}
	h := NewContactHandler(svc, &metrics.NopCollector{})

	req := httptest.NewRequest(http.MethodPost, "/api/contact", jsonBody(t, map[string]string{}))
	w := httptest.NewRecorder()

	h.Submit(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if body := decodeErrorBody(t, w); body.Code != model.ErrCodeMissingField {
		t.Errorf("error code = %q, want %q", body.Code, model.ErrCodeMissingField)
	}
}

func TestContactHandler_Submit_MalformedBodyIs400(t *testing.T) {
	h := NewContactHandler(&mockContactService{}, &metrics.NopCollector{})

	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewBufferString("not json"))
	w := httptest.NewRecorder()

	h.Submit(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}
