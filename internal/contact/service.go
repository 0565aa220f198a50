// Package contact はお問い合わせフォームの送信シミュレーションを提供する。
// 実際の配送は行わず、固定の疑似遅延の後にメッセージIDを発行してログに記録する。
package contact

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/hitoshi/glowscan/internal/model"
)

// Message はお問い合わせフォームの入力内容を表す。
type Message struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

// Service はお問い合わせ送信のビジネスロジックを提供する。
type Service struct {
	delay     time.Duration
	sanitizer *bluemonday.Policy
}

// NewService はServiceを生成する。
// delayは送信ジョブをシミュレートする停止時間。
func NewService(delay time.Duration) *Service {
	return &Service{
		delay:     delay,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Submit はメッセージを検証・サニタイズし、疑似遅延の後にメッセージIDを発行する。
// 自由入力テキストはHTMLを除去してからログに記録する。
// 遅延中にコンテキストがキャンセルされた場合はanalysisエラーではなく
// コンテキストのエラーをそのまま返す（送信は成立しない）。
func (s *Service) Submit(ctx context.Context, msg Message) (string, error) {
	if strings.TrimSpace(msg.Name) == "" {
		return "", model.NewMissingFieldError("name")
	}
	if strings.TrimSpace(msg.Email) == "" {
		return "", model.NewMissingFieldError("email")
	}
	if strings.TrimSpace(msg.Subject) == "" {
		return "", model.NewMissingFieldError("subject")
	}
	if strings.TrimSpace(msg.Body) == "" {
		return "", model.NewMissingFieldError("message")
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}

	id := uuid.New().String()

	slog.Info("contact message received",
		slog.String("message_id", id),
		slog.String("name", s.sanitizer.Sanitize(msg.Name)),
		slog.String("email", msg.Email),
		slog.String("subject", s.sanitizer.Sanitize(msg.Subject)),
		slog.Int("body_length", len(s.sanitizer.Sanitize(msg.Body))),
	)

	return id, nil
}
