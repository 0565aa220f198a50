package scan

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hitoshi/glowscan/internal/model"
	"github.com/hitoshi/glowscan/internal/repository"
)

// DefaultHistoryLimit は保持するスキャン履歴の既定の上限件数。
const DefaultHistoryLimit = 10

// Recorder はスキャン結果をユーザーの履歴コレクションに記録する。
type Recorder struct {
	repo  repository.HistoryRepository
	limit int
	now   func() time.Time
}

// NewRecorder はRecorderを生成する。limitが0以下の場合は既定値を使用する。
func NewRecorder(repo repository.HistoryRepository, limit int) *Recorder {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &Recorder{
		repo:  repo,
		limit: limit,
		now:   time.Now,
	}
}

// Record はセッションがアクティブな場合のみ、結果をタイムスタンプ付きで
// 履歴コレクションの先頭に追加し、上限件数に切り詰めて永続化する。
// セッションがない場合は何も保存せずに終了する（匿名ユーザーの履歴は残らない）。
// 戻り値は記録されたかどうかを表す。
func (r *Recorder) Record(ctx context.Context, session *model.Session, result *model.ScanResult) (bool, error) {
	if session == nil {
		return false, nil
	}

	entry := model.ScanHistoryEntry{
		Date:   r.now().UTC(),
		Result: *result,
		Email:  session.Email,
	}

	if err := r.repo.Prepend(ctx, entry, r.limit); err != nil {
		return false, fmt.Errorf("failed to record scan history: %w", err)
	}

	slog.Info("scan result recorded",
		slog.String("email", session.Email),
		slog.String("skin_type", string(result.SkinType)),
	)
	return true, nil
}
