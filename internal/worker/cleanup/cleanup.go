// Package cleanup はスキャン履歴の自動整理ジョブを提供する。
// 上限（デフォルト10件）を超過した履歴と、登録ユーザーが存在しない
// メールアドレスの履歴を日次バッチで削除する。
package cleanup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hitoshi/glowscan/internal/model"
	"github.com/hitoshi/glowscan/internal/repository"
	"github.com/hitoshi/glowscan/internal/scan"
)

// CleanupJob は履歴コレクションの自動整理ジョブ。
// 日次実行のバッチジョブとして設計されており、冪等な整理処理を保証する。
type CleanupJob struct {
	history      repository.HistoryRepository
	users        repository.UserRepository
	logger       *slog.Logger
	HistoryLimit int // 保持する履歴件数の上限（デフォルト: 10）
}

// NewCleanupJob は新しいCleanupJobを生成する。
// デフォルトの保持件数は10件。
func NewCleanupJob(history repository.HistoryRepository, users repository.UserRepository, logger *slog.Logger) *CleanupJob {
	return &CleanupJob{
		history:      history,
		users:        users,
		logger:       logger,
		HistoryLimit: scan.DefaultHistoryLimit,
	}
}

// Run は履歴コレクションを整理する。
// 登録ユーザーが存在しないメールアドレスのエントリを除外し、
// 新しい順でHistoryLimit件に切り詰めた結果でコレクションを置き換える。
// 冪等: 整理対象がない場合は書き込みを行わない。
func (j *CleanupJob) Run(ctx context.Context) error {
	start := time.Now()

	entries, err := j.history.List(ctx)
	if err != nil {
		j.logger.Error("履歴クリーンアップジョブの読み出しに失敗しました",
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("履歴の読み出しに失敗: %w", err)
	}

	users, err := j.users.List(ctx)
	if err != nil {
		j.logger.Error("登録ユーザーの読み出しに失敗しました",
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("登録ユーザーの読み出しに失敗: %w", err)
	}

	registered := make(map[string]struct{}, len(users))
	for _, u := range users {
		registered[u.Email] = struct{}{}
	}

	kept := make([]model.ScanHistoryEntry, 0, len(entries))
	for _, e := range entries {
		if _, ok := registered[e.Email]; !ok {
			continue
		}
		kept = append(kept, e)
	}
	if len(kept) > j.HistoryLimit {
		kept = kept[:j.HistoryLimit]
	}

	removedCount := len(entries) - len(kept)
	if removedCount == 0 {
		j.logger.Info("履歴クリーンアップジョブが完了しました（整理対象なし）",
			slog.Int("entry_count", len(entries)),
		)
		return nil
	}

	if err := j.history.Replace(ctx, kept); err != nil {
		j.logger.Error("履歴クリーンアップジョブの書き込みに失敗しました",
			slog.String("error", err.Error()),
			slog.Int("removed_count", removedCount),
		)
		return fmt.Errorf("履歴の置き換えに失敗: %w", err)
	}

	duration := time.Since(start)
	j.logger.Info("履歴クリーンアップジョブが完了しました",
		slog.Int("removed_count", removedCount),
		slog.Int("kept_count", len(kept)),
		slog.Int("history_limit", j.HistoryLimit),
		slog.Float64("duration_ms", float64(duration.Milliseconds())),
	)

	return nil
}
