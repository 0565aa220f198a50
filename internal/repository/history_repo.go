package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/hitoshi/glowscan/internal/model"
)

// KVHistoryRepo はキーバリューストアのscanHistoryキーを使用した履歴リポジトリ。
// 値はScanHistoryEntryのJSON配列を新しい順で保持する。
// コレクションは全体で上限件数に切り詰められ、各エントリが所有者のメールアドレスを持つ。
type KVHistoryRepo struct {
	kv KVStore

	// 読み出し・先頭追加・書き戻しのシーケンスを直列化する。
	mu sync.Mutex
}

// NewKVHistoryRepo はKVHistoryRepoを生成する。
func NewKVHistoryRepo(kv KVStore) *KVHistoryRepo {
	return &KVHistoryRepo{kv: kv}
}

// List は全履歴エントリを新しい順で返す。
// ストアの値が欠損している場合、またはJSONとしてデコードできない場合は空スライスを返す。
func (r *KVHistoryRepo) List(ctx context.Context) ([]model.ScanHistoryEntry, error) {
	raw, ok, err := r.kv.Get(ctx, keyScanHistory)
	if err != nil {
		return nil, fmt.Errorf("failed to read scan history: %w", err)
	}
	if !ok {
		return []model.ScanHistoryEntry{}, nil
	}

	var entries []model.ScanHistoryEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		// 不正な値は空コレクションとして扱う
		slog.Warn("scan history value is not decodable, treating as empty",
			slog.String("error", err.Error()),
		)
		return []model.ScanHistoryEntry{}, nil
	}

	return entries, nil
}

// ListByEmail は指定メールアドレスの履歴エントリを新しい順で返す。
func (r *KVHistoryRepo) ListByEmail(ctx context.Context, email string) ([]model.ScanHistoryEntry, error) {
	entries, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]model.ScanHistoryEntry, 0, len(entries))
	for _, e := range entries {
		if e.Email == email {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// Prepend はエントリをコレクション先頭に追加し、新しい順でlimit件に切り詰めて永続化する。
func (r *KVHistoryRepo) Prepend(ctx context.Context, entry model.ScanHistoryEntry, limit int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.List(ctx)
	if err != nil {
		return err
	}

	entries = append([]model.ScanHistoryEntry{entry}, entries...)
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	return r.write(ctx, entries)
}

// Replace はコレクション全体を置き換えて永続化する。
func (r *KVHistoryRepo) Replace(ctx context.Context, entries []model.ScanHistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.write(ctx, entries)
}

func (r *KVHistoryRepo) write(ctx context.Context, entries []model.ScanHistoryEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode scan history: %w", err)
	}

	if err := r.kv.Set(ctx, keyScanHistory, string(data)); err != nil {
		return fmt.Errorf("failed to write scan history: %w", err)
	}
	return nil
}

// compile-time interface check
var _ HistoryRepository = (*KVHistoryRepo)(nil)
