package repository

import (
	"context"
	"fmt"

	"github.com/hitoshi/glowscan/internal/model"
)

// KVSessionRepo はキーバリューストアのcurrentUserキーを使用したセッションリポジトリ。
// 値はメールアドレスの素の文字列で、JSONではない。
type KVSessionRepo struct {
	kv KVStore
}

// NewKVSessionRepo はKVSessionRepoを生成する。
func NewKVSessionRepo(kv KVStore) *KVSessionRepo {
	return &KVSessionRepo{kv: kv}
}

// Current は永続化されたセッションマーカーを返す。未ログインの場合はnilを返す。
// 空文字列のマーカーは欠損と同様に未ログインとして扱う。
func (r *KVSessionRepo) Current(ctx context.Context) (*model.Session, error) {
	email, ok, err := r.kv.Get(ctx, keyCurrentUser)
	if err != nil {
		return nil, fmt.Errorf("failed to read session marker: %w", err)
	}
	if !ok || email == "" {
		return nil, nil
	}

	return &model.Session{Email: email}, nil
}

// Establish は指定メールアドレスのセッションを確立する。既存のセッションは置き換える。
func (r *KVSessionRepo) Establish(ctx context.Context, email string) error {
	if err := r.kv.Set(ctx, keyCurrentUser, email); err != nil {
		return fmt.Errorf("failed to write session marker: %w", err)
	}
	return nil
}

// Clear はセッションマーカーを無条件に削除する。冪等。
func (r *KVSessionRepo) Clear(ctx context.Context) error {
	if err := r.kv.Delete(ctx, keyCurrentUser); err != nil {
		return fmt.Errorf("failed to clear session marker: %w", err)
	}
	return nil
}

// compile-time interface check
var _ SessionRepository = (*KVSessionRepo)(nil)
