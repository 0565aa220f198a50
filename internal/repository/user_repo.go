package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/hitoshi/glowscan/internal/model"
)

// KVUserRepo はキーバリューストアのusersキーを使用したユーザーリポジトリ。
// 値はUserRecordのJSON配列として保持する。
type KVUserRepo struct {
	kv KVStore

	// 読み出し・追記・書き戻しのシーケンスを直列化する。
	mu sync.Mutex
}

// NewKVUserRepo はKVUserRepoを生成する。
func NewKVUserRepo(kv KVStore) *KVUserRepo {
	return &KVUserRepo{kv: kv}
}

// List は登録済みユーザーを登録順で返す。
// ストアの値が欠損している場合、またはJSONとしてデコードできない場合は空スライスを返す。
func (r *KVUserRepo) List(ctx context.Context) ([]model.UserRecord, error) {
	raw, ok, err := r.kv.Get(ctx, keyUsers)
	if err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}
	if !ok {
		return []model.UserRecord{}, nil
	}

	var users []model.UserRecord
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		// 不正な値は空コレクションとして扱う
		slog.Warn("users value is not decodable, treating as empty",
			slog.String("error", err.Error()),
		)
		return []model.UserRecord{}, nil
	}

	return users, nil
}

// FindByEmail はメールアドレスが一致するユーザーを返す。見つからない場合はnilを返す。
func (r *KVUserRepo) FindByEmail(ctx context.Context, email string) (*model.UserRecord, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, nil
}

// Append はユーザーをコレクション末尾に追加して永続化する。
func (r *KVUserRepo) Append(ctx context.Context, user model.UserRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.List(ctx)
	if err != nil {
		return err
	}

	users = append(users, user)

	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}

	if err := r.kv.Set(ctx, keyUsers, string(data)); err != nil {
		return fmt.Errorf("failed to write users: %w", err)
	}
	return nil
}

// compile-time interface check
var _ UserRepository = (*KVUserRepo)(nil)
