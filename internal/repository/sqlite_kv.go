package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SQLiteKVStore はSQLiteのkv_entriesテーブルを使用したキーバリューストア。
// 読み書きは同期的で、ライターは同一プロセスの1つのみを想定する。
type SQLiteKVStore struct {
	db *sql.DB
}

// NewSQLiteKVStore はSQLiteKVStoreを生成する。
func NewSQLiteKVStore(db *sql.DB) *SQLiteKVStore {
	return &SQLiteKVStore{db: db}
}

// Get は指定キーの値を取得する。キーが存在しない場合は ok=false を返す。
func (s *SQLiteKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM kv_entries WHERE key = ?`,
		key,
	).Scan(&value)

	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get key %q: %w", key, err)
	}

	return value, true, nil
}

// Set は指定キーに値を書き込む。既存の値は上書きされる。
func (s *SQLiteKVStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv_entries (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to set key %q: %w", key, err)
	}
	return nil
}

// Delete は指定キーを削除する。キーが存在しなくてもエラーにならない。
func (s *SQLiteKVStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM kv_entries WHERE key = ?`,
		key,
	)
	if err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}

// compile-time interface check
var _ KVStore = (*SQLiteKVStore)(nil)
