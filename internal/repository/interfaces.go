// Package repository はデータ永続化のインターフェースを定義する。
//
// 永続化の実体はブラウザのlocalStorageに相当するキーバリューストアで、
// users / currentUser / scanHistory の3キーのみを使用する。
// ストアから読み出した値のデコードは失敗しうる明示的な境界として扱い、
// 不正な値や欠損は空コレクションとみなす。
package repository

import (
	"context"

	"github.com/hitoshi/glowscan/internal/model"
)

// ストアのキー。ブラウザ版のlocalStorageキーと同一の契約を保つ。
const (
	keyUsers       = "users"
	keyCurrentUser = "currentUser"
	keyScanHistory = "scanHistory"
)

// KVStore は永続キーバリューストアの抽象。
// 値は文字列（JSONまたは素の文字列）で、スキーマの解釈は各リポジトリが行う。
type KVStore interface {
	// Get は指定キーの値を返す。キーが存在しない場合は ok=false を返す。
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set は指定キーに値を書き込む。既存の値は上書きされる。
	Set(ctx context.Context, key, value string) error
	// Delete は指定キーを削除する。キーが存在しなくてもエラーにならない。
	Delete(ctx context.Context, key string) error
}

// UserRepository は登録済みユーザーコレクションの永続化インターフェース。
type UserRepository interface {
	// List は登録済みユーザーを登録順で返す。
	// ストアの値が欠損・不正な場合は空スライスを返す。
	List(ctx context.Context) ([]model.UserRecord, error)

	// FindByEmail はメールアドレスが一致するユーザーを返す。見つからない場合はnilを返す。
	FindByEmail(ctx context.Context, email string) (*model.UserRecord, error)

	// Append はユーザーをコレクション末尾に追加して永続化する。
	// メールアドレスの一意性チェックは呼び出し側（サービス層）の責務。
	Append(ctx context.Context, user model.UserRecord) error
}

// SessionRepository はアクティブセッションマーカーの永続化インターフェース。
// セッションは高々1つのシングルトンとして扱う。
type SessionRepository interface {
	// Current は永続化されたセッションマーカーを返す。未ログインの場合はnilを返す。
	Current(ctx context.Context) (*model.Session, error)
	// Establish は指定メールアドレスのセッションを確立する。既存のセッションは置き換える。
	Establish(ctx context.Context, email string) error
	// Clear はセッションマーカーを無条件に削除する。冪等。
	Clear(ctx context.Context) error
}

// HistoryRepository はスキャン履歴コレクションの永続化インターフェース。
type HistoryRepository interface {
	// List は全履歴エントリを新しい順で返す。
	// ストアの値が欠損・不正な場合は空スライスを返す。
	List(ctx context.Context) ([]model.ScanHistoryEntry, error)

	// ListByEmail は指定メールアドレスの履歴エントリを新しい順で返す。
	ListByEmail(ctx context.Context, email string) ([]model.ScanHistoryEntry, error)

	// Prepend はエントリをコレクション先頭に追加し、新しい順でlimit件に切り詰めて永続化する。
	// 超過した最古のエントリは暗黙に破棄される。
	Prepend(ctx context.Context, entry model.ScanHistoryEntry, limit int) error

	// Replace はコレクション全体を置き換えて永続化する。クリーンアップジョブ用。
	Replace(ctx context.Context, entries []model.ScanHistoryEntry) error
}
