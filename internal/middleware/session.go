// Package middleware はHTTPミドルウェアを提供する。
package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/hitoshi/glowscan/internal/model"
)

// contextKey はコンテキストに値を格納するための型安全なキー。
type contextKey string

// sessionContextKey はリクエストコンテキストにセッションを格納するためのキー。
var sessionContextKey = contextKey("session")

// SessionSource は永続化されたセッションマーカーの読み出しに必要なインターフェース。
// repository.SessionRepositoryの部分集合として定義する。
type SessionSource interface {
	Current(ctx context.Context) (*model.Session, error)
}

// NewSessionMiddleware はストアからアクティブセッションを読み取り、
// リクエストコンテキストに注入するミドルウェアを返す。
// どの画面も認証でゲートしないため、セッションがなくてもリクエストは通過する。
// ストアの読み出しに失敗した場合は未ログインとして扱う。
func NewSessionMiddleware(source SessionSource) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := source.Current(r.Context())
			if err != nil {
				slog.Error("failed to read current session",
					slog.String("error", err.Error()),
				)
				next.ServeHTTP(w, r)
				return
			}
			if session == nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext はリクエストコンテキストからセッションを取得する。
// セッションがない（未ログイン）場合はnilを返す。
func SessionFromContext(ctx context.Context) *model.Session {
	session, ok := ctx.Value(sessionContextKey).(*model.Session)
	if !ok {
		return nil
	}
	return session
}

// ContextWithSession はコンテキストにセッションを注入する。
// テストやミドルウェア以外のコンテキスト生成で使用する。
func ContextWithSession(ctx context.Context, session *model.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, session)
}
