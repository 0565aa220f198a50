// Package auth はモック認証フロー（サインアップ・ログイン・ログアウト）と
// セッション管理を提供する。
//
// デモアプリケーションのため、パスワードは平文のまま保存・比較され、
// ハッシュ化・レート制限・有効期限は存在しない。セキュリティ強化の対象ではない。
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hitoshi/glowscan/internal/model"
	"github.com/hitoshi/glowscan/internal/repository"
)

// MinPasswordLength はサインアップ時に要求する最小パスワード長。
const MinPasswordLength = 6

// Service は認証に関するビジネスロジックを提供する。
type Service struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
}

// NewService はServiceを生成する。
func NewService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository) *Service {
	return &Service{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
	}
}

// SignUp は新規ユーザーを登録し、そのユーザーのセッションを確立する。
// パスワード不一致・パスワード長不足はvalidationエラー、
// メールアドレス重複はconflictエラーを返す。
// 失敗時にはUserRecordは作成されず、セッションも変化しない。
func (s *Service) SignUp(ctx context.Context, name, email, password, confirmPassword string) (*model.Session, error) {
	if name == "" {
		return nil, model.NewMissingFieldError("name")
	}
	if email == "" {
		return nil, model.NewMissingFieldError("email")
	}
	if password != confirmPassword {
		return nil, model.NewPasswordMismatchError()
	}
	if len(password) < MinPasswordLength {
		return nil, model.NewPasswordTooShortError(MinPasswordLength)
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, model.NewEmailTakenError(email)
	}

	user := model.UserRecord{
		Name:     name,
		Email:    email,
		Password: password,
	}
	if err := s.userRepo.Append(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to append user: %w", err)
	}

	if err := s.sessionRepo.Establish(ctx, email); err != nil {
		return nil, fmt.Errorf("failed to establish session: %w", err)
	}

	slog.Info("new user signed up", slog.String("email", email))

	return &model.Session{Email: email}, nil
}

// SignIn は登録済みユーザーコレクションを線形走査し、
// メールアドレスとパスワードの完全一致でログインする。
// 一致しない場合はauthエラーを返し、セッションは変化しない。
// メールアドレスは一意のため、最初の一致で確定する。
func (s *Service) SignIn(ctx context.Context, email, password string) (*model.Session, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	var matched *model.UserRecord
	for i := range users {
		if users[i].Email == email && users[i].Password == password {
			matched = &users[i]
			break
		}
	}
	if matched == nil {
		return nil, model.NewInvalidCredentialsError()
	}

	if err := s.sessionRepo.Establish(ctx, matched.Email); err != nil {
		return nil, fmt.Errorf("failed to establish session: %w", err)
	}

	slog.Info("user signed in", slog.String("email", matched.Email))

	return &model.Session{Email: matched.Email}, nil
}

// SignOut はセッションマーカーを無条件にクリアする。冪等。
func (s *Service) SignOut(ctx context.Context) error {
	if err := s.sessionRepo.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	slog.Info("user signed out")
	return nil
}

// CurrentSession は永続化されたセッションマーカーを返す。
// 未ログインの場合はnilを返す。アプリケーション起動時のログイン状態復元に使用する。
func (s *Service) CurrentSession(ctx context.Context) (*model.Session, error) {
	session, err := s.sessionRepo.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read current session: %w", err)
	}
	return session, nil
}
