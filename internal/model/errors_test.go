package model

import (
	"errors"
	"strings"
	"testing"
)

func TestAPIError_ImplementsError(t *testing.T) {
	var err error = NewInvalidCredentialsError()

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatal("errors.As should unwrap *APIError")
	}
	if apiErr.Code != ErrCodeInvalidCredentials {
		t.Errorf("Code = %q, want %q", apiErr.Code, ErrCodeInvalidCredentials)
	}
}

func TestAPIError_ErrorFormatContainsCode(t *testing.T) {
	err := NewEmptyImageError()
	if !strings.Contains(err.Error(), ErrCodeEmptyImage) {
		t.Errorf("Error() = %q, should contain code %q", err.Error(), ErrCodeEmptyImage)
	}
}

func TestErrorConstructors_Categories(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{"パスワード不一致", NewPasswordMismatchError(), "validation"},
		{"パスワード不足", NewPasswordTooShortError(6), "validation"},
		{"必須項目未入力", NewMissingFieldError("name"), "validation"},
		{"メール重複", NewEmailTakenError("a@example.com"), "conflict"},
		{"認証失敗", NewInvalidCredentialsError(), "auth"},
		{"デバイス不可", NewDeviceUnavailableError("permission denied"), "device"},
		{"空画像", NewEmptyImageError(), "device"},
		{"解析中断", NewAnalysisAbortedError("context canceled"), "analysis"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Category != tt.want {
				t.Errorf("Category = %q, want %q", tt.err.Category, tt.want)
			}
			if tt.err.Action == "" {
				t.Error("Action should not be empty")
			}
		})
	}
}

func TestNewPasswordTooShortError_IncludesMinLength(t *testing.T) {
	err := NewPasswordTooShortError(6)
	if !strings.Contains(err.Message, "6") {
		t.Errorf("Message = %q, should contain minimum length", err.Message)
	}
}

func TestNewInvalidCredentialsError_DoesNotLeakWhichFieldFailed(t *testing.T) {
	// 存在しないメールアドレスとパスワード不一致で同一のエラーを返すこと
	err := NewInvalidCredentialsError()
	if strings.Contains(err.Message, "パスワードのみ") || strings.Contains(err.Message, "メールアドレスのみ") {
		t.Errorf("Message = %q, should not distinguish which credential failed", err.Message)
	}
}
