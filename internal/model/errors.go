// Package model はドメインモデルを定義する。
package model

import "fmt"

// APIError は統一エラーフォーマットを表す。
// UIに表示する原因カテゴリと対処方法を含む。
// いずれのエラーも致命的ではなく、ユーザーは同じ画面から再試行できる。
type APIError struct {
	Code     string // エラーコード
	Message  string // エラーメッセージ
	Category string // カテゴリ: validation, conflict, auth, device, analysis, system
	Action   string // ユーザー向け対処方法
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodePasswordMismatch   = "PASSWORD_MISMATCH"
	ErrCodePasswordTooShort   = "PASSWORD_TOO_SHORT"
	ErrCodeMissingField       = "MISSING_FIELD"
	ErrCodeEmailTaken         = "EMAIL_TAKEN"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeDeviceUnavailable  = "DEVICE_UNAVAILABLE"
	ErrCodeEmptyImage         = "EMPTY_IMAGE"
	ErrCodeAnalysisAborted    = "ANALYSIS_ABORTED"
)

// NewPasswordMismatchError はパスワードと確認用パスワードの不一致エラーを生成する。
func NewPasswordMismatchError() *APIError {
	return &APIError{
		Code:     ErrCodePasswordMismatch,
		Message:  "パスワードが一致しません。",
		Category: "validation",
		Action:   "パスワードと確認用パスワードに同じ値を入力してください。",
	}
}

// NewPasswordTooShortError はパスワードが短すぎる場合のエラーを生成する。
func NewPasswordTooShortError(minLength int) *APIError {
	return &APIError{
		Code:     ErrCodePasswordTooShort,
		Message:  fmt.Sprintf("パスワードは%d文字以上で入力してください。", minLength),
		Category: "validation",
		Action:   "より長いパスワードを設定してください。",
	}
}

// NewMissingFieldError は必須フィールドが未入力の場合のエラーを生成する。
func NewMissingFieldError(field string) *APIError {
	return &APIError{
		Code:     ErrCodeMissingField,
		Message:  fmt.Sprintf("必須項目が入力されていません: %s", field),
		Category: "validation",
		Action:   "すべての必須項目を入力してください。",
	}
}

// NewEmailTakenError はメールアドレスが登録済みの場合のエラーを生成する。
func NewEmailTakenError(email string) *APIError {
	return &APIError{
		Code:     ErrCodeEmailTaken,
		Message:  fmt.Sprintf("このメールアドレスは既に登録されています: %s", email),
		Category: "conflict",
		Action:   "別のメールアドレスで登録するか、ログインしてください。",
	}
}

// NewInvalidCredentialsError は認証情報が一致しない場合のエラーを生成する。
// 存在しないメールアドレスとパスワード不一致は区別しない。
func NewInvalidCredentialsError() *APIError {
	return &APIError{
		Code:     ErrCodeInvalidCredentials,
		Message:  "メールアドレスまたはパスワードが正しくありません。",
		Category: "auth",
		Action:   "入力内容を確認して再度お試しください。",
	}
}

// NewDeviceUnavailableError はカメラデバイスが利用できない場合のエラーを生成する。
func NewDeviceUnavailableError(reason string) *APIError {
	return &APIError{
		Code:     ErrCodeDeviceUnavailable,
		Message:  fmt.Sprintf("カメラにアクセスできません: %s", reason),
		Category: "device",
		Action:   "カメラの使用を許可するか、画像のアップロードをご利用ください。",
	}
}

// NewEmptyImageError は画像データが空または読み取れない場合のエラーを生成する。
func NewEmptyImageError() *APIError {
	return &APIError{
		Code:     ErrCodeEmptyImage,
		Message:  "画像データが空か、読み取れない形式です。",
		Category: "device",
		Action:   "撮影し直すか、別の画像を選択してください。",
	}
}

// NewAnalysisAbortedError は解析ジョブが完了前に中断された場合のエラーを生成する。
// モック解析は設計上失敗しないため、発生原因はコンテキストのキャンセルのみ。
func NewAnalysisAbortedError(reason string) *APIError {
	return &APIError{
		Code:     ErrCodeAnalysisAborted,
		Message:  fmt.Sprintf("解析が中断されました: %s", reason),
		Category: "analysis",
		Action:   "もう一度スキャンをお試しください。",
	}
}
