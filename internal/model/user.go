// Package model はドメインモデルを定義する。
package model

// UserRecord は登録済みユーザーを表す。
// デモ用途のため、パスワードは平文のままストアに保存される。
// Emailがコレクション内の一意キーとなる。
type UserRecord struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session はクライアントが認識する唯一のログイン中アイデンティティを表す。
// 同時に有効なセッションは最大1つで、プロセスの再起動をまたいで保持される。
type Session struct {
	Email string `json:"email"`
}
