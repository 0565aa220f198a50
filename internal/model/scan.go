// Package model はドメインモデルを定義する。
package model

import "time"

// SkinType は肌タイプの分類を表す。
type SkinType string

const (
	// SkinTypeOily は脂性肌。
	SkinTypeOily SkinType = "Oily"
	// SkinTypeDry は乾燥肌。
	SkinTypeDry SkinType = "Dry"
	// SkinTypeCombination は混合肌。
	SkinTypeCombination SkinType = "Combination"
	// SkinTypeNormal は普通肌。
	SkinTypeNormal SkinType = "Normal"
	// SkinTypeSensitive は敏感肌。
	SkinTypeSensitive SkinType = "Sensitive"
)

// SkinTypes は解析結果の抽選対象となる全肌タイプ。
var SkinTypes = []SkinType{
	SkinTypeOily,
	SkinTypeDry,
	SkinTypeCombination,
	SkinTypeNormal,
	SkinTypeSensitive,
}

// Texture は肌の質感を表す。HydrationLevelから純粋に導出される。
type Texture string

const (
	// TextureSmooth はHydrationLevel > 60 の場合の質感。
	TextureSmooth Texture = "Smooth"
	// TextureSlightlyRough はHydrationLevel <= 60 の場合の質感。
	TextureSlightlyRough Texture = "Slightly Rough"
)

// DeriveTexture はHydrationLevelから質感を導出する。
// texture == Smooth ⇔ hydrationLevel > 60 の不変条件を一箇所で保証する。
func DeriveTexture(hydrationLevel int) Texture {
	if hydrationLevel > 60 {
		return TextureSmooth
	}
	return TextureSlightlyRough
}

// ScanResult は1回のスキャン解析の構造化された出力を表す。
type ScanResult struct {
	SkinType        SkinType `json:"skinType"`
	Concerns        []string `json:"concerns"`
	HydrationLevel  int      `json:"hydrationLevel"`
	Texture         Texture  `json:"texture"`
	Recommendations []string `json:"recommendations"`
}

// ScanHistoryEntry はユーザーごとに保持されるタイムスタンプ付きスキャン結果を表す。
// コレクション全体は新しい順で最大10件に切り詰められる。
type ScanHistoryEntry struct {
	Date   time.Time  `json:"date"`
	Result ScanResult `json:"result"`
	Email  string     `json:"email"`
}
