// Package scan はシミュレートされたスキャンパイプライン
// （画像取得 → 疑似遅延 → ランダム生成された解析結果）を提供する。
//
// SkinAnalyzerは「画像を渡して構造化された結果を待つ」外部能力境界であり、
// 本実装のMockAnalyzerを実際の推論呼び出しに差し替えても
// 呼び出し側の変更が不要になるよう分離している。
package scan

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/hitoshi/glowscan/internal/model"
)

// SkinAnalyzer は肌解析の能力境界。
// 画像を受け取り、構造化されたScanResultを返す。失敗はanalysisエラーとして表す。
type SkinAnalyzer interface {
	Submit(ctx context.Context, img *Image) (*model.ScanResult, error)
}

// concernPairs は抽選対象の肌悩みペア。
// 肌タイプとは独立に抽選され、並列配列のインデックス以外の対応関係は持たない。
var concernPairs = [][]string{
	{"Fine Lines", "Wrinkles"},
	{"Acne", "Blemishes"},
	{"Dark Spots", "Hyperpigmentation"},
	{"Dryness", "Dehydration"},
	{"Enlarged Pores", "Texture"},
}

// hydrationMin/hydrationMax はハイドレーションレベルの一様分布の範囲 [40,79]。
const (
	hydrationMin = 40
	hydrationMax = 79
)

// MockAnalyzer は乱数によるモック解析の実装。
// 固定の疑似遅延の後、独立した一様抽選で結果を生成する。
// ネットワークもモデルも使用しないため、中断以外では失敗しない。
type MockAnalyzer struct {
	delay time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewMockAnalyzer は時刻シードのMockAnalyzerを生成する。
// delayは解析ジョブをシミュレートする停止時間。
func NewMockAnalyzer(delay time.Duration) *MockAnalyzer {
	return NewMockAnalyzerWithSource(delay, rand.NewSource(time.Now().UnixNano()))
}

// NewMockAnalyzerWithSource は乱数ソースを指定してMockAnalyzerを生成する。
// テストでソースを固定し、抽選結果を決定的にするために使用する。
func NewMockAnalyzerWithSource(delay time.Duration, src rand.Source) *MockAnalyzer {
	return &MockAnalyzer{
		delay: delay,
		rng:   rand.New(src),
	}
}

// Submit は疑似遅延の後、ランダムサンプリングでScanResultを生成する。
// 遅延中にコンテキストがキャンセルされた場合はanalysisエラーを返す。
func (a *MockAnalyzer) Submit(ctx context.Context, img *Image) (*model.ScanResult, error) {
	if img == nil || len(img.Data) == 0 {
		return nil, model.NewEmptyImageError()
	}

	if a.delay > 0 {
		timer := time.NewTimer(a.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, model.NewAnalysisAbortedError(ctx.Err().Error())
		case <-timer.C:
		}
	}

	a.mu.Lock()
	skinType := model.SkinTypes[a.rng.Intn(len(model.SkinTypes))]
	concerns := concernPairs[a.rng.Intn(len(concernPairs))]
	hydration := a.rng.Intn(hydrationMax-hydrationMin+1) + hydrationMin
	a.mu.Unlock()

	return &model.ScanResult{
		SkinType:        skinType,
		Concerns:        concerns,
		HydrationLevel:  hydration,
		Texture:         model.DeriveTexture(hydration),
		Recommendations: buildRecommendations(skinType, concerns[0]),
	}, nil
}

// buildRecommendations は肌タイプと第1の肌悩みを固定5行のテンプレートに埋め込む。
func buildRecommendations(skinType model.SkinType, firstConcern string) []string {
	return []string{
		fmt.Sprintf("Use a %s-specific cleanser twice daily", strings.ToLower(string(skinType))),
		"Apply SPF 30+ sunscreen every morning",
		fmt.Sprintf("Target %s with specialized serum", strings.ToLower(firstConcern)),
		"Moisturize regularly to maintain hydration",
		"Stay hydrated and get 7-8 hours of sleep",
	}
}

// compile-time interface check
var _ SkinAnalyzer = (*MockAnalyzer)(nil)
