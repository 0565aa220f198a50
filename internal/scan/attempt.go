package scan

import (
	"context"
	"fmt"

	"github.com/hitoshi/glowscan/internal/model"
)

// State は1回のスキャン試行のライフサイクル上の状態を表す。
type State string

const (
	// StateIdle は画像未取得の初期状態。
	StateIdle State = "idle"
	// StateImageReady は画像を取得済みで解析開始を待つ状態。
	StateImageReady State = "image_ready"
	// StateAnalyzing は解析ジョブの実行中。
	StateAnalyzing State = "analyzing"
	// StateResultReady は解析結果が確定した状態。
	StateResultReady State = "result_ready"
)

// Attempt は1回のスキャン試行の状態遷移を管理する。
//
//	Idle --(画像取得)--> ImageReady
//	ImageReady --(撮り直し/キャンセル)--> Idle
//	ImageReady --(解析開始)--> Analyzing
//	Analyzing --(遅延経過)--> ResultReady
//	ResultReady --(新規スキャン)--> Idle
//
// 上記以外の遷移は拒否する。Resetはどの状態からでも保持中の
// 画像バッファを解放してIdleに戻す。カメラデバイス相当のリソースを
// 持ったまま離脱しないための契約をここで保証する。
type Attempt struct {
	state  State
	image  *Image
	result *model.ScanResult
}

// NewAttempt はIdle状態のAttemptを生成する。
func NewAttempt() *Attempt {
	return &Attempt{state: StateIdle}
}

// State は現在の状態を返す。
func (a *Attempt) State() State {
	return a.state
}

// Result は確定済みの解析結果を返す。ResultReady以外ではnilを返す。
func (a *Attempt) Result() *model.ScanResult {
	return a.result
}

// AttachImage は画像バッファを取り付けてImageReadyに遷移する。
// Idle以外の状態からは遷移できない。
func (a *Attempt) AttachImage(img *Image) error {
	if a.state != StateIdle {
		return fmt.Errorf("cannot attach image in state %q", a.state)
	}
	if img == nil || len(img.Data) == 0 {
		return model.NewEmptyImageError()
	}

	a.image = img
	a.state = StateImageReady
	return nil
}

// Reset は保持中の画像バッファと結果を解放してIdleに戻す。どの状態からでも呼び出せる。
func (a *Attempt) Reset() {
	a.image = nil
	a.result = nil
	a.state = StateIdle
}

// Analyze は取り付け済みの画像をanalyzerに渡し、結果を確定させる。
// ImageReady以外の状態からは開始できない。
// 解析が失敗（中断）した場合はImageReadyに戻り、再試行できる。
func (a *Attempt) Analyze(ctx context.Context, analyzer SkinAnalyzer) (*model.ScanResult, error) {
	if a.state != StateImageReady {
		return nil, fmt.Errorf("cannot analyze in state %q", a.state)
	}

	a.state = StateAnalyzing
	result, err := analyzer.Submit(ctx, a.image)
	if err != nil {
		a.state = StateImageReady
		return nil, err
	}

	a.result = result
	a.state = StateResultReady
	return result, nil
}
