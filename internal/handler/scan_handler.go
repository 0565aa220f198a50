package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/hitoshi/glowscan/internal/metrics"
	"github.com/hitoshi/glowscan/internal/middleware"
	"github.com/hitoshi/glowscan/internal/model"
	"github.com/hitoshi/glowscan/internal/scan"
)

// ScanRecorderInterface はスキャン結果の履歴記録に必要なインターフェース。
type ScanRecorderInterface interface {
	Record(ctx context.Context, session *model.Session, result *model.ScanResult) (bool, error)
}

// HistoryListerInterface は履歴の読み出しに必要なインターフェース。
// repository.HistoryRepositoryの部分集合として定義する。
type HistoryListerInterface interface {
	ListByEmail(ctx context.Context, email string) ([]model.ScanHistoryEntry, error)
}

// ScanHandler はスキャンパイプライン関連のHTTPハンドラー。
type ScanHandler struct {
	analyzer  scan.SkinAnalyzer
	recorder  ScanRecorderInterface
	history   HistoryListerInterface
	collector metrics.MetricsCollector
}

// NewScanHandler はScanHandlerを生成する。
func NewScanHandler(
	analyzer scan.SkinAnalyzer,
	recorder ScanRecorderInterface,
	history HistoryListerInterface,
	collector metrics.MetricsCollector,
) *ScanHandler {
	return &ScanHandler{
		analyzer:  analyzer,
		recorder:  recorder,
		history:   history,
		collector: collector,
	}
}

type analyzeRequest struct {
	Source string `json:"source"`
	Image  string `json:"image"`
}

type analyzeResponse struct {
	Result   *model.ScanResult `json:"result"`
	Recorded bool              `json:"recorded"`
}

type historyResponse struct {
	Entries []model.ScanHistoryEntry `json:"entries"`
}

// Analyze は画像を受け取り、スキャン試行を最初から最後まで実行する。
// POST /api/scan
// ログイン中の場合は結果を履歴に記録する。履歴の記録失敗は
// 解析結果の返却を妨げない（結果はUI状態として常に返る）。
func (h *ScanHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteAPIError(w, model.NewEmptyImageError())
		return
	}

	source, err := scan.ParseSource(req.Source)
	if err != nil {
		writeScanError(w, err)
		return
	}

	img, err := scan.DecodeImage(source, req.Image)
	if err != nil {
		writeScanError(w, err)
		return
	}

	attempt := scan.NewAttempt()
	// 試行の終了時に保持中の画像バッファを必ず解放する
	defer attempt.Reset()

	if err := attempt.AttachImage(img); err != nil {
		writeScanError(w, err)
		return
	}

	start := time.Now()
	result, err := attempt.Analyze(r.Context(), h.analyzer)
	if err != nil {
		writeScanError(w, err)
		return
	}

	h.collector.RecordScan(string(result.SkinType))
	h.collector.RecordScanLatency(time.Since(start))

	session := middleware.SessionFromContext(r.Context())
	recorded, err := h.recorder.Record(r.Context(), session, result)
	if err != nil {
		slog.Error("failed to record scan history", slog.String("error", err.Error()))
		recorded = false
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(analyzeResponse{
		Result:   result,
		Recorded: recorded,
	})
}

// History は現在のセッションのスキャン履歴を新しい順で返す。
// GET /api/scan/history
// 未ログインの場合は空のコレクションを返す（匿名ユーザーの履歴は保存されない）。
func (h *ScanHandler) History(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())

	entries := []model.ScanHistoryEntry{}
	if session != nil {
		var err error
		entries, err = h.history.ListByEmail(r.Context(), session.Email)
		if err != nil {
			slog.Error("failed to list scan history", slog.String("error", err.Error()))
			middleware.WriteInternalServerError(w)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(historyResponse{Entries: entries})
}

// writeScanError はスキャンパイプラインのエラーを統一フォーマットで書き込む。
func writeScanError(w http.ResponseWriter, err error) {
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		middleware.WriteAPIError(w, apiErr)
		return
	}
	slog.Error("scan failed", slog.String("error", err.Error()))
	middleware.WriteInternalServerError(w)
}
