package handler

import (
	"encoding/json"
	"net/http"

	"github.com/hitoshi/glowscan/internal/model"
	"github.com/hitoshi/glowscan/internal/tips"
)

// TipsHandler はスキンケアのヒント関連のHTTPハンドラー。
type TipsHandler struct{}

// NewTipsHandler はTipsHandlerを生成する。
func NewTipsHandler() *TipsHandler {
	return &TipsHandler{}
}

type tipsResponse struct {
	General []model.TipGroup `json:"general"`
	// SkinType とSkinTypeTips はskin_typeクエリパラメータが指定された場合のみ含まれる。
	SkinType     string   `json:"skinType,omitempty"`
	SkinTypeTips []string `json:"skinTypeTips,omitempty"`
}

// List は一般的なヒントと、指定された肌タイプのヒントを返す。
// GET /api/tips?skin_type=Oily
// skin_typeには直近のスキャン結果の肌タイプを渡す。未知の値はNormalとして扱う。
func (h *TipsHandler) List(w http.ResponseWriter, r *http.Request) {
	resp := tipsResponse{General: tips.General()}

	if st := r.URL.Query().Get("skin_type"); st != "" {
		resp.SkinType = st
		resp.SkinTypeTips = tips.ForSkinType(model.SkinType(st))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
