package handler

import (
	"encoding/json"
	"net/http"

	"github.com/hitoshi/glowscan/internal/model"
	"github.com/hitoshi/glowscan/internal/product"
)

// ProductHandler は商品カタログ関連のHTTPハンドラー。
type ProductHandler struct{}

// NewProductHandler はProductHandlerを生成する。
func NewProductHandler() *ProductHandler {
	return &ProductHandler{}
}

type productListResponse struct {
	Products []model.Product `json:"products"`
}

// List はフィルタ適用後の商品リストを返す。
// GET /api/products?category=serum&skin_type=dry&price=30to50
// 各クエリパラメータは省略可能で、省略時はその次元で絞り込まない。
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := product.Filter{
		Category: q.Get("category"),
		SkinType: q.Get("skin_type"),
		Price:    q.Get("price"),
	}

	filtered := product.Apply(product.Catalog(), filter)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(productListResponse{Products: filtered})
}
