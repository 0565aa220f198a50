package product

import "github.com/hitoshi/glowscan/internal/model"

// FilterAll はフィルタ次元を絞り込まないことを表す値。
const FilterAll = "all"

// 価格帯バケット。
const (
	PriceUnder30 = "under30"
	Price30to50  = "30to50"
	PriceOver50  = "over50"
)

// Filter は商品フィルタの3次元を表す。
// ゼロ値（空文字列）はFilterAllと同様に絞り込みなしとして扱う。
type Filter struct {
	Category string
	SkinType string
	Price    string
}

// Apply はカタログにフィルタを適用した商品リストを返す。
// 各次元はANDで結合され、次元ごとの判定は他の次元と独立のため、
// 適用順序によらず同じ集合が得られる。
func Apply(products []model.Product, f Filter) []model.Product {
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if !matchCategory(p, f.Category) {
			continue
		}
		if !matchSkinType(p, f.SkinType) {
			continue
		}
		if !matchPrice(p, f.Price) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchCategory(p model.Product, category string) bool {
	if category == "" || category == FilterAll {
		return true
	}
	return p.Category == category
}

func matchSkinType(p model.Product, skinType string) bool {
	if skinType == "" || skinType == FilterAll {
		return true
	}
	for _, st := range p.SkinTypes {
		if st == skinType {
			return true
		}
	}
	return false
}

func matchPrice(p model.Product, price string) bool {
	switch price {
	case PriceUnder30:
		return p.Price < 30
	case Price30to50:
		return p.Price >= 30 && p.Price <= 50
	case PriceOver50:
		return p.Price > 50
	default:
		// 未知の価格帯は絞り込みなしとして扱う
		return true
	}
}
