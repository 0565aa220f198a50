// Package product は静的な商品カタログとクライアントサイド相当のフィルタリングを提供する。
package product

import "github.com/hitoshi/glowscan/internal/model"

// catalog はアプリケーションにバンドルされるイミュータブルな商品カタログ。
var catalog = []model.Product{
	{
		ID:          1,
		Name:        "Hydrating Serum",
		Brand:       "GlowLux",
		Price:       45,
		ImageRef:    "products/hydrating-serum.jpg",
		Rating:      4.8,
		Category:    "serum",
		SkinTypes:   []string{"dry", "normal", "combination"},
		Description: "Intensive hydration with hyaluronic acid for plump, dewy skin",
	},
	{
		ID:          2,
		Name:        "Rich Moisturizer",
		Brand:       "Derma Essence",
		Price:       38,
		ImageRef:    "products/rich-moisturizer.jpg",
		Rating:      4.7,
		Category:    "moisturizer",
		SkinTypes:   []string{"dry", "sensitive"},
		Description: "Nourishing cream with ceramides for lasting comfort",
	},
	{
		ID:          3,
		Name:        "Daily Sunscreen SPF 50",
		Brand:       "SunGuard",
		Price:       32,
		ImageRef:    "products/daily-sunscreen.jpg",
		Rating:      4.9,
		Category:    "sunscreen",
		SkinTypes:   []string{"oily", "normal", "combination", "dry", "sensitive"},
		Description: "Lightweight, non-greasy protection against UV damage",
	},
	{
		ID:          4,
		Name:        "Gentle Foam Cleanser",
		Brand:       "PureClean",
		Price:       28,
		ImageRef:    "products/gentle-foam-cleanser.jpg",
		Rating:      4.6,
		Category:    "cleanser",
		SkinTypes:   []string{"sensitive", "dry", "normal"},
		Description: "pH-balanced formula that cleanses without stripping",
	},
	{
		ID:          5,
		Name:        "Purifying Clay Mask",
		Brand:       "ClayWorks",
		Price:       35,
		ImageRef:    "products/purifying-clay-mask.jpg",
		Rating:      4.5,
		Category:    "mask",
		SkinTypes:   []string{"oily", "combination"},
		Description: "Deep cleansing mask to minimize pores and control oil",
	},
	{
		ID:          6,
		Name:        "Anti-Aging Eye Cream",
		Brand:       "Youth Restore",
		Price:       52,
		ImageRef:    "products/anti-aging-eye-cream.jpg",
		Rating:      4.7,
		Category:    "eye-cream",
		SkinTypes:   []string{"normal", "dry", "combination"},
		Description: "Targets fine lines and dark circles for brighter eyes",
	},
}

// Catalog はカタログ全体のコピーを返す。
func Catalog() []model.Product {
	out := make([]model.Product, len(catalog))
	copy(out, catalog)
	return out
}
