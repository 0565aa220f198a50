// Package tips は静的なスキンケアのヒント集を提供する。
// 一般的なヒントのグループと、直近のスキャン結果の肌タイプに応じたヒントを返す。
package tips

import "github.com/hitoshi/glowscan/internal/model"

// generalTips はすべてのユーザーに表示される一般的なヒント。
var generalTips = []model.TipGroup{
	{
		Title: "Morning Routine",
		Tips: []string{
			"Cleanse with a gentle, pH-balanced cleanser",
			"Apply vitamin C serum for brightness",
			"Use lightweight moisturizer",
			"Always apply SPF 30+ sunscreen",
		},
	},
	{
		Title: "Evening Routine",
		Tips: []string{
			"Double cleanse to remove makeup and sunscreen",
			"Use retinol or treatment serum",
			"Apply rich night cream",
			"Don't forget your neck and décolleté",
		},
	},
	{
		Title: "Hydration Tips",
		Tips: []string{
			"Drink at least 8 glasses of water daily",
			"Use a humidifier in dry environments",
			"Apply hyaluronic acid serum",
			"Mist throughout the day",
		},
	},
	{
		Title: "Lifestyle Habits",
		Tips: []string{
			"Get 7-8 hours of quality sleep",
			"Eat antioxidant-rich foods",
			"Manage stress with meditation",
			"Exercise regularly for circulation",
		},
	},
}

// skinTypeTips は肌タイプごとのヒント。
var skinTypeTips = map[model.SkinType][]string{
	model.SkinTypeOily: {
		"Use oil-free, non-comedogenic products",
		"Try clay masks 2-3 times per week",
		"Avoid heavy, greasy moisturizers",
		"Use salicylic acid for pore control",
	},
	model.SkinTypeDry: {
		"Use cream-based cleansers",
		"Layer hydrating products",
		"Apply facial oil at night",
		"Avoid hot water when cleansing",
	},
	model.SkinTypeCombination: {
		"Use different products for different zones",
		"Balance with lightweight gel moisturizer",
		"Spot-treat oily areas with BHA",
		"Hydrate dry areas with extra moisture",
	},
	model.SkinTypeNormal: {
		"Maintain with balanced routine",
		"Focus on prevention and protection",
		"Use gentle, effective products",
		"Adapt routine to seasonal changes",
	},
	model.SkinTypeSensitive: {
		"Choose fragrance-free products",
		"Patch test all new products",
		"Avoid harsh exfoliants",
		"Use soothing ingredients like centella",
	},
}

// General は一般的なヒントのグループを返す。
func General() []model.TipGroup {
	out := make([]model.TipGroup, len(generalTips))
	copy(out, generalTips)
	return out
}

// ForSkinType は指定肌タイプのヒントを返す。
// 未知の肌タイプにはNormalのヒントを返す。
func ForSkinType(skinType model.SkinType) []string {
	if tips, ok := skinTypeTips[skinType]; ok {
		return tips
	}
	return skinTypeTips[model.SkinTypeNormal]
}
