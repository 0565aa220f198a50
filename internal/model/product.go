// Package model はドメインモデルを定義する。
package model

// Product は静的カタログに含まれる商品を表す。
// アプリケーションにバンドルされるイミュータブルなデータで、ユーザーデータではない。
type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Price       int      `json:"price"`
	ImageRef    string   `json:"imageRef"`
	Rating      float64  `json:"rating"`
	Category    string   `json:"category"`
	SkinTypes   []string `json:"skinType"`
	Description string   `json:"description"`
}

// TipGroup はテーマごとにまとめられたスキンケアのヒントを表す。
type TipGroup struct {
	Title string   `json:"title"`
	Tips  []string `json:"tips"`
}
