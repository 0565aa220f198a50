package product

import (
	"testing"

	"github.com/hitoshi/glowscan/internal/model"
)

func TestCatalog_ContainsSixProducts(t *testing.T) {
	products := Catalog()
	if len(products) != 6 {
		t.Fatalf("len(products) = %d, want 6", len(products))
	}
}

func TestCatalog_ReturnsCopy(t *testing.T) {
	first := Catalog()
	first[0].Name = "mutated"

	second := Catalog()
	if second[0].Name == "mutated" {
		t.Error("Catalog should return an isolated copy")
	}
}

func TestApply_NoFilterReturnsAll(t *testing.T) {
	products := Apply(Catalog(), Filter{})
	if len(products) != 6 {
		t.Errorf("len(products) = %d, want 6", len(products))
	}
}

func TestApply_AllValuesReturnEverything(t *testing.T) {
	products := Apply(Catalog(), Filter{Category: FilterAll, SkinType: FilterAll, Price: FilterAll})
	if len(products) != 6 {
		t.Errorf("len(products) = %d, want 6", len(products))
	}
}

func TestApply_CategoryFilter(t *testing.T) {
	products := Apply(Catalog(), Filter{Category: "serum"})
	if len(products) != 1 {
		t.Fatalf("len(products) = %d, want 1", len(products))
	}
	if products[0].Name != "Hydrating Serum" {
		t.Errorf("products[0].Name = %q, want Hydrating Serum", products[0].Name)
	}
}

func TestApply_SkinTypeFilter(t *testing.T) {
	products := Apply(Catalog(), Filter{SkinType: "oily"})

	// oily向けはSunscreen, Clay Maskの2商品
	if len(products) != 2 {
		t.Fatalf("len(products) = %d, want 2", len(products))
	}
	for _, p := range products {
		found := false
		for _, st := range p.SkinTypes {
			if st == "oily" {
				found = true
			}
		}
		if !found {
			t.Errorf("product %q does not target oily skin", p.Name)
		}
	}
}

func TestApply_PriceBuckets(t *testing.T) {
	tests := []struct {
		price string
		check func(p model.Product) bool
		want  int
	}{
		{PriceUnder30, func(p model.Product) bool { return p.Price < 30 }, 1},
		{Price30to50, func(p model.Product) bool { return p.Price >= 30 && p.Price <= 50 }, 4},
		{PriceOver50, func(p model.Product) bool { return p.Price > 50 }, 1},
	}

	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			products := Apply(Catalog(), Filter{Price: tt.price})
			if len(products) != tt.want {
				t.Fatalf("len(products) = %d, want %d", len(products), tt.want)
			}
			for _, p := range products {
				if !tt.check(p) {
					t.Errorf("product %q (price %v) outside bucket %q", p.Name, p.Price, tt.price)
				}
			}
		})
	}
}

func TestApply_PriceBoundariesAreInclusive(t *testing.T) {
	// 30to50 は両端を含む: Sunscreen(32)とSerum(45)は含まれ、Eye Cream(52)は含まれない
	products := Apply(Catalog(), Filter{Price: Price30to50})
	for _, p := range products {
		if p.Name == "Anti-Aging Eye Cream" {
			t.Error("52 should not match 30to50")
		}
	}

	over := Apply(Catalog(), Filter{Price: PriceOver50})
	if len(over) != 1 || over[0].Name != "Anti-Aging Eye Cream" {
		t.Errorf("over50 = %v, want only Anti-Aging Eye Cream", over)
	}
}

func TestApply_DimensionsCombineWithAND(t *testing.T) {
	products := Apply(Catalog(), Filter{Category: "moisturizer", SkinType: "dry", Price: Price30to50})
	if len(products) != 1 {
		t.Fatalf("len(products) = %d, want 1", len(products))
	}
	if products[0].Name != "Rich Moisturizer" {
		t.Errorf("products[0].Name = %q, want Rich Moisturizer", products[0].Name)
	}
}

func TestApply_ExclusiveDimensionsYieldEmpty(t *testing.T) {
	products := Apply(Catalog(), Filter{Category: "mask", SkinType: "dry"})
	if len(products) != 0 {
		t.Errorf("len(products) = %d, want 0", len(products))
	}
}

func TestApply_UnknownPriceBucketIsNoFilter(t *testing.T) {
	products := Apply(Catalog(), Filter{Price: "cheap"})
	if len(products) != 6 {
		t.Errorf("len(products) = %d, want 6 for unknown price bucket", len(products))
	}
}

func TestApply_OrderIndependent(t *testing.T) {
	// 各次元の判定が独立のため、段階適用と一括適用で同じ集合になること
	f := Filter{Category: "sunscreen", SkinType: "sensitive", Price: Price30to50}

	combined := Apply(Catalog(), f)
	staged := Apply(Apply(Apply(Catalog(), Filter{Price: f.Price}), Filter{SkinType: f.SkinType}), Filter{Category: f.Category})

	if len(combined) != len(staged) {
		t.Fatalf("combined = %d products, staged = %d products", len(combined), len(staged))
	}
	for i := range combined {
		if combined[i].ID != staged[i].ID {
			t.Errorf("product mismatch at %d: %v vs %v", i, combined[i].ID, staged[i].ID)
		}
	}
}
