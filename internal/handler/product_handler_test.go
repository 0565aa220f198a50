package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func listProducts(t *testing.T, query string) productListResponse {
	t.Helper()

	h := NewProductHandler()
	req := httptest.NewRequest(http.MethodGet, "/api/products"+query, nil)
	w := httptest.NewRecorder()

	h.List(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp productListResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	return resp
}

func TestProductHandler_List_NoFilterReturnsWholeCatalog(t *testing.T) {
	resp := listProducts(t, "")
	if len(resp.Products) != 6 {
		t.Errorf("len(products) = %d, want 6", len(resp.Products))
	}
}

func TestProductHandler_List_CategoryFilter(t *testing.T) {
	resp := listProducts(t, "?category=serum")
	if len(resp.Products) != 1 {
		t.Fatalf("len(products) = %d, want 1", len(resp.Products))
	}
	if resp.Products[0].Name != "Hydrating Serum" {
		t.Errorf("products[0].Name = %q, want Hydrating Serum", resp.Products[0].Name)
	}
}

func TestProductHandler_List_CombinedFilters(t *testing.T) {
	resp := listProducts(t, "?category=moisturizer&skin_type=dry&price=30to50")
	if len(resp.Products) != 1 {
		t.Fatalf("len(products) = %d, want 1", len(resp.Products))
	}
	if resp.Products[0].Name != "Rich Moisturizer" {
		t.Errorf("products[0].Name = %q, want Rich Moisturizer", resp.Products[0].Name)
	}
}

func TestProductHandler_List_AllValuesIgnored(t *testing.T) {
	resp := listProducts(t, "?category=all&skin_type=all&price=all")
	if len(resp.Products) != 6 {
		t.Errorf("len(products) = %d, want 6", len(resp.Products))
	}
}

func TestProductHandler_List_NoMatchesReturnsEmptyCollection(t *testing.T) {
	resp := listProducts(t, "?category=mask&skin_type=dry")
	if resp.Products == nil {
		t.Error("products should be an empty collection, not null")
	}
	if len(resp.Products) != 0 {
		t.Errorf("len(products) = %d, want 0", len(resp.Products))
	}
}
