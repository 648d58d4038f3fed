package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestProduct_ImageURL(t *testing.T) {
	tests := []struct {
		name    string
		product Product
		want    string
	}{
		{name: "image preferred", product: Product{Image: "a.png", ImageOriginal: "b.png"}, want: "a.png"},
		{name: "original fallback", product: Product{ImageOriginal: "b.png"}, want: "b.png"},
		{name: "no image", product: Product{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.product.ImageURL(); got != tt.want {
				t.Errorf("ImageURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProduct_NumericPrice(t *testing.T) {
	tests := []struct {
		price string
		want  int64
	}{
		{price: "500", want: 500},
		{price: "0", want: 0},
		{price: "", want: 0},
		{price: "12.50", want: 0},
		{price: "abc", want: 0},
	}

	for _, tt := range tests {
		if got := (Product{Price: tt.price}).NumericPrice(); got != tt.want {
			t.Errorf("NumericPrice(%q) = %d, want %d", tt.price, got, tt.want)
		}
	}
}

func TestProduct_DecodeFromAPI(t *testing.T) {
	raw := `{"id":"42","category_id":"1","category_name":"Rolls","subcategory":"Maki",
		"title":"Maki salmon","weight":"150","price":"12900","image":"","image_original":"orig.jpg",
		"mod_date":"2023-01-01","showOnMain":true,"description":"","linkedPosition":"7","hidePosition":false}`

	var p Product
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("failed to decode product: %v", err)
	}

	if p.CategoryID != "1" || p.Subcategory != "Maki" || p.LinkedPositionID != "7" {
		t.Errorf("unexpected product: %+v", p)
	}
	if !p.ShowOnMain || p.HidePosition {
		t.Errorf("unexpected flags: %+v", p)
	}
	if p.ImageURL() != "orig.jpg" {
		t.Errorf("ImageURL() = %q, want orig.jpg", p.ImageURL())
	}
	if !p.IsLinked() || !p.HasSubcategory() {
		t.Error("expected linked product with subcategory")
	}
}

func TestListItem_JSON(t *testing.T) {
	items := []ListItem{
		HeaderItem(SubCategory{ID: 3, Title: "Baked"}),
		ProductItem(Product{ID: "1", Subcategory: "Baked"}),
	}

	data, err := json.Marshal(items)
	if err != nil {
		t.Fatalf("failed to encode items: %v", err)
	}
	if !strings.Contains(string(data), `"type":"subcategory"`) || !strings.Contains(string(data), `"type":"product"`) {
		t.Errorf("missing type discriminator in %s", data)
	}

	var decoded []ListItem
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to decode items: %v", err)
	}
	if len(decoded) != 2 || decoded[0].Kind != ListItemSubCategory || decoded[1].Kind != ListItemProduct {
		t.Fatalf("unexpected decoded items: %+v", decoded)
	}
	if decoded[0].SubCategory.Title != "Baked" || decoded[1].Product.ID != "1" {
		t.Errorf("unexpected decoded values: %+v", decoded)
	}
}

func TestListItem_UnmarshalUnknownType(t *testing.T) {
	var item ListItem
	if err := json.Unmarshal([]byte(`{"type":"banner"}`), &item); err == nil {
		t.Error("expected error for unknown item type")
	}
	if err := json.Unmarshal([]byte(`{"type":"product"}`), &item); err == nil {
		t.Error("expected error for product item without product")
	}
}
