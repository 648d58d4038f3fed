package models

import "strconv"

// Product represents a catalog entry as returned by the remote catalog API.
// Scalar fields arrive as strings; price is in minor currency units.
type Product struct {
	ID               string `json:"id"`
	CategoryID       string `json:"category_id"`
	CategoryName     string `json:"category_name"`
	Subcategory      string `json:"subcategory"`
	Title            string `json:"title"`
	Weight           string `json:"weight"`
	Price            string `json:"price"`
	Image            string `json:"image"`
	ImageOriginal    string `json:"image_original"`
	ModDate          string `json:"mod_date"`
	ShowOnMain       bool   `json:"showOnMain"`
	Description      string `json:"description"`
	LinkedPositionID string `json:"linkedPosition"`
	HidePosition     bool   `json:"hidePosition"`
}

// HasSubcategory reports whether the product belongs to a named subcategory.
func (p Product) HasSubcategory() bool {
	return p.Subcategory != ""
}

// IsLinked reports whether the product is an add-on bundled under another product.
func (p Product) IsLinked() bool {
	return p.LinkedPositionID != ""
}

// ImageURL returns the preferred image, falling back to the original one
func (p Product) ImageURL() string {
	if p.Image != "" {
		return p.Image
	}
	return p.ImageOriginal
}

// NumericPrice parses the price string. Unparsable prices count as zero.
func (p Product) NumericPrice() int64 {
	price, err := strconv.ParseInt(p.Price, 10, 64)
	if err != nil {
		return 0
	}
	return price
}
