// Package projector turns a flat product catalog into the ordered display
// list rendered by the storefront: visible products sorted by subcategory
// with a header placed before the first product of every subcategory.
package projector

import (
	"slices"

	"github.com/syodo-shop/storefront/internal/models"
)

// Project filters, sorts and interleaves subcategory headers.
// Products of excludedCategoryID and hidden products are dropped.
// The input slice is never modified.
func Project(products []models.Product, subCategories []models.SubCategory, excludedCategoryID string) []models.ListItem {
	visible := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.CategoryID == excludedCategoryID || p.HidePosition {
			continue
		}
		visible = append(visible, p)
	}

	order := subCategoryOrder(subCategories)
	slices.SortStableFunc(visible, func(a, b models.Product) int {
		return compareProducts(a, b, order)
	})

	items := make([]models.ListItem, 0, len(visible)+len(subCategories))
	for _, p := range visible {
		items = append(items, models.ProductItem(p))
	}

	return insertHeaders(items, subCategories)
}

// subCategoryOrder maps subcategory titles to their ids. The first entry wins
// when a title is listed twice.
func subCategoryOrder(subCategories []models.SubCategory) map[string]int {
	order := make(map[string]int, len(subCategories))
	for _, s := range subCategories {
		if _, exists := order[s.Title]; !exists {
			order[s.Title] = s.ID
		}
	}
	return order
}

// compareProducts puts products without a subcategory first. Two products
// with known subcategories are ordered by subcategory id; an unknown
// subcategory title compares equal to anything with a subcategory.
func compareProducts(a, b models.Product, order map[string]int) int {
	switch {
	case !a.HasSubcategory() && !b.HasSubcategory():
		return 0
	case !a.HasSubcategory():
		return -1
	case !b.HasSubcategory():
		return 1
	}

	aID, aOK := order[a.Subcategory]
	bID, bOK := order[b.Subcategory]
	if !aOK || !bOK {
		return 0
	}

	switch {
	case aID < bID:
		return -1
	case aID > bID:
		return 1
	default:
		return 0
	}
}

// insertHeaders walks the subcategory table in order and inserts each header
// right before the first product carrying its title. Subcategories without
// products produce no header.
func insertHeaders(items []models.ListItem, subCategories []models.SubCategory) []models.ListItem {
	for _, s := range subCategories {
		index := slices.IndexFunc(items, func(item models.ListItem) bool {
			return item.IsProduct() && item.Product.Subcategory == s.Title
		})
		if index < 0 {
			continue
		}
		items = slices.Insert(items, index, models.HeaderItem(s))
	}
	return items
}
