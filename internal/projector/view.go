package projector

import (
	"strings"

	"github.com/syodo-shop/storefront/internal/models"
)

// ViewQuery selects what part of the catalog a user is looking at
type ViewQuery struct {
	CategoryID string
	Search     string
}

// View builds the list shown for the selected category or search text.
//
// A non-empty search matches product titles case-insensitively across every
// normally listed category and returns plain products without headers.
// Otherwise the products of the selected category are projected. Selecting
// the excluded category directly still shows its own products.
func View(products []models.Product, subCategories []models.SubCategory, excludedCategoryID string, q ViewQuery) []models.ListItem {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	if search != "" {
		items := make([]models.ListItem, 0)
		for _, p := range products {
			if p.CategoryID == excludedCategoryID || p.HidePosition {
				continue
			}
			if strings.Contains(strings.ToLower(p.Title), search) {
				items = append(items, models.ProductItem(p))
			}
		}
		return items
	}

	selected := make([]models.Product, 0)
	for _, p := range products {
		if p.CategoryID == q.CategoryID {
			selected = append(selected, p)
		}
	}

	excluded := excludedCategoryID
	if q.CategoryID == excludedCategoryID {
		excluded = ""
	}
	return Project(selected, subCategories, excluded)
}
