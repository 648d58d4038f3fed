package catalog

import "github.com/syodo-shop/storefront/internal/models"

// Sentinel category ids used by the projection
const (
	// SubcategoriesCategoryID is the default tab, the category whose catalog
	// entries carry subcategory titles. Headers follow the product data, so
	// any category with known subcategory titles gets them too.
	SubcategoriesCategoryID = "1"
	// NoLactoseCategoryID marks the category excluded from normal listing
	NoLactoseCategoryID = "93"
)

// Reference holds the static category tables the projection depends on.
// The order of both slices is significant.
type Reference struct {
	Categories    []models.Category
	SubCategories []models.SubCategory
}

// DefaultReference returns the storefront's built-in category tables
func DefaultReference() Reference {
	return Reference{
		Categories: []models.Category{
			{ID: SubcategoriesCategoryID, Title: "Rolls", Icon: "rolls.svg"},
			{ID: "2", Title: "Sets", Icon: "sets.svg"},
			{ID: "3", Title: "Sushi", Icon: "sushi.svg"},
			{ID: "4", Title: "Hot dishes", Icon: "hot.svg"},
			{ID: "5", Title: "Salads", Icon: "salads.svg"},
			{ID: "6", Title: "Drinks", Icon: "drinks.svg"},
			{ID: "7", Title: "Extras", Icon: "extras.svg"},
			{ID: NoLactoseCategoryID, Title: "No lactose", Icon: "no-lactose.svg"},
		},
		SubCategories: []models.SubCategory{
			{ID: 1, Title: "Philadelphia"},
			{ID: 2, Title: "California"},
			{ID: 3, Title: "Baked"},
			{ID: 4, Title: "Tempura"},
			{ID: 5, Title: "Maki"},
			{ID: 6, Title: "Vegetarian"},
		},
	}
}

// Category finds a category by id
func (r Reference) Category(id string) (models.Category, bool) {
	for _, c := range r.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return models.Category{}, false
}

// DefaultCategoryID is the category selected when a session starts
func (r Reference) DefaultCategoryID() string {
	if len(r.Categories) == 0 {
		return ""
	}
	return r.Categories[0].ID
}
