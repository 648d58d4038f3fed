package models

// Category is a top level catalog section shown as a tab
type Category struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

// SubCategory groups products inside a category. ID defines display order,
// Title is matched against Product.Subcategory.
type SubCategory struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}
