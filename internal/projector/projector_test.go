package projector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syodo-shop/storefront/internal/models"
)

const noLactose = "93"

// describe renders a projected list as "id" for products and "#title" for headers
func describe(items []models.ListItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		if item.IsProduct() {
			out[i] = item.Product.ID
		} else {
			out[i] = "#" + item.SubCategory.Title
		}
	}
	return out
}

func TestProject_EndToEnd(t *testing.T) {
	products := []models.Product{
		{ID: "1", CategoryID: "1"},
		{ID: "2", CategoryID: "1", Subcategory: "Rolls"},
		{ID: "3", CategoryID: "1"},
	}
	subCategories := []models.SubCategory{{ID: 1, Title: "Rolls"}}

	items := Project(products, subCategories, noLactose)

	assert.Equal(t, []string{"1", "3", "#Rolls", "2"}, describe(items))
	require.Equal(t, models.ListItemSubCategory, items[2].Kind)
	assert.Equal(t, 1, items[2].SubCategory.ID)
}

func TestProject_Filtering(t *testing.T) {
	products := []models.Product{
		{ID: "1", CategoryID: "1"},
		{ID: "2", CategoryID: noLactose},
		{ID: "3", CategoryID: "1", HidePosition: true},
		{ID: "4", CategoryID: "2", Subcategory: "Maki", HidePosition: true},
		{ID: "5", CategoryID: "2"},
	}
	subCategories := []models.SubCategory{{ID: 1, Title: "Maki"}}

	items := Project(products, subCategories, noLactose)

	assert.Equal(t, []string{"1", "5"}, describe(items))
	for _, item := range items {
		if item.IsProduct() {
			assert.NotEqual(t, noLactose, item.Product.CategoryID)
			assert.False(t, item.Product.HidePosition)
		}
	}
}

func TestProject_SortsBySubcategoryID(t *testing.T) {
	products := []models.Product{
		{ID: "a1", Subcategory: "Baked"},
		{ID: "p1", Subcategory: "Philadelphia"},
		{ID: "n1"},
		{ID: "c1", Subcategory: "California"},
		{ID: "p2", Subcategory: "Philadelphia"},
		{ID: "n2"},
		{ID: "a2", Subcategory: "Baked"},
	}
	subCategories := []models.SubCategory{
		{ID: 1, Title: "Philadelphia"},
		{ID: 2, Title: "California"},
		{ID: 3, Title: "Baked"},
	}

	items := Project(products, subCategories, noLactose)

	assert.Equal(t, []string{
		"n1", "n2",
		"#Philadelphia", "p1", "p2",
		"#California", "c1",
		"#Baked", "a1", "a2",
	}, describe(items))
}

func TestProject_TableOrderDiffersFromIDOrder(t *testing.T) {
	// headers are inserted in table order but land where their products are
	products := []models.Product{
		{ID: "x", Subcategory: "Second"},
		{ID: "y", Subcategory: "First"},
	}
	subCategories := []models.SubCategory{
		{ID: 20, Title: "Second"},
		{ID: 10, Title: "First"},
	}

	items := Project(products, subCategories, noLactose)

	assert.Equal(t, []string{"#First", "y", "#Second", "x"}, describe(items))
}

func TestProject_EmptySubcategoriesProduceNoHeader(t *testing.T) {
	products := []models.Product{
		{ID: "1", Subcategory: "Maki"},
		{ID: "2", Subcategory: "Tempura", HidePosition: true},
	}
	subCategories := []models.SubCategory{
		{ID: 1, Title: "Tempura"},
		{ID: 2, Title: "Maki"},
		{ID: 3, Title: "Vegetarian"},
	}

	items := Project(products, subCategories, noLactose)

	assert.Equal(t, []string{"#Maki", "1"}, describe(items))
}

func TestProject_UnknownSubcategory(t *testing.T) {
	products := []models.Product{
		{ID: "u", Subcategory: "Unknown"},
		{ID: "n"},
	}
	subCategories := []models.SubCategory{{ID: 1, Title: "Maki"}}

	items := Project(products, subCategories, noLactose)

	// still sorted after products without a subcategory, but gets no header
	assert.Equal(t, []string{"n", "u"}, describe(items))
}

func TestProject_StableForEqualKeys(t *testing.T) {
	products := []models.Product{
		{ID: "5"}, {ID: "3"}, {ID: "9"}, {ID: "1"},
		{ID: "m2", Subcategory: "Maki"}, {ID: "m1", Subcategory: "Maki"},
	}
	subCategories := []models.SubCategory{{ID: 1, Title: "Maki"}}

	items := Project(products, subCategories, noLactose)

	assert.Equal(t, []string{"5", "3", "9", "1", "#Maki", "m2", "m1"}, describe(items))
}

func TestProject_DoesNotMutateInput(t *testing.T) {
	products := []models.Product{
		{ID: "1", Subcategory: "Maki"},
		{ID: "2"},
	}
	subCategories := []models.SubCategory{{ID: 1, Title: "Maki"}}

	_ = Project(products, subCategories, noLactose)

	assert.Equal(t, "1", products[0].ID)
	assert.Equal(t, "2", products[1].ID)
}

func TestProject_Empty(t *testing.T) {
	items := Project(nil, []models.SubCategory{{ID: 1, Title: "Maki"}}, noLactose)
	assert.Empty(t, items)
}

func TestProject_HeaderUniqueness(t *testing.T) {
	products := []models.Product{
		{ID: "1", Subcategory: "Maki"},
		{ID: "2", Subcategory: "Baked"},
		{ID: "3", Subcategory: "Maki"},
		{ID: "4", Subcategory: "Baked"},
		{ID: "5"},
	}
	subCategories := []models.SubCategory{
		{ID: 1, Title: "Maki"},
		{ID: 2, Title: "Baked"},
	}

	items := Project(products, subCategories, noLactose)

	headers := map[string]int{}
	for i, item := range items {
		if item.IsProduct() {
			continue
		}
		headers[item.SubCategory.Title]++
		require.Less(t, i+1, len(items))
		next := items[i+1]
		require.True(t, next.IsProduct())
		assert.Equal(t, item.SubCategory.Title, next.Product.Subcategory)
	}
	assert.Equal(t, map[string]int{"Maki": 1, "Baked": 1}, headers)
}

func TestProject_HeadersFollowProductData(t *testing.T) {
	products := []models.Product{
		{ID: "s1", CategoryID: "4", Subcategory: "Sets"},
		{ID: "s2", CategoryID: "4"},
	}
	subCategories := []models.SubCategory{{ID: 1, Title: "Sets"}}

	items := Project(products, subCategories, noLactose)

	// headers are not limited to the default tab
	assert.Equal(t, []string{"s2", "#Sets", "s1"}, describe(items))
}
