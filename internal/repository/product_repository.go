package repository

import (
	"context"
	"errors"

	"github.com/syodo-shop/storefront/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
}

// InMemoryProductRepository implements ProductRepository with a fixed product list
type InMemoryProductRepository struct {
	products []models.Product
}

// NewInMemoryProductRepository creates a new in-memory product repository.
// Without products it is seeded with a small demo menu.
func NewInMemoryProductRepository(products ...models.Product) *InMemoryProductRepository {
	if len(products) == 0 {
		products = seedProducts()
	}

	return &InMemoryProductRepository{
		products: products,
	}
}

// GetAll returns all products in source order
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, len(r.products))
	copy(products, r.products)
	return products, nil
}

func seedProducts() []models.Product {
	return []models.Product{
		{ID: "1", CategoryID: "1", CategoryName: "Rolls", Subcategory: "Philadelphia", Title: "Philadelphia Classic", Weight: "260", Price: "27900"},
		{ID: "2", CategoryID: "1", CategoryName: "Rolls", Subcategory: "California", Title: "California with Salmon", Weight: "240", Price: "22900"},
		{ID: "3", CategoryID: "1", CategoryName: "Rolls", Subcategory: "Baked", Title: "Baked Eel", Weight: "250", Price: "25900"},
		{ID: "4", CategoryID: "1", CategoryName: "Rolls", Subcategory: "Maki", Title: "Maki Cucumber", Weight: "110", Price: "6900"},
		{ID: "5", CategoryID: "1", CategoryName: "Rolls", Title: "Roll of the Day", Weight: "230", Price: "19900", ShowOnMain: true},
		{ID: "6", CategoryID: "1", CategoryName: "Rolls", Subcategory: "Philadelphia", Title: "Philadelphia Light", Weight: "230", Price: "23900"},
		{ID: "7", CategoryID: "2", CategoryName: "Sets", Title: "Family Set", Weight: "1200", Price: "99900", ShowOnMain: true},
		{ID: "8", CategoryID: "6", CategoryName: "Drinks", Title: "Green Tea", Weight: "500", Price: "4900"},
		{ID: "9", CategoryID: "7", CategoryName: "Extras", Title: "Extra Ginger", Weight: "30", Price: "1500", LinkedPositionID: "1"},
		{ID: "10", CategoryID: "93", CategoryName: "No lactose", Title: "Philadelphia No Lactose", Weight: "250", Price: "28900"},
		{ID: "11", CategoryID: "1", CategoryName: "Rolls", Subcategory: "Tempura", Title: "Tempura Shrimp", Weight: "270", Price: "26900", HidePosition: true},
	}
}
