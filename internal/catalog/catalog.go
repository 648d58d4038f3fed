// Package catalog holds the session's read-only product snapshot.
package catalog

import (
	"sync"

	"github.com/syodo-shop/storefront/internal/models"
)

// Catalog owns the product snapshot fetched from the remote API.
// A snapshot is only ever replaced as a whole.
type Catalog struct {
	mu       sync.RWMutex
	products []models.Product
	byID     map[string]int
	loaded   bool
}

// New creates an empty, not yet loaded catalog
func New() *Catalog {
	return &Catalog{
		byID: make(map[string]int),
	}
}

// Replace swaps in a new snapshot. The slice is copied.
func (c *Catalog) Replace(products []models.Product) {
	snapshot := make([]models.Product, len(products))
	copy(snapshot, products)

	index := make(map[string]int, len(snapshot))
	for i, p := range snapshot {
		// first occurrence wins for duplicate ids
		if _, exists := index[p.ID]; !exists {
			index[p.ID] = i
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.products = snapshot
	c.byID = index
	c.loaded = true
}

// Loaded reports whether a snapshot has been installed
func (c *Catalog) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// All returns a copy of the snapshot in source order
func (c *Catalog) All() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ByID looks up a product by id
func (c *Catalog) ByID(id string) (models.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.byID[id]
	if !ok {
		return models.Product{}, false
	}
	return c.products[i], true
}

// Len returns the number of products in the snapshot
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}
