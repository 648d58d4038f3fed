// Package ledger keeps the quantities a user selected for each product and
// derives totals and linked add-on relationships from them.
package ledger

import (
	"sort"
	"sync"

	"github.com/syodo-shop/storefront/internal/models"
)

// Ledger maps product ids to order lines. Every operation is total:
// unknown ids read as zero amounts and removals of missing lines are no-ops.
// The mapping is guarded by a single mutex.
type Ledger struct {
	mu      sync.RWMutex
	lines   map[string]models.OrderLine
	options models.OrderOptions
}

// New creates an empty ledger
func New() *Ledger {
	return &Ledger{
		lines: make(map[string]models.OrderLine),
	}
}

// Upsert stores amount for productID. A non-positive amount removes the line.
func (l *Ledger) Upsert(productID string, amount int, product models.Product) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if amount <= 0 {
		delete(l.lines, productID)
		return
	}

	l.lines[productID] = models.OrderLine{
		ProductID: productID,
		Amount:    amount,
		Product:   product,
	}
}

// Remove deletes the line for productID if present
func (l *Ledger) Remove(productID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.lines, productID)
}

// AmountOf returns the stored amount, or 0 when there is no line
func (l *Ledger) AmountOf(productID string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.lines[productID].Amount
}

// IsEmpty reports whether no product is selected
func (l *Ledger) IsEmpty() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.lines) == 0
}

// TotalPrice sums amount * price over all lines, in minor currency units
func (l *Ledger) TotalPrice() int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.totalLocked()
}

func (l *Ledger) totalLocked() int64 {
	var total int64
	for _, line := range l.lines {
		total += int64(line.Amount) * line.Product.NumericPrice()
	}
	return total
}

// IsLinkedProductInOrder reports whether the product the given add-on is
// bundled under has been ordered. Products without a link always report false.
func (l *Ledger) IsLinkedProductInOrder(product models.Product) bool {
	if !product.IsLinked() {
		return false
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	_, ok := l.lines[product.LinkedPositionID]
	return ok
}

// linesLocked copies the order lines sorted by product id
func (l *Ledger) linesLocked() []models.OrderLine {
	lines := make([]models.OrderLine, 0, len(l.lines))
	for _, line := range l.lines {
		lines = append(lines, line)
	}
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].ProductID < lines[j].ProductID
	})
	return lines
}

// Snapshot returns lines, options and total read under one lock
func (l *Ledger) Snapshot() ([]models.OrderLine, models.OrderOptions, int64) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.linesLocked(), l.options, l.totalLocked()
}

// Drain takes a snapshot and clears the ledger in one step. An empty ledger
// is left untouched, options included, and yields no lines.
func (l *Ledger) Drain() ([]models.OrderLine, models.OrderOptions, int64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.lines) == 0 {
		return nil, l.options, 0
	}

	lines, options, total := l.linesLocked(), l.options, l.totalLocked()
	l.lines = make(map[string]models.OrderLine)
	l.options = models.OrderOptions{}
	return lines, options, total
}

// SetOptions replaces the checkout flags
func (l *Ledger) SetOptions(options models.OrderOptions) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.options = options
}

// Clear drops all lines and options without producing an order
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.lines = make(map[string]models.OrderLine)
	l.options = models.OrderOptions{}
}

// LinkedFrom returns the add-on bundled under product, i.e. the first
// catalog product whose linked position is product's id. Add-ons have no
// add-ons of their own.
func LinkedFrom(product models.Product, catalog []models.Product) (models.Product, bool) {
	if product.IsLinked() || product.ID == "" {
		return models.Product{}, false
	}

	for _, p := range catalog {
		if p.LinkedPositionID == product.ID {
			return p, true
		}
	}
	return models.Product{}, false
}
