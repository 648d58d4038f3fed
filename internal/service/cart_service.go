package service

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/syodo-shop/storefront/internal/ledger"
	"github.com/syodo-shop/storefront/internal/metrics"
	"github.com/syodo-shop/storefront/internal/models"
)

var (
	ErrCartNotFound = errors.New("cart not found")
	ErrEmptyOrder   = errors.New("order must contain at least one item")
	ErrAmountTooBig = errors.New("amount exceeds the per-item limit")
)

// MaxItemAmount caps the quantity of a single product in a cart
const MaxItemAmount = 999

// CartSummary is the checkout view of a cart
type CartSummary struct {
	ID             string              `json:"id"`
	Lines          []models.OrderLine  `json:"lines"`
	Empty          bool                `json:"empty"`
	TotalPrice     int64               `json:"totalPrice"`
	TotalPriceText string              `json:"totalPriceText"`
	Options        models.OrderOptions `json:"options"`
}

// LinkedOffer describes the add-on offered for a product
type LinkedOffer struct {
	Product   models.Product  `json:"product"`
	Addon     *models.Product `json:"addon,omitempty"`
	Available bool            `json:"available"`
	Amount    int             `json:"amount"`
}

// CartService keeps one ledger per shopping session
type CartService struct {
	catalog *CatalogService
	metrics *metrics.Registry
	logger  *slog.Logger

	mu    sync.RWMutex
	carts map[string]*ledger.Ledger
}

// NewCartService creates a new cart service
func NewCartService(catalog *CatalogService, m *metrics.Registry, logger *slog.Logger) *CartService {
	return &CartService{
		catalog: catalog,
		metrics: m,
		logger:  logger,
		carts:   make(map[string]*ledger.Ledger),
	}
}

// CreateCart starts a new session and returns its id
func (s *CartService) CreateCart() string {
	id := uuid.New().String()

	s.mu.Lock()
	s.carts[id] = ledger.New()
	count := len(s.carts)
	s.mu.Unlock()

	s.metrics.CartSessions.Set(float64(count))
	s.logger.Debug("cart created", "cart_id", id)
	return id
}

// DeleteCart ends a session. Deleting an unknown cart is a no-op.
func (s *CartService) DeleteCart(cartID string) {
	s.mu.Lock()
	delete(s.carts, cartID)
	count := len(s.carts)
	s.mu.Unlock()

	s.metrics.CartSessions.Set(float64(count))
}

func (s *CartService) ledger(cartID string) (*ledger.Ledger, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.carts[cartID]
	if !ok {
		return nil, ErrCartNotFound
	}
	return l, nil
}

// SetAmount sets the quantity of a product. Amounts of zero or below remove
// the line, even for products missing from the catalog.
func (s *CartService) SetAmount(cartID, productID string, amount int) (int, error) {
	l, err := s.ledger(cartID)
	if err != nil {
		return 0, err
	}

	if amount <= 0 {
		l.Remove(productID)
		s.metrics.CartUpdates.WithLabelValues("remove").Inc()
		return 0, nil
	}

	if amount > MaxItemAmount {
		return 0, ErrAmountTooBig
	}

	product, err := s.catalog.GetProduct(productID)
	if err != nil {
		return 0, err
	}

	l.Upsert(productID, amount, product)
	s.metrics.CartUpdates.WithLabelValues("upsert").Inc()
	return l.AmountOf(productID), nil
}

// RemoveItem deletes a product from the cart
func (s *CartService) RemoveItem(cartID, productID string) error {
	l, err := s.ledger(cartID)
	if err != nil {
		return err
	}

	l.Remove(productID)
	s.metrics.CartUpdates.WithLabelValues("remove").Inc()
	return nil
}

// ResetCart empties a cart and its options without submitting it
func (s *CartService) ResetCart(cartID string) error {
	l, err := s.ledger(cartID)
	if err != nil {
		return err
	}

	l.Clear()
	s.metrics.CartUpdates.WithLabelValues("reset").Inc()
	return nil
}

// SetOptions stores the checkout flags of a cart
func (s *CartService) SetOptions(cartID string, options models.OrderOptions) error {
	l, err := s.ledger(cartID)
	if err != nil {
		return err
	}

	l.SetOptions(options)
	return nil
}

// Summary returns the current lines and totals of a cart
func (s *CartService) Summary(cartID string) (*CartSummary, error) {
	l, err := s.ledger(cartID)
	if err != nil {
		return nil, err
	}

	lines, options, total := l.Snapshot()
	return &CartSummary{
		ID:             cartID,
		Lines:          lines,
		Empty:          len(lines) == 0,
		TotalPrice:     total,
		TotalPriceText: ledger.FormatPrice(total),
		Options:        options,
	}, nil
}

// Linked returns the add-on offered for productID and whether it can be
// ordered, which requires the product it is bundled under to be in the cart.
func (s *CartService) Linked(cartID, productID string) (*LinkedOffer, error) {
	l, err := s.ledger(cartID)
	if err != nil {
		return nil, err
	}

	product, err := s.catalog.GetProduct(productID)
	if err != nil {
		return nil, err
	}

	offer := &LinkedOffer{Product: product}
	if product.IsLinked() {
		offer.Available = l.IsLinkedProductInOrder(product)
		offer.Amount = l.AmountOf(product.ID)
		return offer, nil
	}

	addon, ok := s.catalog.LinkedFrom(product)
	if !ok {
		return offer, nil
	}

	offer.Addon = &addon
	offer.Available = l.IsLinkedProductInOrder(addon)
	offer.Amount = l.AmountOf(addon.ID)
	return offer, nil
}

// Submit turns the cart into a checkout request and clears it. Reading and
// clearing the cart happen atomically, so a cart is submitted at most once.
func (s *CartService) Submit(cartID string) (*models.OrderRequest, error) {
	l, err := s.ledger(cartID)
	if err != nil {
		return nil, err
	}

	lines, options, total := l.Drain()
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	products := make([]models.OrderProduct, len(lines))
	for i, line := range lines {
		products[i] = models.OrderProduct{
			ID:         line.ProductID,
			Title:      line.Product.Title,
			Price:      line.Product.NumericPrice(),
			Amount:     line.Amount,
			CategoryID: line.Product.CategoryID,
		}
	}

	comment := ""
	if options.AddComment {
		comment = options.Comment
	}

	order := &models.OrderRequest{
		OrderID:              generateOrderID(),
		Products:             products,
		TotalPrice:           total,
		DoNotCall:            options.DoNotCall,
		NoNapkins:            options.NoNapkins,
		CutleryCount:         options.CutleryCount,
		TrainingCutleryCount: options.TrainingCutleryCount,
		Comment:              comment,
	}

	s.metrics.OrdersSubmitted.Inc()
	s.metrics.OrderValue.Observe(float64(order.TotalPrice))
	s.logger.Info("order submitted", "cart_id", cartID, "order_id", order.OrderID, "items_count", len(products))

	return order, nil
}

// generateOrderID generates a unique order ID using UUID
func generateOrderID() string {
	return uuid.New().String()
}
