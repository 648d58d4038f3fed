package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/syodo-shop/storefront/internal/catalog"
	"github.com/syodo-shop/storefront/internal/ledger"
	"github.com/syodo-shop/storefront/internal/metrics"
	"github.com/syodo-shop/storefront/internal/models"
	"github.com/syodo-shop/storefront/internal/projector"
	"github.com/syodo-shop/storefront/internal/repository"
)

var (
	ErrCatalogNotLoaded = errors.New("catalog is not loaded")
	ErrUnknownCategory  = errors.New("unknown category")
)

// CatalogService loads the product snapshot and serves projected views of it
type CatalogService struct {
	repo               repository.ProductRepository
	catalog            *catalog.Catalog
	reference          catalog.Reference
	excludedCategoryID string
	metrics            *metrics.Registry
	logger             *slog.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	repo repository.ProductRepository,
	cat *catalog.Catalog,
	reference catalog.Reference,
	excludedCategoryID string,
	m *metrics.Registry,
	logger *slog.Logger,
) *CatalogService {
	return &CatalogService{
		repo:               repo,
		catalog:            cat,
		reference:          reference,
		excludedCategoryID: excludedCategoryID,
		metrics:            m,
		logger:             logger,
	}
}

// Load fetches the full catalog and replaces the current snapshot
func (s *CatalogService) Load(ctx context.Context) error {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		s.metrics.CatalogLoads.WithLabelValues("error").Inc()
		return fmt.Errorf("load catalog: %w", err)
	}

	s.catalog.Replace(products)
	s.metrics.CatalogLoads.WithLabelValues("ok").Inc()
	s.metrics.CatalogProducts.Set(float64(len(products)))

	s.logger.Info("catalog loaded", "products", len(products))
	return nil
}

// Reload drops any cached snapshot and loads the catalog again.
// The current snapshot keeps serving if the reload fails.
func (s *CatalogService) Reload(ctx context.Context) error {
	if cache, ok := s.repo.(invalidator); ok {
		if err := cache.Invalidate(ctx); err != nil {
			s.logger.Warn("catalog cache invalidation failed", "error", err)
		}
	}
	return s.Load(ctx)
}

// invalidator is implemented by cached catalog sources
type invalidator interface {
	Invalidate(ctx context.Context) error
}

// Catalog returns the underlying snapshot holder
func (s *CatalogService) Catalog() *catalog.Catalog {
	return s.catalog
}

// Categories returns the category tabs in display order
func (s *CatalogService) Categories() []models.Category {
	out := make([]models.Category, len(s.reference.Categories))
	copy(out, s.reference.Categories)
	return out
}

// View returns the display list for the selected category or search text.
// An empty category selects the first category tab.
func (s *CatalogService) View(q projector.ViewQuery) ([]models.ListItem, error) {
	if !s.catalog.Loaded() {
		return nil, ErrCatalogNotLoaded
	}

	if q.CategoryID == "" {
		q.CategoryID = s.reference.DefaultCategoryID()
	} else if _, ok := s.reference.Category(q.CategoryID); !ok && q.Search == "" {
		return nil, ErrUnknownCategory
	}

	start := time.Now()
	items := projector.View(s.catalog.All(), s.reference.SubCategories, s.excludedCategoryID, q)
	s.metrics.ProjectionSec.Observe(time.Since(start).Seconds())

	return items, nil
}

// GetProduct returns a product by ID
func (s *CatalogService) GetProduct(id string) (models.Product, error) {
	if !s.catalog.Loaded() {
		return models.Product{}, ErrCatalogNotLoaded
	}

	product, ok := s.catalog.ByID(id)
	if !ok {
		return models.Product{}, repository.ErrProductNotFound
	}
	return product, nil
}

// LinkedFrom returns the add-on offered together with the given product
func (s *CatalogService) LinkedFrom(product models.Product) (models.Product, bool) {
	return ledger.LinkedFrom(product, s.catalog.All())
}
