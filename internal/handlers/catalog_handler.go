package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/syodo-shop/storefront/internal/projector"
	"github.com/syodo-shop/storefront/internal/repository"
	"github.com/syodo-shop/storefront/internal/service"
)

// CatalogHandler handles catalog-related HTTP requests
type CatalogHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service *service.CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger,
	}
}

// ListCatalog handles GET /api/catalog
// Returns the display list for ?category= or ?search=, products interleaved
// with subcategory headers.
func (h *CatalogHandler) ListCatalog(w http.ResponseWriter, r *http.Request) {
	query := projector.ViewQuery{
		CategoryID: r.URL.Query().Get("category"),
		Search:     r.URL.Query().Get("search"),
	}

	items, err := h.service.View(query)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCatalogNotLoaded):
			h.logger.Warn("catalog requested before load")
			WriteError(w, http.StatusServiceUnavailable, "Catalog is not loaded", h.logger)
		case errors.Is(err, service.ErrUnknownCategory):
			h.logger.Info("unknown category requested", "category_id", query.CategoryID)
			WriteError(w, http.StatusNotFound, "Category not found", h.logger)
		default:
			h.logger.Error("failed to project catalog", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		}
		return
	}

	WriteJSON(w, http.StatusOK, items, h.logger)
}

// ReloadCatalog handles POST /api/catalog/reload
// Drops the cached snapshot and fetches the catalog again.
func (h *CatalogHandler) ReloadCatalog(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Reload(r.Context()); err != nil {
		h.logger.Error("failed to reload catalog", "error", err)
		WriteError(w, http.StatusBadGateway, "Catalog reload failed", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]int{"products": h.service.Catalog().Len()}, h.logger)
}

// ListCategories handles GET /api/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.service.Categories(), h.logger)
}

// GetProduct handles GET /api/product/{productId}
// - 200: successful operation
// - 400: Invalid ID supplied
// - 404: Product not found
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	if productID == "" {
		h.logger.Warn("product ID is required")
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	product, err := h.service.GetProduct(productID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			h.logger.Info("product not found", "product_id", productID)
			WriteError(w, http.StatusNotFound, "Product not found", h.logger)
		case errors.Is(err, service.ErrCatalogNotLoaded):
			WriteError(w, http.StatusServiceUnavailable, "Catalog is not loaded", h.logger)
		default:
			h.logger.Error("failed to get product", "product_id", productID, "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		}
		return
	}

	WriteJSON(w, http.StatusOK, product, h.logger)
}
