package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/syodo-shop/storefront/internal/models"
	"github.com/syodo-shop/storefront/internal/repository"
	"github.com/syodo-shop/storefront/internal/service"
)

// SetAmountRequest is the body of PUT /api/cart/{cartId}/items/{productId}.
// Amounts of zero or below remove the item.
type SetAmountRequest struct {
	Amount *int `json:"amount" validate:"required,lte=999"`
}

// CartHandler handles cart-related HTTP requests
type CartHandler struct {
	carts *service.CartService
	log   *slog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(carts *service.CartService, log *slog.Logger) *CartHandler {
	return &CartHandler{
		carts: carts,
		log:   log,
	}
}

// CreateCart handles POST /api/cart
func (h *CartHandler) CreateCart(w http.ResponseWriter, r *http.Request) {
	cartID := h.carts.CreateCart()

	summary, err := h.carts.Summary(cartID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, summary, h.log)
}

// GetCart handles GET /api/cart/{cartId}
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	summary, err := h.carts.Summary(chi.URLParam(r, "cartId"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, summary, h.log)
}

// DeleteCart handles DELETE /api/cart/{cartId}
func (h *CartHandler) DeleteCart(w http.ResponseWriter, r *http.Request) {
	h.carts.DeleteCart(chi.URLParam(r, "cartId"))
	w.WriteHeader(http.StatusNoContent)
}

// SetItemAmount handles PUT /api/cart/{cartId}/items/{productId}
func (h *CartHandler) SetItemAmount(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartId")
	productID := chi.URLParam(r, "productId")

	var req SetAmountRequest
	if err := decodeAndValidate(r, &req); err != nil {
		h.log.Warn("invalid set amount request", "cart_id", cartID, "error", err)
		WriteError(w, http.StatusBadRequest, err.Error(), h.log)
		return
	}

	if _, err := h.carts.SetAmount(cartID, productID, *req.Amount); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSummary(w, cartID)
}

// RemoveItem handles DELETE /api/cart/{cartId}/items/{productId}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartId")

	if err := h.carts.RemoveItem(cartID, chi.URLParam(r, "productId")); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSummary(w, cartID)
}

// SetOptions handles PUT /api/cart/{cartId}/options
func (h *CartHandler) SetOptions(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartId")

	var options models.OrderOptions
	if err := decodeAndValidate(r, &options); err != nil {
		h.log.Warn("invalid order options", "cart_id", cartID, "error", err)
		WriteError(w, http.StatusBadRequest, err.Error(), h.log)
		return
	}

	if err := h.carts.SetOptions(cartID, options); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSummary(w, cartID)
}

// ResetCart handles POST /api/cart/{cartId}/reset
func (h *CartHandler) ResetCart(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartId")

	if err := h.carts.ResetCart(cartID); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSummary(w, cartID)
}

// GetLinked handles GET /api/cart/{cartId}/linked/{productId}
func (h *CartHandler) GetLinked(w http.ResponseWriter, r *http.Request) {
	offer, err := h.carts.Linked(chi.URLParam(r, "cartId"), chi.URLParam(r, "productId"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, offer, h.log)
}

// Submit handles POST /api/cart/{cartId}/submit
func (h *CartHandler) Submit(w http.ResponseWriter, r *http.Request) {
	order, err := h.carts.Submit(chi.URLParam(r, "cartId"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, order, h.log)
}

func (h *CartHandler) writeSummary(w http.ResponseWriter, cartID string) {
	summary, err := h.carts.Summary(cartID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, summary, h.log)
}

func (h *CartHandler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrCartNotFound):
		WriteError(w, http.StatusNotFound, "Cart not found", h.log)
	case errors.Is(err, repository.ErrProductNotFound):
		WriteError(w, http.StatusNotFound, "Product not found", h.log)
	case errors.Is(err, service.ErrAmountTooBig):
		WriteError(w, http.StatusBadRequest, "Amount exceeds the per-item limit", h.log)
	case errors.Is(err, service.ErrEmptyOrder):
		WriteError(w, http.StatusBadRequest, "Order must contain at least one item", h.log)
	case errors.Is(err, service.ErrCatalogNotLoaded):
		WriteError(w, http.StatusServiceUnavailable, "Catalog is not loaded", h.log)
	default:
		h.log.Error("cart operation failed", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
	}
}
