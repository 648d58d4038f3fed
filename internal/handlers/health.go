package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/syodo-shop/storefront/internal/catalog"
)

// HealthHandler provides health check endpoint
type HealthHandler struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(cat *catalog.Catalog, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		catalog: cat,
		logger:  logger,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
	Version       string    `json:"version"`
	CatalogLoaded bool      `json:"catalogLoaded"`
	Products      int       `json:"products"`
}

// ServeHTTP handles health check requests.
// Reports 503 until the catalog snapshot is loaded.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:        "healthy",
		Timestamp:     time.Now().UTC(),
		Version:       "1.0.0",
		CatalogLoaded: h.catalog.Loaded(),
		Products:      h.catalog.Len(),
	}

	status := http.StatusOK
	if !response.CatalogLoaded {
		response.Status = "starting"
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("failed to encode health response", "error", err)
	}
}
