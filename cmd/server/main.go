package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/syodo-shop/storefront/internal/catalog"
	"github.com/syodo-shop/storefront/internal/config"
	"github.com/syodo-shop/storefront/internal/handlers"
	"github.com/syodo-shop/storefront/internal/metrics"
	"github.com/syodo-shop/storefront/internal/middleware"
	"github.com/syodo-shop/storefront/internal/repository"
	"github.com/syodo-shop/storefront/internal/service"
	"github.com/syodo-shop/storefront/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting storefront api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	ctx := context.Background()
	m := metrics.NewRegistry()

	// Initialize catalog source
	productRepo, closeRepo := newProductRepository(ctx, cfg, log)
	defer closeRepo()

	// Initialize services
	cat := catalog.New()
	catalogService := service.NewCatalogService(productRepo, cat, catalog.DefaultReference(),
		cfg.Catalog.ExcludedCategoryID, m, log)
	cartService := service.NewCartService(catalogService, m, log)

	log.Info("loading catalog...")
	if err := catalogService.Load(ctx); err != nil {
		log.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cat, log)
	catalogHandler := handlers.NewCatalogHandler(catalogService, log)
	cartHandler := handlers.NewCartHandler(cartService, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.APIKeyHeader},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", healthHandler.ServeHTTP)
	if cfg.Metrics.Enabled {
		r.Handle("/metrics", m.Handler())
	}

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.APIKeyAuth(cfg.Auth, log))

		r.Get("/catalog", catalogHandler.ListCatalog)
		r.Post("/catalog/reload", catalogHandler.ReloadCatalog)
		r.Get("/categories", catalogHandler.ListCategories)
		r.Get("/product/{productId}", catalogHandler.GetProduct)

		r.Post("/cart", cartHandler.CreateCart)
		r.Route("/cart/{cartId}", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Delete("/", cartHandler.DeleteCart)
			r.Put("/items/{productId}", cartHandler.SetItemAmount)
			r.Delete("/items/{productId}", cartHandler.RemoveItem)
			r.Put("/options", cartHandler.SetOptions)
			r.Post("/reset", cartHandler.ResetCart)
			r.Get("/linked/{productId}", cartHandler.GetLinked)
			r.Post("/submit", cartHandler.Submit)
		})
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

// newProductRepository picks the catalog source: the remote API when
// configured, the demo menu otherwise, cached in Redis when available.
func newProductRepository(ctx context.Context, cfg *config.Config, log *slog.Logger) (repository.ProductRepository, func()) {
	var repo repository.ProductRepository
	if cfg.Catalog.APIURL != "" {
		log.Info("using remote catalog", "url", cfg.Catalog.APIURL)
		repo = repository.NewRemoteProductRepository(cfg.Catalog.APIURL, cfg.Catalog.APIKey, cfg.Catalog.Timeout)
	} else {
		log.Warn("CATALOG_API_URL not set, serving demo catalog")
		repo = repository.NewInMemoryProductRepository()
	}

	if cfg.Redis.Addr == "" {
		return repo, func() {}
	}

	client, err := repository.ConnectRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password)
	if err != nil {
		log.Warn("catalog cache disabled", "error", err)
		return repo, func() {}
	}

	log.Info("catalog cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.CacheTTL)
	cached := repository.NewCachedProductRepository(repo, client, cfg.Redis.CacheTTL, log)
	return cached, func() {
		if err := client.Close(); err != nil {
			log.Error("failed to close redis client", "error", err)
		}
	}
}
