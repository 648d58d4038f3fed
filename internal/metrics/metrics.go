// Package metrics exposes Prometheus collectors for catalog and cart activity.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds the storefront collectors on a private Prometheus registry
type Registry struct {
	reg             *prometheus.Registry
	CatalogLoads    *prometheus.CounterVec
	CatalogProducts prometheus.Gauge
	ProjectionSec   prometheus.Histogram
	CartSessions    prometheus.Gauge
	CartUpdates     *prometheus.CounterVec
	OrdersSubmitted prometheus.Counter
	OrderValue      prometheus.Histogram
}

// NewRegistry creates and registers all storefront collectors
func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	catalogLoads := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_catalog_loads_total",
	}, []string{"result"})
	catalogProducts := prometheus.NewGauge(prometheus.GaugeOpts{Name: "storefront_catalog_products"})
	projection := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "storefront_projection_seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
	})
	sessions := prometheus.NewGauge(prometheus.GaugeOpts{Name: "storefront_cart_sessions"})
	cartUpdates := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_cart_updates_total",
	}, []string{"op"})
	submitted := prometheus.NewCounter(prometheus.CounterOpts{Name: "storefront_orders_submitted_total"})
	orderValue := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "storefront_order_value_minor_units",
		Buckets: prometheus.ExponentialBuckets(1000, 2, 10),
	})

	r.MustRegister(catalogLoads, catalogProducts, projection, sessions, cartUpdates, submitted, orderValue)
	return &Registry{
		reg:             r,
		CatalogLoads:    catalogLoads,
		CatalogProducts: catalogProducts,
		ProjectionSec:   projection,
		CartSessions:    sessions,
		CartUpdates:     cartUpdates,
		OrdersSubmitted: submitted,
		OrderValue:      orderValue,
	}
}

// Handler serves the registry in the Prometheus exposition format
func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
