package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/syodo-shop/storefront/internal/models"
)

func TestInMemoryProductRepository_GetAll(t *testing.T) {
	t.Run("seeded", func(t *testing.T) {
		repo := NewInMemoryProductRepository()
		products, err := repo.GetAll(context.Background())
		if err != nil {
			t.Fatalf("GetAll() unexpected error = %v", err)
		}
		if len(products) != 11 {
			t.Errorf("GetAll() returned %d products, want 11", len(products))
		}
	})

	t.Run("explicit products keep order", func(t *testing.T) {
		repo := NewInMemoryProductRepository(models.Product{ID: "b"}, models.Product{ID: "a"})
		products, err := repo.GetAll(context.Background())
		if err != nil {
			t.Fatalf("GetAll() unexpected error = %v", err)
		}
		if len(products) != 2 || products[0].ID != "b" || products[1].ID != "a" {
			t.Errorf("GetAll() = %+v, want [b a]", products)
		}

		products[0].ID = "changed"
		again, _ := repo.GetAll(context.Background())
		if again[0].ID != "b" {
			t.Error("GetAll() leaked internal slice")
		}
	})
}

func TestRemoteProductRepository_GetAll(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/production/products" {
				t.Errorf("unexpected path %q", r.URL.Path)
			}
			if got := r.Header.Get("x-api-key"); got != "secret" {
				t.Errorf("x-api-key = %q, want secret", got)
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode([]models.Product{
				{ID: "1", Price: "500", LinkedPositionID: ""},
				{ID: "2", Price: "700", LinkedPositionID: "1"},
			})
		}))
		defer srv.Close()

		repo := NewRemoteProductRepository(srv.URL+"/production", "secret", time.Second)
		products, err := repo.GetAll(context.Background())
		if err != nil {
			t.Fatalf("GetAll() unexpected error = %v", err)
		}
		if len(products) != 2 || products[1].LinkedPositionID != "1" {
			t.Errorf("GetAll() = %+v", products)
		}
	})

	t.Run("bad status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		repo := NewRemoteProductRepository(srv.URL, "", time.Second)
		if _, err := repo.GetAll(context.Background()); err == nil {
			t.Error("expected error for non-200 status")
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("{not json"))
		}))
		defer srv.Close()

		repo := NewRemoteProductRepository(srv.URL, "", time.Second)
		if _, err := repo.GetAll(context.Background()); err == nil {
			t.Error("expected error for malformed body")
		}
	})
}
