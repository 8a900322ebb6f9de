package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/storefront/internal/domain"
)

func TestCatalogService_ReadThrough(t *testing.T) {
	repo := &fakeProductRepo{products: []domain.Product{{ID: 1, Name: "Salmon", Category: domain.ProductCategorySeafood}}}
	cache := &fakeCache{}
	svc := NewCatalogService(repo, cache, zap.NewNop())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		products, err := svc.ListProducts(ctx)
		if err != nil {
			t.Fatalf("ListProducts() error = %v", err)
		}
		if len(products) != 1 || products[0].Name != "Salmon" {
			t.Fatalf("ListProducts() = %+v", products)
		}
	}
	if repo.calls != 1 {
		t.Errorf("repository calls = %d, want 1", repo.calls)
	}
	if cache.sets != 1 {
		t.Errorf("cache sets = %d, want 1", cache.sets)
	}
}

func TestCatalogService_CacheErrorFallsBack(t *testing.T) {
	repo := &fakeProductRepo{products: []domain.Product{{ID: 2}}}
	cache := &fakeCache{getErr: errors.New("redis down")}
	svc := NewCatalogService(repo, cache, zap.NewNop())

	products, err := svc.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("ListProducts() error = %v", err)
	}
	if len(products) != 1 || repo.calls != 1 {
		t.Errorf("expected database fallback, got %d products and %d calls", len(products), repo.calls)
	}
}

func TestCatalogService_NoCache(t *testing.T) {
	repo := &fakeProductRepo{err: errors.New("db down")}
	svc := NewCatalogService(repo, nil, zap.NewNop())

	if _, err := svc.ListProducts(context.Background()); err == nil {
		t.Fatal("ListProducts() error = nil, want repository error")
	}
}
