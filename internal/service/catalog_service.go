package service

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/spec-kit/storefront/internal/domain"
	"github.com/spec-kit/storefront/internal/repository"
)

// ProductCache is a read-through cache for the full catalog.
type ProductCache interface {
	Get(ctx context.Context) ([]domain.Product, bool, error)
	Set(ctx context.Context, products []domain.Product) error
}

// CatalogService serves the public product catalog.
type CatalogService struct {
	products repository.ProductRepository
	cache    ProductCache
	logger   *zap.Logger
	group    singleflight.Group
}

// NewCatalogService builds the service. cache may be nil.
func NewCatalogService(products repository.ProductRepository, cache ProductCache, logger *zap.Logger) *CatalogService {
	return &CatalogService{products: products, cache: cache, logger: logger}
}

// ListProducts returns every product. Cache failures fall back to the database.
func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if s.cache != nil {
		products, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn("catalog cache read failed", zap.Error(err))
		} else if ok {
			return products, nil
		}
	}

	v, err, _ := s.group.Do("catalog", func() (interface{}, error) {
		products, err := s.products.List(ctx)
		if err != nil {
			return nil, err
		}
		if s.cache != nil {
			if err := s.cache.Set(ctx, products); err != nil {
				s.logger.Warn("catalog cache write failed", zap.Error(err))
			}
		}
		return products, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Product), nil
}
