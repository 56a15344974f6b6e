package ports

import (
	"context"

	"ecommerce-backend/internal/model"
)

// CacheRepository : Redis кэш подборки featured товаров
type CacheRepository interface {
	SetFeaturedProducts(ctx context.Context, products []model.Product) error
	// GetFeaturedProducts возвращает (nil, nil) при промахе кэша
	GetFeaturedProducts(ctx context.Context) ([]model.Product, error)
}
