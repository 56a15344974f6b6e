package ports

import (
	"context"

	"ecommerce-backend/internal/model"
)

// ProductRepository : SQL слой каталога
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	GetByUUID(ctx context.Context, uuid string) (*model.Product, error)
	Delete(ctx context.Context, uuid string) error
	ListAll(ctx context.Context) ([]model.Product, error)
	ListFeatured(ctx context.Context) ([]model.Product, error)
	ListByCategory(ctx context.Context, category string) ([]model.Product, error)
	ListRandom(ctx context.Context, limit int) ([]model.Product, error)
	SetFeatured(ctx context.Context, uuid string, featured bool) error
}

type ProductService interface {
	GetAllProducts(ctx context.Context) ([]model.Product, error)
	GetFeaturedProducts(ctx context.Context) ([]model.Product, error)
	GetProductsByCategory(ctx context.Context, category string) ([]model.Product, error)
	GetRecommendedProducts(ctx context.Context) ([]model.Product, error)
	CreateProduct(ctx context.Context, product *model.Product, imageDataURL string) (*model.Product, error)
	DeleteProduct(ctx context.Context, uuid string) error
	ToggleFeaturedProduct(ctx context.Context, uuid string) (*model.Product, error)
}
