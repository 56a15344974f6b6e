package ports

import (
	"context"

	"ecommerce-backend/internal/model"
)

type CartRepository interface {
	ListProducts(ctx context.Context, userUUID string) ([]model.CartProduct, error)
	Upsert(ctx context.Context, userUUID, productUUID string) error
	SetQuantity(ctx context.Context, userUUID, productUUID string, quantity int) error
	Remove(ctx context.Context, userUUID, productUUID string) error
	Clear(ctx context.Context, userUUID string) error
}

type CartService interface {
	GetCartProducts(ctx context.Context, userUUID string) ([]model.CartProduct, error)
	AddToCart(ctx context.Context, userUUID, productUUID string) ([]model.CartProduct, error)
	RemoveFromCart(ctx context.Context, userUUID, productUUID string) ([]model.CartProduct, error)
	UpdateQuantity(ctx context.Context, userUUID, productUUID string, quantity int) ([]model.CartProduct, error)
	ClearCart(ctx context.Context, userUUID string) error
}
