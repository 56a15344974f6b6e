package repository

import (
	"context"

	"ecommerce-backend/config"
	"ecommerce-backend/internal/model"
	"ecommerce-backend/internal/util"

	"github.com/jmoiron/sqlx"
)

type CartRepository struct {
	*config.Database
}

func NewCartRepository(database *config.Database) *CartRepository {
	return &CartRepository{database}
}

// ListProducts : содержимое корзины вместе с данными товаров
func (r *CartRepository) ListProducts(ctx context.Context, userUUID string) ([]model.CartProduct, error) {
	query := `
	SELECT p.uuid, p.name, p.description, p.price, p.image_url, p.category, p.is_featured, p.created_at,
		   c.quantity
	FROM cart_items c
	JOIN products p ON p.uuid = c.product_uuid
	WHERE c.user_uuid = $1
	ORDER BY p.name
	`
	var items []model.CartProduct
	if err := sqlx.SelectContext(ctx, r.DB, &items, query, userUUID); err != nil {
		return nil, util.LogError("[CartRepo] не удалось получить корзину", err)
	}
	return items, nil
}

// Upsert : добавляет товар в корзину или увеличивает количество на 1
func (r *CartRepository) Upsert(ctx context.Context, userUUID, productUUID string) error {
	query := `
	INSERT INTO cart_items (user_uuid, product_uuid, quantity)
	VALUES ($1, $2, 1)
	ON CONFLICT (user_uuid, product_uuid)
	DO UPDATE SET quantity = cart_items.quantity + 1
	`
	if _, err := r.DB.ExecContext(ctx, query, userUUID, productUUID); err != nil {
		return util.LogError("[CartRepo] не удалось добавить товар в корзину", err)
	}
	return nil
}

// SetQuantity : выставляет количество позиции
func (r *CartRepository) SetQuantity(ctx context.Context, userUUID, productUUID string, quantity int) error {
	query := `UPDATE cart_items SET quantity = $3 WHERE user_uuid = $1 AND product_uuid = $2`
	if _, err := r.DB.ExecContext(ctx, query, userUUID, productUUID, quantity); err != nil {
		return util.LogError("[CartRepo] не удалось изменить количество", err)
	}
	return nil
}

// Remove : удаляет одну позицию корзины
func (r *CartRepository) Remove(ctx context.Context, userUUID, productUUID string) error {
	query := `DELETE FROM cart_items WHERE user_uuid = $1 AND product_uuid = $2`
	if _, err := r.DB.ExecContext(ctx, query, userUUID, productUUID); err != nil {
		return util.LogError("[CartRepo] не удалось удалить позицию корзины", err)
	}
	return nil
}

// Clear : опустошает корзину пользователя
func (r *CartRepository) Clear(ctx context.Context, userUUID string) error {
	query := `DELETE FROM cart_items WHERE user_uuid = $1`
	if _, err := r.DB.ExecContext(ctx, query, userUUID); err != nil {
		return util.LogError("[CartRepo] не удалось очистить корзину", err)
	}
	return nil
}
