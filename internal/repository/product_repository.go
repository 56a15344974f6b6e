package repository

import (
	"context"
	"database/sql"
	"errors"

	"ecommerce-backend/config"
	"ecommerce-backend/internal/model"
	"ecommerce-backend/internal/util"

	"github.com/jmoiron/sqlx"
)

type ProductRepository struct {
	*config.Database
}

func NewProductRepository(database *config.Database) *ProductRepository {
	return &ProductRepository{database}
}

// Create : сохраняет новый товар
func (r *ProductRepository) Create(ctx context.Context, product *model.Product) error {
	query := `
	INSERT INTO products (uuid, name, description, price, image_url, category, is_featured)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING created_at
	`

	err := r.DB.QueryRowxContext(ctx, query,
		product.UUID,
		product.Name,
		product.Description,
		product.Price,
		product.ImageURL,
		product.Category,
		product.IsFeatured,
	).Scan(&product.CreatedAt)

	if err != nil {
		return util.LogError("[ProductRepo] ошибка вставки товара в БД", err)
	}

	return nil
}

// GetByUUID : ищет товар по UUID, (nil, nil) если не найден
func (r *ProductRepository) GetByUUID(ctx context.Context, uuid string) (*model.Product, error) {
	query := `SELECT uuid, name, description, price, image_url, category, is_featured, created_at
				FROM products WHERE uuid = $1`
	var product model.Product
	err := sqlx.GetContext(ctx, r.DB, &product, query, uuid)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, util.LogError("[ProductRepo] не удалось найти товар", err)
	}
	return &product, nil
}

// Delete : удаляет товар по UUID
func (r *ProductRepository) Delete(ctx context.Context, uuid string) error {
	query := `DELETE FROM products WHERE uuid = $1`
	if _, err := r.DB.ExecContext(ctx, query, uuid); err != nil {
		return util.LogError("[ProductRepo] не удалось удалить товар", err)
	}
	return nil
}

// ListAll : все товары каталога
func (r *ProductRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	query := `SELECT uuid, name, description, price, image_url, category, is_featured, created_at
				FROM products ORDER BY created_at DESC`
	var products []model.Product
	if err := sqlx.SelectContext(ctx, r.DB, &products, query); err != nil {
		return nil, util.LogError("[ProductRepo] не удалось получить список товаров", err)
	}
	return products, nil
}

// ListFeatured : товары с флагом is_featured
func (r *ProductRepository) ListFeatured(ctx context.Context) ([]model.Product, error) {
	query := `SELECT uuid, name, description, price, image_url, category, is_featured, created_at
				FROM products WHERE is_featured = TRUE ORDER BY created_at DESC`
	var products []model.Product
	if err := sqlx.SelectContext(ctx, r.DB, &products, query); err != nil {
		return nil, util.LogError("[ProductRepo] не удалось получить featured товары", err)
	}
	return products, nil
}

// ListByCategory : товары одной категории
func (r *ProductRepository) ListByCategory(ctx context.Context, category string) ([]model.Product, error) {
	query := `SELECT uuid, name, description, price, image_url, category, is_featured, created_at
				FROM products WHERE category = $1 ORDER BY created_at DESC`
	var products []model.Product
	if err := sqlx.SelectContext(ctx, r.DB, &products, query, category); err != nil {
		return nil, util.LogError("[ProductRepo] не удалось получить товары категории", err)
	}
	return products, nil
}

// ListRandom : случайная выборка для блока рекомендаций
func (r *ProductRepository) ListRandom(ctx context.Context, limit int) ([]model.Product, error) {
	query := `SELECT uuid, name, description, price, image_url, category, is_featured, created_at
				FROM products ORDER BY random() LIMIT $1`
	var products []model.Product
	if err := sqlx.SelectContext(ctx, r.DB, &products, query, limit); err != nil {
		return nil, util.LogError("[ProductRepo] не удалось получить рекомендации", err)
	}
	return products, nil
}

// SetFeatured : переключает флаг is_featured
func (r *ProductRepository) SetFeatured(ctx context.Context, uuid string, featured bool) error {
	query := `UPDATE products SET is_featured = $2 WHERE uuid = $1`

	result, err := r.DB.ExecContext(ctx, query, uuid, featured)
	if err != nil {
		return util.LogError("[ProductRepo] не удалось обновить флаг featured", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[ProductRepo] не удалось проверить, обновлён ли товар", err)
	}
	if rowsAffected == 0 {
		return util.LogError("[ProductRepo] товар для обновления не найден", sql.ErrNoRows)
	}

	return nil
}
