package repository

import (
	"context"
	"encoding/json"
	"errors"

	"ecommerce-backend/config"
	"ecommerce-backend/internal/model"
	"ecommerce-backend/internal/util"

	"github.com/redis/go-redis/v9"
)

const featuredProductsKey = "featured_products"

// CacheRepository хранит в Redis подборку featured товаров целиком,
// одним JSON-блобом без TTL: кэш обновляется при изменении каталога
type CacheRepository struct {
	client *config.RedisClient
}

func NewCacheRepository(rdb *config.RedisClient) *CacheRepository {
	return &CacheRepository{rdb}
}

func (r *CacheRepository) SetFeaturedProducts(ctx context.Context, products []model.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return util.LogError("ошибка сериализации товаров", err)
	}

	if err := r.client.Client.Set(ctx, featuredProductsKey, data, 0).Err(); err != nil {
		return util.LogError("ошибка сохранения товаров в Redis", err)
	}

	return nil
}

func (r *CacheRepository) GetFeaturedProducts(ctx context.Context) ([]model.Product, error) {
	val, err := r.client.Client.Get(ctx, featuredProductsKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil // нет в кэше
	} else if err != nil {
		return nil, util.LogError("ошибка получения товаров из Redis", err)
	}

	var products []model.Product
	if err := json.Unmarshal([]byte(val), &products); err != nil {
		return nil, util.LogError("ошибка десериализации товаров из кэша", err)
	}
	return products, nil
}
