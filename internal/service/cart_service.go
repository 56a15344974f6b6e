package service

import (
	"context"

	"ecommerce-backend/internal/model"
	"ecommerce-backend/internal/ports"
	"ecommerce-backend/internal/util"
)

type CartService struct {
	cartRepository    ports.CartRepository
	productRepository ports.ProductRepository
}

func NewCartService(cartRepository ports.CartRepository, productRepository ports.ProductRepository) *CartService {
	return &CartService{
		cartRepository:    cartRepository,
		productRepository: productRepository,
	}
}

func (s *CartService) GetCartProducts(ctx context.Context, userUUID string) ([]model.CartProduct, error) {
	return s.cartRepository.ListProducts(ctx, userUUID)
}

// AddToCart : добавляет товар в корзину (повторное добавление увеличивает
// количество) и возвращает обновлённую корзину
func (s *CartService) AddToCart(ctx context.Context, userUUID, productUUID string) ([]model.CartProduct, error) {
	product, err := s.productRepository.GetByUUID(ctx, productUUID)
	if err != nil {
		return nil, util.LogError("[CartService] ошибка поиска товара", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if err := s.cartRepository.Upsert(ctx, userUUID, productUUID); err != nil {
		return nil, util.LogError("[CartService] не удалось добавить товар", err)
	}

	return s.cartRepository.ListProducts(ctx, userUUID)
}

func (s *CartService) RemoveFromCart(ctx context.Context, userUUID, productUUID string) ([]model.CartProduct, error) {
	if err := s.cartRepository.Remove(ctx, userUUID, productUUID); err != nil {
		return nil, util.LogError("[CartService] не удалось удалить позицию", err)
	}

	return s.cartRepository.ListProducts(ctx, userUUID)
}

// UpdateQuantity : выставляет количество позиции, ноль удаляет позицию
func (s *CartService) UpdateQuantity(ctx context.Context, userUUID, productUUID string, quantity int) ([]model.CartProduct, error) {
	if quantity <= 0 {
		return s.RemoveFromCart(ctx, userUUID, productUUID)
	}

	if err := s.cartRepository.SetQuantity(ctx, userUUID, productUUID, quantity); err != nil {
		return nil, util.LogError("[CartService] не удалось изменить количество", err)
	}

	return s.cartRepository.ListProducts(ctx, userUUID)
}

func (s *CartService) ClearCart(ctx context.Context, userUUID string) error {
	return s.cartRepository.Clear(ctx, userUUID)
}
