package service

import (
	"context"
	"errors"
	"time"

	"ecommerce-backend/internal/model"
	"ecommerce-backend/internal/ports"
	"ecommerce-backend/internal/util"
)

var (
	// ErrCouponNotFound : активного купона с таким кодом у пользователя нет
	ErrCouponNotFound = errors.New("купон не найден")
	// ErrCouponExpired : срок действия купона истёк
	ErrCouponExpired = errors.New("купон просрочен")
)

type CouponService struct {
	couponRepository ports.CouponRepository
}

func NewCouponService(couponRepository ports.CouponRepository) *CouponService {
	return &CouponService{couponRepository: couponRepository}
}

// GetCoupon : активный купон пользователя, nil если купона нет
func (s *CouponService) GetCoupon(ctx context.Context, userUUID string) (*model.Coupon, error) {
	return s.couponRepository.FindActiveByUser(ctx, userUUID)
}

// ValidateCoupon проверяет купон по коду. Просроченный купон деактивируется
// при первой же проверке
func (s *CouponService) ValidateCoupon(ctx context.Context, userUUID, code string) (*model.Coupon, error) {
	coupon, err := s.couponRepository.FindActiveByCode(ctx, userUUID, code)
	if err != nil {
		return nil, util.LogError("[CouponService] ошибка поиска купона", err)
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}

	if coupon.ExpirationDate.Before(time.Now()) {
		if err := s.couponRepository.Deactivate(ctx, coupon.UUID); err != nil {
			return nil, util.LogError("[CouponService] не удалось деактивировать купон", err)
		}
		return nil, ErrCouponExpired
	}

	return coupon, nil
}
