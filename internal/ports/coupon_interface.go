package ports

import (
	"context"

	"ecommerce-backend/internal/model"
)

type CouponRepository interface {
	// FindActiveByUser возвращает (nil, nil), если активного купона нет
	FindActiveByUser(ctx context.Context, userUUID string) (*model.Coupon, error)
	// FindActiveByCode возвращает (nil, nil), если купон не найден
	FindActiveByCode(ctx context.Context, userUUID, code string) (*model.Coupon, error)
	Deactivate(ctx context.Context, uuid string) error
}

type CouponService interface {
	GetCoupon(ctx context.Context, userUUID string) (*model.Coupon, error)
	ValidateCoupon(ctx context.Context, userUUID, code string) (*model.Coupon, error)
}
