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

type CouponRepository struct {
	*config.Database
}

func NewCouponRepository(database *config.Database) *CouponRepository {
	return &CouponRepository{database}
}

// FindActiveByUser : активный купон пользователя, (nil, nil) если его нет
func (r *CouponRepository) FindActiveByUser(ctx context.Context, userUUID string) (*model.Coupon, error) {
	query := `SELECT uuid, code, discount_percentage, expiration_date, is_active, user_uuid
				FROM coupons WHERE user_uuid = $1 AND is_active = TRUE`
	var coupon model.Coupon
	err := sqlx.GetContext(ctx, r.DB, &coupon, query, userUUID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, util.LogError("[CouponRepo] не удалось найти купон пользователя", err)
	}
	return &coupon, nil
}

// FindActiveByCode : активный купон пользователя по коду, (nil, nil) если не найден
func (r *CouponRepository) FindActiveByCode(ctx context.Context, userUUID, code string) (*model.Coupon, error) {
	query := `SELECT uuid, code, discount_percentage, expiration_date, is_active, user_uuid
				FROM coupons WHERE user_uuid = $1 AND code = $2 AND is_active = TRUE`
	var coupon model.Coupon
	err := sqlx.GetContext(ctx, r.DB, &coupon, query, userUUID, code)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, util.LogError("[CouponRepo] не удалось найти купон по коду", err)
	}
	return &coupon, nil
}

// Deactivate : гасит купон (например, после истечения срока)
func (r *CouponRepository) Deactivate(ctx context.Context, uuid string) error {
	query := `UPDATE coupons SET is_active = FALSE WHERE uuid = $1`
	if _, err := r.DB.ExecContext(ctx, query, uuid); err != nil {
		return util.LogError("[CouponRepo] не удалось деактивировать купон", err)
	}
	return nil
}
