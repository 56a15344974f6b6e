package model

import "time"

type Coupon struct {
	UUID               string    `db:"uuid" json:"id"`
	Code               string    `db:"code" json:"code"`
	DiscountPercentage int       `db:"discount_percentage" json:"discountPercentage"`
	ExpirationDate     time.Time `db:"expiration_date" json:"expirationDate"`
	IsActive           bool      `db:"is_active" json:"isActive"`
	UserUUID           string    `db:"user_uuid" json:"userId"`
}
