package ports

import (
	"time"

	"ecommerce-backend/internal/model"
)

type JWTServiceInterface interface {
	GenerateTokensPair(userUUID string) (*model.TokensPair, error)
	GenerateAccessToken(userUUID string) (string, error)
	VerifyAccessToken(tokenStr string) (string, error)
	VerifyRefreshToken(tokenStr string) (string, error)
	AccessTokenTTL() time.Duration
	RefreshTokenTTL() time.Duration
}
