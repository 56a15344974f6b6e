package ports

import (
	"context"

	"ecommerce-backend/internal/model"
)

type AuthenticationService interface {
	Signup(ctx context.Context, name, email, password string) (*model.User, *model.TokensPair, error)
	Login(ctx context.Context, email, password string) (*model.User, *model.TokensPair, error)
	Logout(ctx context.Context, refreshToken string) error
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, error)
}
