package ports

import (
	"context"

	"ecommerce-backend/internal/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	// FindByEmail возвращает (nil, nil), если пользователь не найден
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// FindByUUID возвращает (nil, nil), если пользователь не найден
	FindByUUID(ctx context.Context, uuid string) (*model.User, error)
}
