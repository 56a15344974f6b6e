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

type UserRepository struct {
	*config.Database
}

func NewUserRepository(database *config.Database) *UserRepository {
	return &UserRepository{database}
}

// CreateUser : сохраняет нового пользователя
func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
	INSERT INTO users (uuid, name, email, password_hash, role)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING uuid, name, email, role, created_at
	`

	createdUser := &model.User{}
	err := r.DB.QueryRowxContext(ctx, query, user.UUID, user.Name, user.Email, user.PasswordHash, user.Role).
		Scan(&createdUser.UUID, &createdUser.Name, &createdUser.Email, &createdUser.Role, &createdUser.CreatedAt)

	if err != nil {
		return nil, util.LogError("[UserRepo] ошибка вставки данных в БД", err)
	}

	return createdUser, nil
}

// FindByUUID : ищет пользователя по UUID, (nil, nil) если не найден
func (r *UserRepository) FindByUUID(ctx context.Context, uuid string) (*model.User, error) {
	query := `SELECT uuid, name, email, password_hash, role, created_at FROM users WHERE uuid = $1`
	var user model.User
	err := sqlx.GetContext(ctx, r.DB, &user, query, uuid)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, util.LogError("[UserRepo] не удалось найти пользователя в БД", err)
	}
	return &user, nil
}

// FindByEmail : ищет пользователя по email, (nil, nil) если не найден
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT uuid, name, email, password_hash, role, created_at FROM users WHERE email = $1`
	var user model.User
	err := sqlx.GetContext(ctx, r.DB, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, util.LogError("[UserRepo] не удалось найти пользователя по email", err)
	}
	return &user, nil
}
