package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"ecommerce-backend/config"
	"ecommerce-backend/internal/model"
	"ecommerce-backend/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newTestUserRepository(t *testing.T) (*repository.UserRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")
	return repository.NewUserRepository(&config.Database{DB: sqlxDB}), mock
}

// 1. CreateUser возвращает строку из RETURNING
func TestUserRepository_CreateUser(t *testing.T) {
	repo, mock := newTestUserRepository(t)

	createdAt := time.Now()
	rows := sqlmock.NewRows([]string{"uuid", "name", "email", "role", "created_at"}).
		AddRow("u1", "Иван", "ivan@example.com", "customer", createdAt)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("u1", "Иван", "ivan@example.com", "hash", model.RoleCustomer).
		WillReturnRows(rows)

	user, err := repo.CreateUser(context.Background(), &model.User{
		UUID:         "u1",
		Name:         "Иван",
		Email:        "ivan@example.com",
		PasswordHash: "hash",
		Role:         model.RoleCustomer,
	})

	assert.NoError(t, err)
	assert.Equal(t, "u1", user.UUID)
	assert.Equal(t, model.RoleCustomer, user.Role)
	assert.Empty(t, user.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// 2. Ошибка вставки (например, дубликат email) поднимается наверх
func TestUserRepository_CreateUserError(t *testing.T) {
	repo, mock := newTestUserRepository(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("duplicate key value violates unique constraint"))

	user, err := repo.CreateUser(context.Background(), &model.User{UUID: "u1"})

	assert.Error(t, err)
	assert.Nil(t, user)
}

// 3. FindByEmail возвращает пользователя с хэшем пароля
func TestUserRepository_FindByEmail(t *testing.T) {
	repo, mock := newTestUserRepository(t)

	rows := sqlmock.NewRows([]string{"uuid", "name", "email", "password_hash", "role", "created_at"}).
		AddRow("u1", "Иван", "ivan@example.com", "hash", "customer", time.Now())

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("ivan@example.com").
		WillReturnRows(rows)

	user, err := repo.FindByEmail(context.Background(), "ivan@example.com")

	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "u1", user.UUID)
	assert.Equal(t, "hash", user.PasswordHash)
}

// 4. Отсутствующий email это (nil, nil), а не ошибка
func TestUserRepository_FindByEmailAbsent(t *testing.T) {
	repo, mock := newTestUserRepository(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"uuid", "name", "email", "password_hash", "role", "created_at"}))

	user, err := repo.FindByEmail(context.Background(), "ghost@example.com")

	assert.NoError(t, err)
	assert.Nil(t, user)
}

// 5. FindByUUID: найден и не найден
func TestUserRepository_FindByUUID(t *testing.T) {
	repo, mock := newTestUserRepository(t)

	rows := sqlmock.NewRows([]string{"uuid", "name", "email", "password_hash", "role", "created_at"}).
		AddRow("u1", "Иван", "ivan@example.com", "hash", "admin", time.Now())

	mock.ExpectQuery("SELECT (.+) FROM users WHERE uuid").
		WithArgs("u1").
		WillReturnRows(rows)

	user, err := repo.FindByUUID(context.Background(), "u1")
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, model.RoleAdmin, user.Role)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE uuid").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"uuid", "name", "email", "password_hash", "role", "created_at"}))

	user, err = repo.FindByUUID(context.Background(), "ghost")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

// 6. Сбой БД отличим от «не найдено»
func TestUserRepository_FindDatabaseError(t *testing.T) {
	repo, mock := newTestUserRepository(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE uuid").
		WithArgs("u1").
		WillReturnError(errors.New("connection refused"))

	user, err := repo.FindByUUID(context.Background(), "u1")

	assert.Error(t, err)
	assert.Nil(t, user)
}
