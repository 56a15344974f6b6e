package repository

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"ecommerce-backend/config"
	"ecommerce-backend/internal/util"

	"github.com/redis/go-redis/v9"
)

// SessionRepository хранит действующий refresh токен пользователя в Redis.
// Один ключ на пользователя: повторный логин перезаписывает предыдущую запись,
// поэтому одновременно живёт не больше одной сессии
type SessionRepository struct {
	client *config.RedisClient
	ttl    time.Duration
}

func NewSessionRepository(rdb *config.RedisClient, ttl time.Duration) *SessionRepository {
	return &SessionRepository{rdb, ttl}
}

// Put сохраняет refresh токен с абсолютным TTL, перезаписывая старый
func (r *SessionRepository) Put(ctx context.Context, userUUID string, refreshToken string) error {
	cmd := r.client.Client.Set(ctx, r.key(userUUID), refreshToken, r.ttl)
	if err := cmd.Err(); err != nil {
		return util.LogError("ошибка сохранения refresh токена в Redis", err)
	}
	if cmd.Val() != "OK" {
		return fmt.Errorf("неожиданный ответ Redis: %s", cmd.Val())
	}

	return nil
}

// Get возвращает сохранённый refresh токен или пустую строку, если записи нет
func (r *SessionRepository) Get(ctx context.Context, userUUID string) (string, error) {
	val, err := r.client.Client.Get(ctx, r.key(userUUID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil // записи нет
	} else if err != nil {
		return "", util.LogError("ошибка получения refresh токена из Redis", err)
	}

	return val, nil
}

func (r *SessionRepository) Delete(ctx context.Context, userUUID string) error {
	if err := r.client.Client.Del(ctx, r.key(userUUID)).Err(); err != nil {
		return util.LogError("ошибка удаления refresh токена из Redis", err)
	}
	return nil
}

// Validate сравнивает предъявленный токен с сохранённым.
// Отсутствие записи или несовпадение это false, а не ошибка: так отклоняется
// повторное использование токена после logout, даже если подпись ещё валидна
func (r *SessionRepository) Validate(ctx context.Context, userUUID string, presentedToken string) (bool, error) {
	stored, err := r.Get(ctx, userUUID)
	if err != nil {
		return false, err
	}
	if stored == "" {
		return false, nil
	}

	return subtle.ConstantTimeCompare([]byte(stored), []byte(presentedToken)) == 1, nil
}

func (r *SessionRepository) key(userUUID string) string {
	return fmt.Sprintf("refresh_token:%s", userUUID)
}
