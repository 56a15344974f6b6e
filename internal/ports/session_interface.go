package ports

import "context"

// SessionRepository : Redis слой для refresh токенов.
// Инвариант: не больше одной активной записи на пользователя,
// Put перезаписывает предыдущий токен
type SessionRepository interface {
	Put(ctx context.Context, userUUID string, refreshToken string) error
	Get(ctx context.Context, userUUID string) (string, error)
	Delete(ctx context.Context, userUUID string) error
	Validate(ctx context.Context, userUUID string, presentedToken string) (bool, error)
}
