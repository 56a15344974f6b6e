package security_test

import (
	"testing"

	"ecommerce-backend/config"
	"ecommerce-backend/internal/security"

	"github.com/stretchr/testify/assert"
)

func newTestJWTService(t *testing.T, accessTTL, refreshTTL string) *security.JWTService {
	t.Helper()

	svc, err := security.NewJWTService(&config.JWTConfig{
		AccessSecret:    "test-access-secret",
		RefreshSecret:   "test-refresh-secret",
		AccessTokenTTL:  accessTTL,
		RefreshTokenTTL: refreshTTL,
	})
	assert.NoError(t, err)
	return svc
}

// 1. Отсутствующий секрет это ошибка конструктора, а не запроса
func TestNewJWTService_MissingSecret(t *testing.T) {
	_, err := security.NewJWTService(&config.JWTConfig{
		AccessSecret:    "",
		RefreshSecret:   "secret",
		AccessTokenTTL:  "15m",
		RefreshTokenTTL: "168h",
	})

	assert.Error(t, err)
}

// 2. Нечитаемый TTL это тоже ошибка конструктора
func TestNewJWTService_BadTTL(t *testing.T) {
	_, err := security.NewJWTService(&config.JWTConfig{
		AccessSecret:    "a",
		RefreshSecret:   "r",
		AccessTokenTTL:  "fifteen minutes",
		RefreshTokenTTL: "168h",
	})

	assert.Error(t, err)
}

// 3. Пара токенов проходит проверку своими секретами
func TestGenerateTokensPair_RoundTrip(t *testing.T) {
	svc := newTestJWTService(t, "15m", "168h")

	tokens, err := svc.GenerateTokensPair("u1")
	assert.NoError(t, err)
	assert.NotEqual(t, tokens.AccessToken, tokens.RefreshToken)

	userUUID, err := svc.VerifyAccessToken(tokens.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, "u1", userUUID)

	userUUID, err = svc.VerifyRefreshToken(tokens.RefreshToken)
	assert.NoError(t, err)
	assert.Equal(t, "u1", userUUID)
}

// 4. Access токен не проходит как refresh и наоборот: секреты разные
func TestVerify_CrossTokenRejected(t *testing.T) {
	svc := newTestJWTService(t, "15m", "168h")

	tokens, err := svc.GenerateTokensPair("u1")
	assert.NoError(t, err)

	_, err = svc.VerifyRefreshToken(tokens.AccessToken)
	assert.ErrorIs(t, err, security.ErrTokenInvalid)

	_, err = svc.VerifyAccessToken(tokens.RefreshToken)
	assert.ErrorIs(t, err, security.ErrTokenInvalid)
}

// 5. Просроченный токен отличим от повреждённого
func TestVerifyAccessToken_Expired(t *testing.T) {
	// отрицательный TTL выпускает уже просроченный токен
	expired := newTestJWTService(t, "-15m", "168h")

	tokens, err := expired.GenerateTokensPair("u1")
	assert.NoError(t, err)

	_, err = expired.VerifyAccessToken(tokens.AccessToken)
	assert.ErrorIs(t, err, security.ErrTokenExpired)
	assert.NotErrorIs(t, err, security.ErrTokenInvalid)
}

// 6. Мусор вместо токена
func TestVerifyAccessToken_Garbage(t *testing.T) {
	svc := newTestJWTService(t, "15m", "168h")

	_, err := svc.VerifyAccessToken("not-a-jwt")
	assert.ErrorIs(t, err, security.ErrTokenInvalid)
}

// 7. Токен, подписанный другим секретом
func TestVerifyAccessToken_WrongSecret(t *testing.T) {
	svc := newTestJWTService(t, "15m", "168h")

	other, err := security.NewJWTService(&config.JWTConfig{
		AccessSecret:    "another-secret",
		RefreshSecret:   "another-refresh",
		AccessTokenTTL:  "15m",
		RefreshTokenTTL: "168h",
	})
	assert.NoError(t, err)

	tokens, err := other.GenerateTokensPair("u1")
	assert.NoError(t, err)

	_, err = svc.VerifyAccessToken(tokens.AccessToken)
	assert.ErrorIs(t, err, security.ErrTokenInvalid)
}

// 8. Refresh flow выпускает только access токен
func TestGenerateAccessToken(t *testing.T) {
	svc := newTestJWTService(t, "15m", "168h")

	accessToken, err := svc.GenerateAccessToken("u1")
	assert.NoError(t, err)

	userUUID, err := svc.VerifyAccessToken(accessToken)
	assert.NoError(t, err)
	assert.Equal(t, "u1", userUUID)
}
