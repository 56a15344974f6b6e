package security

import (
	"errors"
	"fmt"
	"time"

	"ecommerce-backend/config"
	"ecommerce-backend/internal/model"
	"ecommerce-backend/internal/util"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired : срок действия токена истёк
	ErrTokenExpired = errors.New("токен просрочен")
	// ErrTokenInvalid : подпись или claims токена невалидны
	ErrTokenInvalid = errors.New("невалидный токен")
)

type Claims struct {
	UserUUID string `json:"user_uuid"`
	jwt.RegisteredClaims
}

// JWTService подписывает access и refresh токены разными секретами.
// Срок жизни access токена 15 минут, refresh токена 7 дней.
type JWTService struct {
	accessSecret    []byte
	refreshSecret   []byte
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

// NewJWTService проверяет конфигурацию один раз при старте:
// отсутствующий секрет или нечитаемый TTL это фатальная ошибка запуска,
// а не ошибка отдельного запроса
func NewJWTService(cfg *config.JWTConfig) (*JWTService, error) {
	if cfg.AccessSecret == "" || cfg.RefreshSecret == "" {
		return nil, fmt.Errorf("не заданы секреты подписи токенов")
	}

	accessTTL, err := time.ParseDuration(cfg.AccessTokenTTL)
	if err != nil {
		return nil, util.LogError("ошибка парсинга access_token_ttl", err)
	}

	refreshTTL, err := time.ParseDuration(cfg.RefreshTokenTTL)
	if err != nil {
		return nil, util.LogError("ошибка парсинга refresh_token_ttl", err)
	}

	return &JWTService{
		accessSecret:    []byte(cfg.AccessSecret),
		refreshSecret:   []byte(cfg.RefreshSecret),
		accessTokenTTL:  accessTTL,
		refreshTokenTTL: refreshTTL,
	}, nil
}

func (service *JWTService) AccessTokenTTL() time.Duration {
	return service.accessTokenTTL
}

func (service *JWTService) RefreshTokenTTL() time.Duration {
	return service.refreshTokenTTL
}

// GenerateTokensPair создаёт пару подписанных токенов для пользователя
func (service *JWTService) GenerateTokensPair(userUUID string) (*model.TokensPair, error) {
	accessToken, err := service.sign(userUUID, service.accessSecret, service.accessTokenTTL)
	if err != nil {
		return nil, util.LogError("ошибка подписи access токена", err)
	}

	refreshToken, err := service.sign(userUUID, service.refreshSecret, service.refreshTokenTTL)
	if err != nil {
		return nil, util.LogError("ошибка подписи refresh токена", err)
	}

	return &model.TokensPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// GenerateAccessToken подписывает только новый access токен.
// Используется в refresh: refresh токен при этом не перевыпускается
func (service *JWTService) GenerateAccessToken(userUUID string) (string, error) {
	accessToken, err := service.sign(userUUID, service.accessSecret, service.accessTokenTTL)
	if err != nil {
		return "", util.LogError("ошибка подписи access токена", err)
	}
	return accessToken, nil
}

func (service *JWTService) sign(userUUID string, secret []byte, ttl time.Duration) (string, error) {
	claims := Claims{
		UserUUID: userUUID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "ecommerce-backend",
		},
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return jwtToken.SignedString(secret)
}

// VerifyAccessToken возвращает UUID пользователя из access токена.
// Просроченный токен даёт ErrTokenExpired, любой другой дефект ErrTokenInvalid:
// middleware реагирует на них по-разному
func (service *JWTService) VerifyAccessToken(tokenStr string) (string, error) {
	return service.verify(tokenStr, service.accessSecret)
}

// VerifyRefreshToken возвращает UUID пользователя из refresh токена
func (service *JWTService) VerifyRefreshToken(tokenStr string) (string, error) {
	return service.verify(tokenStr, service.refreshSecret)
}

func (service *JWTService) verify(tokenStr string, secret []byte) (string, error) {
	var claims = &Claims{}

	jwtToken, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Header["alg"] != jwt.SigningMethodHS512.Alg() {
			return nil, fmt.Errorf("неверный способ подписи токена: %v", token.Header["alg"])
		}
		return secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}

	if !jwtToken.Valid || claims.UserUUID == "" {
		return "", ErrTokenInvalid
	}

	return claims.UserUUID, nil
}
