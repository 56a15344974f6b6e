package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"ecommerce-backend/internal/model"
	"ecommerce-backend/internal/ports"
	"ecommerce-backend/internal/security"
	"ecommerce-backend/internal/util"

	"github.com/google/uuid"
)

var (
	// ErrUserExists : email уже зарегистрирован
	ErrUserExists = errors.New("пользователь уже существует")
	// ErrInvalidCredentials : общий ответ и на неизвестный email, и на неверный
	// пароль, чтобы по ответу нельзя было перебирать зарегистрированные email
	ErrInvalidCredentials = errors.New("неверный email или пароль")
	// ErrInvalidRefreshToken : refresh токен просрочен, повреждён или отозван
	ErrInvalidRefreshToken = errors.New("невалидный refresh токен")
)

type AuthenticationService struct {
	userRepository    ports.UserRepository
	sessionRepository ports.SessionRepository
	jwtService        ports.JWTServiceInterface
}

func NewAuthenticationService(
	userRepository ports.UserRepository,
	sessionRepository ports.SessionRepository,
	jwtService ports.JWTServiceInterface,
) *AuthenticationService {
	return &AuthenticationService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		jwtService:        jwtService,
	}
}

// Signup регистрирует пользователя и сразу открывает сессию
func (s *AuthenticationService) Signup(ctx context.Context, name, email, password string) (*model.User, *model.TokensPair, error) {
	existing, err := s.userRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, fmt.Errorf("ошибка проверки email: %w", err)
	}
	if existing != nil {
		return nil, nil, ErrUserExists
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, nil, util.LogError("не удалось создать хэш пароля", err)
	}

	user := &model.User{
		UUID:         uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleCustomer,
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, nil, fmt.Errorf("ошибка создания пользователя: %w", err)
	}

	tokens, err := s.openSession(ctx, created.UUID)
	if err != nil {
		return nil, nil, err
	}

	return created, tokens, nil
}

// Login проверяет пароль и открывает новую сессию.
// Повторный логин перезаписывает refresh токен предыдущей сессии
func (s *AuthenticationService) Login(ctx context.Context, email, password string) (*model.User, *model.TokensPair, error) {
	user, err := s.userRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, fmt.Errorf("ошибка поиска пользователя: %w", err)
	}

	if user == nil || !security.CheckPassword(password, user.PasswordHash) {
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := s.openSession(ctx, user.UUID)
	if err != nil {
		return nil, nil, err
	}

	return user, tokens, nil
}

func (s *AuthenticationService) openSession(ctx context.Context, userUUID string) (*model.TokensPair, error) {
	tokens, err := s.jwtService.GenerateTokensPair(userUUID)
	if err != nil {
		return nil, fmt.Errorf("ошибка генерации токенов: %w", err)
	}

	if err := s.sessionRepository.Put(ctx, userUUID, tokens.RefreshToken); err != nil {
		return nil, fmt.Errorf("ошибка сохранения refresh токена: %w", err)
	}

	return tokens, nil
}

// Logout закрывает сессию по refresh токену. Best-effort: просроченный или
// повреждённый токен не мешает выходу, пользователь всегда может разлогиниться
func (s *AuthenticationService) Logout(ctx context.Context, refreshToken string) error {
	userUUID, err := s.jwtService.VerifyRefreshToken(refreshToken)
	if err != nil {
		log.Printf("logout с невалидным refresh токеном: %v", err)
		return nil
	}

	if err := s.sessionRepository.Delete(ctx, userUUID); err != nil {
		return fmt.Errorf("ошибка удаления сессии: %w", err)
	}

	return nil
}

// RefreshAccessToken выпускает новый access токен по действующему refresh токену.
// Токен сверяется с записью в Redis: после logout или повторного логина старый
// refresh токен отклоняется, даже если его подпись ещё валидна.
// Сам refresh токен не перевыпускается (ротации нет)
func (s *AuthenticationService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	userUUID, err := s.jwtService.VerifyRefreshToken(refreshToken)
	if err != nil {
		log.Printf("refresh с невалидным токеном: %v", err)
		return "", ErrInvalidRefreshToken
	}

	valid, err := s.sessionRepository.Validate(ctx, userUUID, refreshToken)
	if err != nil {
		return "", fmt.Errorf("ошибка проверки сессии: %w", err)
	}
	if !valid {
		log.Printf("refresh токен пользователя %s не совпадает с сохранённым", userUUID)
		return "", ErrInvalidRefreshToken
	}

	accessToken, err := s.jwtService.GenerateAccessToken(userUUID)
	if err != nil {
		return "", fmt.Errorf("ошибка генерации access токена: %w", err)
	}

	return accessToken, nil
}
