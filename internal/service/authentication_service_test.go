package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"ecommerce-backend/internal/model"
	"ecommerce-backend/internal/security"
	"ecommerce-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// ===== MOCKS =====

// MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByUUID(ctx context.Context, uuid string) (*model.User, error) {
	args := m.Called(ctx, uuid)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockSessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Put(ctx context.Context, userUUID, refreshToken string) error {
	args := m.Called(ctx, userUUID, refreshToken)
	return args.Error(0)
}

func (m *MockSessionRepository) Get(ctx context.Context, userUUID string) (string, error) {
	args := m.Called(ctx, userUUID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionRepository) Delete(ctx context.Context, userUUID string) error {
	args := m.Called(ctx, userUUID)
	return args.Error(0)
}

func (m *MockSessionRepository) Validate(ctx context.Context, userUUID, presentedToken string) (bool, error) {
	args := m.Called(ctx, userUUID, presentedToken)
	return args.Bool(0), args.Error(1)
}

// MockJWTService
type MockJWTService struct {
	mock.Mock
}

func (m *MockJWTService) GenerateTokensPair(userUUID string) (*model.TokensPair, error) {
	args := m.Called(userUUID)
	if t, ok := args.Get(0).(*model.TokensPair); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJWTService) GenerateAccessToken(userUUID string) (string, error) {
	args := m.Called(userUUID)
	return args.String(0), args.Error(1)
}

func (m *MockJWTService) VerifyAccessToken(tokenStr string) (string, error) {
	args := m.Called(tokenStr)
	return args.String(0), args.Error(1)
}

func (m *MockJWTService) VerifyRefreshToken(tokenStr string) (string, error) {
	args := m.Called(tokenStr)
	return args.String(0), args.Error(1)
}

func (m *MockJWTService) AccessTokenTTL() time.Duration {
	return 15 * time.Minute
}

func (m *MockJWTService) RefreshTokenTTL() time.Duration {
	return 7 * 24 * time.Hour
}

// ===== HELPERS =====

func newTestAuthService() (*service.AuthenticationService, *MockUserRepository, *MockSessionRepository, *MockJWTService) {
	mockUserRepo := new(MockUserRepository)
	mockSessionRepo := new(MockSessionRepository)
	mockJWTService := new(MockJWTService)

	svc := service.NewAuthenticationService(mockUserRepo, mockSessionRepo, mockJWTService)

	return svc, mockUserRepo, mockSessionRepo, mockJWTService
}

func hashForTest(t *testing.T, password string) string {
	t.Helper()
	hash, err := security.HashPassword(password)
	assert.NoError(t, err)
	return hash
}

// ===== TESTS =====

// 1. Повторная регистрация на тот же email
func TestSignup_UserExists(t *testing.T) {
	svc, mockUserRepo, _, _ := newTestAuthService()
	ctx := context.Background()

	mockUserRepo.On("FindByEmail", ctx, "a@x.com").
		Return(&model.User{UUID: "u1", Email: "a@x.com"}, nil)

	_, _, err := svc.Signup(ctx, "A", "a@x.com", "secret1")

	assert.ErrorIs(t, err, service.ErrUserExists)
	mockUserRepo.AssertExpectations(t)
	mockUserRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

// 2. Успешная регистрация: роль customer, refresh токен сохранён
func TestSignup_Success(t *testing.T) {
	svc, mockUserRepo, mockSessionRepo, mockJWTService := newTestAuthService()
	ctx := context.Background()

	tokens := &model.TokensPair{AccessToken: "acc", RefreshToken: "ref"}

	mockUserRepo.On("FindByEmail", ctx, "a@x.com").Return(nil, nil)
	mockUserRepo.On("CreateUser", ctx, mock.MatchedBy(func(u *model.User) bool {
		return u.Email == "a@x.com" && u.Role == model.RoleCustomer && u.PasswordHash != "" && u.PasswordHash != "secret1"
	})).Return(&model.User{UUID: "u1", Name: "A", Email: "a@x.com", Role: model.RoleCustomer}, nil)
	mockJWTService.On("GenerateTokensPair", "u1").Return(tokens, nil)
	mockSessionRepo.On("Put", ctx, "u1", "ref").Return(nil)

	user, result, err := svc.Signup(ctx, "A", "a@x.com", "secret1")

	assert.NoError(t, err)
	assert.Equal(t, tokens, result)
	assert.Equal(t, "u1", user.UUID)
	mockUserRepo.AssertExpectations(t)
	mockSessionRepo.AssertExpectations(t)
	mockJWTService.AssertExpectations(t)
}

// 3. Логин с неизвестным email и логин с неверным паролем дают одну и ту же
// ошибку: по ответу нельзя перебирать зарегистрированные email
func TestLogin_UnknownEmailAndWrongPasswordIndistinguishable(t *testing.T) {
	svc, mockUserRepo, _, _ := newTestAuthService()
	ctx := context.Background()

	hash := hashForTest(t, "goodpass")

	mockUserRepo.On("FindByEmail", ctx, "nobody@x.com").Return(nil, nil)
	mockUserRepo.On("FindByEmail", ctx, "a@x.com").
		Return(&model.User{UUID: "u1", PasswordHash: hash}, nil)

	_, _, errUnknown := svc.Login(ctx, "nobody@x.com", "whatever")
	_, _, errWrongPass := svc.Login(ctx, "a@x.com", "badpass")

	assert.ErrorIs(t, errUnknown, service.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, service.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
}

// 4. Успешный логин перезаписывает сессию
func TestLogin_Success(t *testing.T) {
	svc, mockUserRepo, mockSessionRepo, mockJWTService := newTestAuthService()
	ctx := context.Background()

	hash := hashForTest(t, "goodpass")
	user := &model.User{UUID: "u1", Email: "a@x.com", PasswordHash: hash, Role: model.RoleCustomer}
	tokens := &model.TokensPair{AccessToken: "acc", RefreshToken: "ref2"}

	mockUserRepo.On("FindByEmail", ctx, "a@x.com").Return(user, nil)
	mockJWTService.On("GenerateTokensPair", "u1").Return(tokens, nil)
	mockSessionRepo.On("Put", ctx, "u1", "ref2").Return(nil)

	result, resultTokens, err := svc.Login(ctx, "a@x.com", "goodpass")

	assert.NoError(t, err)
	assert.Equal(t, user, result)
	assert.Equal(t, tokens, resultTokens)
	mockSessionRepo.AssertExpectations(t)
}

// 5. Ошибка сохранения refresh токена
func TestLogin_SaveRefreshTokenError(t *testing.T) {
	svc, mockUserRepo, mockSessionRepo, mockJWTService := newTestAuthService()
	ctx := context.Background()

	hash := hashForTest(t, "goodpass")
	tokens := &model.TokensPair{AccessToken: "acc", RefreshToken: "ref"}

	mockUserRepo.On("FindByEmail", ctx, "a@x.com").
		Return(&model.User{UUID: "u1", PasswordHash: hash}, nil)
	mockJWTService.On("GenerateTokensPair", "u1").Return(tokens, nil)
	mockSessionRepo.On("Put", ctx, "u1", "ref").Return(errors.New("redis down"))

	_, _, err := svc.Login(ctx, "a@x.com", "goodpass")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ошибка сохранения refresh токена")
}

// 6. Logout удаляет сессию по refresh токену
func TestLogout_DeletesSession(t *testing.T) {
	svc, _, mockSessionRepo, mockJWTService := newTestAuthService()
	ctx := context.Background()

	mockJWTService.On("VerifyRefreshToken", "ref").Return("u1", nil)
	mockSessionRepo.On("Delete", ctx, "u1").Return(nil)

	err := svc.Logout(ctx, "ref")

	assert.NoError(t, err)
	mockSessionRepo.AssertExpectations(t)
}

// 7. Logout с невалидным токеном не падает: выйти можно всегда
func TestLogout_InvalidTokenIsBestEffort(t *testing.T) {
	svc, _, mockSessionRepo, mockJWTService := newTestAuthService()
	ctx := context.Background()

	mockJWTService.On("VerifyRefreshToken", "garbage").Return("", errors.New("invalid"))

	err := svc.Logout(ctx, "garbage")

	assert.NoError(t, err)
	mockSessionRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

// 8. Refresh с невалидной подписью
func TestRefreshAccessToken_InvalidSignature(t *testing.T) {
	svc, _, _, mockJWTService := newTestAuthService()
	ctx := context.Background()

	mockJWTService.On("VerifyRefreshToken", "garbage").Return("", errors.New("invalid"))

	_, err := svc.RefreshAccessToken(ctx, "garbage")

	assert.ErrorIs(t, err, service.ErrInvalidRefreshToken)
}

// 9. Refresh после logout: подпись валидна, но записи в сторе больше нет
func TestRefreshAccessToken_NotInStore(t *testing.T) {
	svc, _, mockSessionRepo, mockJWTService := newTestAuthService()
	ctx := context.Background()

	mockJWTService.On("VerifyRefreshToken", "ref").Return("u1", nil)
	mockSessionRepo.On("Validate", ctx, "u1", "ref").Return(false, nil)

	_, err := svc.RefreshAccessToken(ctx, "ref")

	assert.ErrorIs(t, err, service.ErrInvalidRefreshToken)
	mockJWTService.AssertNotCalled(t, "GenerateAccessToken", mock.Anything)
}

// 10. Ошибка Redis при проверке сессии это не 401, а серверная ошибка
func TestRefreshAccessToken_StoreError(t *testing.T) {
	svc, _, mockSessionRepo, mockJWTService := newTestAuthService()
	ctx := context.Background()

	mockJWTService.On("VerifyRefreshToken", "ref").Return("u1", nil)
	mockSessionRepo.On("Validate", ctx, "u1", "ref").Return(false, errors.New("redis down"))

	_, err := svc.RefreshAccessToken(ctx, "ref")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrInvalidRefreshToken)
}

// 11. Успешный refresh выпускает только новый access токен,
// refresh токен не перевыпускается
func TestRefreshAccessToken_Success(t *testing.T) {
	svc, _, mockSessionRepo, mockJWTService := newTestAuthService()
	ctx := context.Background()

	mockJWTService.On("VerifyRefreshToken", "ref").Return("u1", nil)
	mockSessionRepo.On("Validate", ctx, "u1", "ref").Return(true, nil)
	mockJWTService.On("GenerateAccessToken", "u1").Return("new-access", nil)

	accessToken, err := svc.RefreshAccessToken(ctx, "ref")

	assert.NoError(t, err)
	assert.Equal(t, "new-access", accessToken)
	mockJWTService.AssertNotCalled(t, "GenerateTokensPair", mock.Anything)
	mockSessionRepo.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)
}
