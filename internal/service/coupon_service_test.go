package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"ecommerce-backend/internal/model"
	"ecommerce-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// ===== MOCKS =====

type MockCouponRepository struct {
	mock.Mock
}

func (m *MockCouponRepository) FindActiveByUser(ctx context.Context, userUUID string) (*model.Coupon, error) {
	args := m.Called(ctx, userUUID)
	if c, ok := args.Get(0).(*model.Coupon); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCouponRepository) FindActiveByCode(ctx context.Context, userUUID, code string) (*model.Coupon, error) {
	args := m.Called(ctx, userUUID, code)
	if c, ok := args.Get(0).(*model.Coupon); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCouponRepository) Deactivate(ctx context.Context, uuid string) error {
	args := m.Called(ctx, uuid)
	return args.Error(0)
}

// ===== TESTS =====

// 1. Действующий купон проходит проверку и не деактивируется
func TestValidateCoupon_Success(t *testing.T) {
	repo := new(MockCouponRepository)
	svc := service.NewCouponService(repo)

	coupon := &model.Coupon{
		UUID:               "c1",
		Code:               "GIFT10",
		DiscountPercentage: 10,
		ExpirationDate:     time.Now().Add(24 * time.Hour),
		IsActive:           true,
		UserUUID:           "u1",
	}
	repo.On("FindActiveByCode", mock.Anything, "u1", "GIFT10").Return(coupon, nil)

	got, err := svc.ValidateCoupon(context.Background(), "u1", "GIFT10")

	assert.NoError(t, err)
	assert.Equal(t, coupon, got)
	repo.AssertNotCalled(t, "Deactivate", mock.Anything, mock.Anything)
}

// 2. Неизвестный код
func TestValidateCoupon_NotFound(t *testing.T) {
	repo := new(MockCouponRepository)
	svc := service.NewCouponService(repo)

	repo.On("FindActiveByCode", mock.Anything, "u1", "NOPE").Return(nil, nil)

	got, err := svc.ValidateCoupon(context.Background(), "u1", "NOPE")

	assert.ErrorIs(t, err, service.ErrCouponNotFound)
	assert.Nil(t, got)
}

// 3. Просроченный купон деактивируется при первой проверке
func TestValidateCoupon_ExpiredDeactivates(t *testing.T) {
	repo := new(MockCouponRepository)
	svc := service.NewCouponService(repo)

	coupon := &model.Coupon{
		UUID:           "c1",
		Code:           "OLD",
		ExpirationDate: time.Now().Add(-time.Hour),
		IsActive:       true,
		UserUUID:       "u1",
	}
	repo.On("FindActiveByCode", mock.Anything, "u1", "OLD").Return(coupon, nil)
	repo.On("Deactivate", mock.Anything, "c1").Return(nil)

	got, err := svc.ValidateCoupon(context.Background(), "u1", "OLD")

	assert.ErrorIs(t, err, service.ErrCouponExpired)
	assert.Nil(t, got)
	repo.AssertCalled(t, "Deactivate", mock.Anything, "c1")
}

// 4. Сбой деактивации это не ErrCouponExpired: клиент не должен думать,
// что купон обработан
func TestValidateCoupon_DeactivateError(t *testing.T) {
	repo := new(MockCouponRepository)
	svc := service.NewCouponService(repo)

	coupon := &model.Coupon{
		UUID:           "c1",
		Code:           "OLD",
		ExpirationDate: time.Now().Add(-time.Hour),
		UserUUID:       "u1",
	}
	repo.On("FindActiveByCode", mock.Anything, "u1", "OLD").Return(coupon, nil)
	repo.On("Deactivate", mock.Anything, "c1").Return(errors.New("db down"))

	_, err := svc.ValidateCoupon(context.Background(), "u1", "OLD")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrCouponExpired)
}

// 5. GetCoupon прозрачно отдаёт (nil, nil) при отсутствии купона
func TestGetCoupon_Absent(t *testing.T) {
	repo := new(MockCouponRepository)
	svc := service.NewCouponService(repo)

	repo.On("FindActiveByUser", mock.Anything, "u1").Return(nil, nil)

	got, err := svc.GetCoupon(context.Background(), "u1")

	assert.NoError(t, err)
	assert.Nil(t, got)
}
