package ports

import (
	"context"
	"time"

	"ecommerce-backend/internal/model"
)

type OrderRepository interface {
	GetAnalyticsData(ctx context.Context) (*model.AnalyticsData, error)
	GetDailySales(ctx context.Context, startDate, endDate time.Time) ([]model.DailySales, error)
}

type AnalyticsService interface {
	GetAnalytics(ctx context.Context) (*model.AnalyticsData, []model.DailySales, error)
}
