package service

import (
	"context"
	"time"

	"ecommerce-backend/internal/model"
	"ecommerce-backend/internal/ports"
	"ecommerce-backend/internal/util"
)

type AnalyticsService struct {
	orderRepository ports.OrderRepository
}

func NewAnalyticsService(orderRepository ports.OrderRepository) *AnalyticsService {
	return &AnalyticsService{orderRepository: orderRepository}
}

// GetAnalytics : сводные показатели плюс продажи по дням за последнюю неделю
func (s *AnalyticsService) GetAnalytics(ctx context.Context) (*model.AnalyticsData, []model.DailySales, error) {
	data, err := s.orderRepository.GetAnalyticsData(ctx)
	if err != nil {
		return nil, nil, util.LogError("[AnalyticsService] не удалось получить сводную аналитику", err)
	}

	endDate := time.Now()
	startDate := endDate.Add(-7 * 24 * time.Hour)

	dailySales, err := s.orderRepository.GetDailySales(ctx, startDate, endDate)
	if err != nil {
		return nil, nil, util.LogError("[AnalyticsService] не удалось получить продажи по дням", err)
	}

	return data, dailySales, nil
}
