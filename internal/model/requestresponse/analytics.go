package requestresponse

import "ecommerce-backend/internal/model"

// AnalyticsResponse : сводная аналитика и продажи по дням
type AnalyticsResponse struct {
	AnalyticsData  model.AnalyticsData `json:"analyticsData"`
	DailySalesData []model.DailySales  `json:"dailySalesData"`
}
