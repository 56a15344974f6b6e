package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"ecommerce-backend/internal/model/requestresponse"
	"ecommerce-backend/internal/ports"
	"ecommerce-backend/internal/service"
	"ecommerce-backend/internal/util"
)

type AnalyticsHandler struct {
	ports.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService}
}

// GetAnalytics godoc
// @Summary Аналитика магазина
// @Description Доступно только администратору: сводные показатели и продажи
// по дням за последнюю неделю
// @Tags Analytics
// @Produce json
// @Success 200 {object} requestresponse.AnalyticsResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/analytics [get]
func (h *AnalyticsHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	data, dailySales, err := h.AnalyticsService.GetAnalytics(r.Context())
	if err != nil {
		log.Println(err)
		util.HandleError(w, http.StatusInternalServerError, "SERVER_ERROR", "внутренняя ошибка сервера")
		return
	}

	resp := requestresponse.AnalyticsResponse{
		AnalyticsData:  *data,
		DailySalesData: dailySales,
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}
