package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"ecommerce-backend/internal/model/requestresponse"
	"ecommerce-backend/internal/ports"
	"ecommerce-backend/internal/security"
	"ecommerce-backend/internal/service"
	"ecommerce-backend/internal/util"
)

type CouponHandler struct {
	ports.CouponService
}

func NewCouponHandler(couponService *service.CouponService) *CouponHandler {
	return &CouponHandler{couponService}
}

// GetCoupon godoc
// @Summary Активный купон пользователя
// @Description Возвращает null, если активного купона нет
// @Tags Coupons
// @Produce json
// @Success 200 {object} model.Coupon
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/coupons [get]
func (h *CouponHandler) GetCoupon(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		util.HandleError(w, http.StatusUnauthorized, "UNAUTHORIZED", "не авторизован")
		return
	}

	coupon, err := h.CouponService.GetCoupon(r.Context(), user.UUID)
	if err != nil {
		log.Println(err)
		util.HandleError(w, http.StatusInternalServerError, "SERVER_ERROR", "внутренняя ошибка сервера")
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(coupon)
}

// ValidateCoupon godoc
// @Summary Проверка купона по коду
// @Description Просроченный купон деактивируется при проверке
// @Tags Coupons
// @Accept json
// @Produce json
// @Param body body requestresponse.ValidateCouponRequest true "Тело запроса"
// @Success 200 {object} requestresponse.ValidateCouponResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/coupons/validate [post]
func (h *CouponHandler) ValidateCoupon(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		util.HandleError(w, http.StatusUnauthorized, "UNAUTHORIZED", "не авторизован")
		return
	}

	var req requestresponse.ValidateCouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		util.HandleError(w, http.StatusBadRequest, "BAD_REQUEST", "code обязателен")
		return
	}

	coupon, err := h.CouponService.ValidateCoupon(r.Context(), user.UUID, req.Code)
	if err != nil {
		log.Println(err)
		switch {
		case errors.Is(err, service.ErrCouponNotFound):
			util.HandleError(w, http.StatusNotFound, "COUPON_NOT_FOUND", "купон не найден")
		case errors.Is(err, service.ErrCouponExpired):
			util.HandleError(w, http.StatusNotFound, "COUPON_EXPIRED", "купон просрочен")
		default:
			util.HandleError(w, http.StatusInternalServerError, "SERVER_ERROR", "внутренняя ошибка сервера")
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(requestresponse.ValidateCouponResponse{
		Message:            "купон действителен",
		Code:               coupon.Code,
		DiscountPercentage: coupon.DiscountPercentage,
	})
}
