package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"ecommerce-backend/internal/model"
	"ecommerce-backend/internal/model/requestresponse"
	"ecommerce-backend/internal/ports"
	"ecommerce-backend/internal/security"
	"ecommerce-backend/internal/service"
	"ecommerce-backend/internal/util"

	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	ports.CartService
}

func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService}
}

// GetCartProducts godoc
// @Summary Содержимое корзины
// @Tags Cart
// @Produce json
// @Success 200 {object} requestresponse.CartResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/cart [get]
func (h *CartHandler) GetCartProducts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		util.HandleError(w, http.StatusUnauthorized, "UNAUTHORIZED", "не авторизован")
		return
	}

	items, err := h.CartService.GetCartProducts(r.Context(), user.UUID)
	if err != nil {
		log.Println(err)
		util.HandleError(w, http.StatusInternalServerError, "SERVER_ERROR", "внутренняя ошибка сервера")
		return
	}

	writeCart(w, http.StatusOK, items)
}

// AddToCart godoc
// @Summary Добавление товара в корзину
// @Description Повторное добавление того же товара увеличивает количество
// @Tags Cart
// @Accept json
// @Produce json
// @Param body body requestresponse.AddToCartRequest true "Тело запроса"
// @Success 200 {object} requestresponse.CartResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/cart [post]
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		util.HandleError(w, http.StatusUnauthorized, "UNAUTHORIZED", "не авторизован")
		return
	}

	var req requestresponse.AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		util.HandleError(w, http.StatusBadRequest, "BAD_REQUEST", "productId обязателен")
		return
	}

	items, err := h.CartService.AddToCart(r.Context(), user.UUID, req.ProductID)
	if err != nil {
		log.Println(err)
		if errors.Is(err, service.ErrProductNotFound) {
			util.HandleError(w, http.StatusNotFound, "PRODUCT_NOT_FOUND", "товар не найден")
		} else {
			util.HandleError(w, http.StatusInternalServerError, "SERVER_ERROR", "внутренняя ошибка сервера")
		}
		return
	}

	writeCart(w, http.StatusOK, items)
}

// RemoveFromCart godoc
// @Summary Удаление позиции корзины
// @Tags Cart
// @Accept json
// @Produce json
// @Param body body requestresponse.RemoveFromCartRequest true "Тело запроса"
// @Success 200 {object} requestresponse.CartResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/cart [delete]
func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		util.HandleError(w, http.StatusUnauthorized, "UNAUTHORIZED", "не авторизован")
		return
	}

	var req requestresponse.RemoveFromCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		util.HandleError(w, http.StatusBadRequest, "BAD_REQUEST", "productId обязателен")
		return
	}

	items, err := h.CartService.RemoveFromCart(r.Context(), user.UUID, req.ProductID)
	if err != nil {
		log.Println(err)
		util.HandleError(w, http.StatusInternalServerError, "SERVER_ERROR", "внутренняя ошибка сервера")
		return
	}

	writeCart(w, http.StatusOK, items)
}

// UpdateQuantity godoc
// @Summary Изменение количества позиции
// @Description Нулевое количество удаляет позицию из корзины
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "UUID товара"
// @Param body body requestresponse.UpdateQuantityRequest true "Тело запроса"
// @Success 200 {object} requestresponse.CartResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/cart/{id} [put]
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		util.HandleError(w, http.StatusUnauthorized, "UNAUTHORIZED", "не авторизован")
		return
	}

	productUUID := chi.URLParam(r, "id")

	var req requestresponse.UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.HandleError(w, http.StatusBadRequest, "BAD_REQUEST", "некорректный JSON")
		return
	}

	items, err := h.CartService.UpdateQuantity(r.Context(), user.UUID, productUUID, req.Quantity)
	if err != nil {
		log.Println(err)
		util.HandleError(w, http.StatusInternalServerError, "SERVER_ERROR", "внутренняя ошибка сервера")
		return
	}

	writeCart(w, http.StatusOK, items)
}

// ClearCart godoc
// @Summary Очистка корзины
// @Tags Cart
// @Produce json
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/cart/clear [delete]
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		util.HandleError(w, http.StatusUnauthorized, "UNAUTHORIZED", "не авторизован")
		return
	}

	if err := h.CartService.ClearCart(r.Context(), user.UUID); err != nil {
		log.Println(err)
		util.HandleError(w, http.StatusInternalServerError, "SERVER_ERROR", "внутренняя ошибка сервера")
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(requestresponse.MessageResponse{Message: "корзина очищена"})
}

func writeCart(w http.ResponseWriter, status int, items []model.CartProduct) {
	if items == nil {
		items = []model.CartProduct{}
	}

	w.WriteHeader(status)
	json.NewEncoder(w).Encode(requestresponse.CartResponse{CartItems: items})
}
