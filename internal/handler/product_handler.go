package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"ecommerce-backend/internal/model"
	"ecommerce-backend/internal/model/requestresponse"
	"ecommerce-backend/internal/ports"
	"ecommerce-backend/internal/service"
	"ecommerce-backend/internal/util"

	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	ports.ProductService
}

func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService}
}

// ListProducts godoc
// @Summary Все товары каталога
// @Tags Products
// @Produce json
// @Success 200 {object} requestresponse.ProductsResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/products [get]
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	products, err := h.ProductService.GetAllProducts(r.Context())
	if err != nil {
		log.Println(err)
		util.HandleError(w, http.StatusInternalServerError, "SERVER_ERROR", "внутренняя ошибка сервера")
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(requestresponse.ProductsResponse{Products: products})
}

// GetFeaturedProducts godoc
// @Summary Featured товары
// @Description Отдаёт подборку из Redis кэша, при промахе читает БД
// @Tags Products
// @Produce json
// @Success 200 {array} model.Product
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/products/featured [get]
func (h *ProductHandler) GetFeaturedProducts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	products, err := h.ProductService.GetFeaturedProducts(r.Context())
	if err != nil {
		log.Println(err)
		util.HandleError(w, http.StatusInternalServerError, "SERVER_ERROR", "внутренняя ошибка сервера")
		return
	}

	if products == nil {
		products = []model.Product{}
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(products)
}

// GetProductsByCategory godoc
// @Summary Товары категории
// @Tags Products
// @Produce json
// @Param category path string true "Категория"
// @Success 200 {object} requestresponse.ProductsResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/products/category/{category} [get]
func (h *ProductHandler) GetProductsByCategory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	category := chi.URLParam(r, "category")

	products, err := h.ProductService.GetProductsByCategory(r.Context(), category)
	if err != nil {
		log.Println(err)
		util.HandleError(w, http.StatusInternalServerError, "SERVER_ERROR", "внутренняя ошибка сервера")
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(requestresponse.ProductsResponse{Products: products})
}

// GetRecommendedProducts godoc
// @Summary Рекомендованные товары
// @Description Случайная выборка из четырёх товаров
// @Tags Products
// @Produce json
// @Success 200 {array} model.Product
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/products/recommendations [get]
func (h *ProductHandler) GetRecommendedProducts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	products, err := h.ProductService.GetRecommendedProducts(r.Context())
	if err != nil {
		log.Println(err)
		util.HandleError(w, http.StatusInternalServerError, "SERVER_ERROR", "внутренняя ошибка сервера")
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(products)
}

// CreateProduct godoc
// @Summary Создание товара
// @Description Доступно только администратору. Изображение передаётся data URL-ом
// и загружается в S3
// @Tags Products
// @Accept json
// @Produce json
// @Param body body requestresponse.CreateProductRequest true "Тело запроса"
// @Success 201 {object} model.Product
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/products [post]
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req requestresponse.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.HandleError(w, http.StatusBadRequest, "BAD_REQUEST", "некорректный JSON")
		return
	}

	if req.Name == "" || req.Price <= 0 {
		util.HandleError(w, http.StatusBadRequest, "BAD_REQUEST", "name и положительный price обязательны")
		return
	}

	product := &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
	}

	created, err := h.ProductService.CreateProduct(r.Context(), product, req.Image)
	if err != nil {
		log.Println(err)
		util.HandleError(w, http.StatusInternalServerError, "SERVER_ERROR", "внутренняя ошибка сервера")
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// DeleteProduct godoc
// @Summary Удаление товара
// @Description Доступно только администратору, изображение удаляется из S3
// @Tags Products
// @Produce json
// @Param id path string true "UUID товара"
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/products/{id} [delete]
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	productUUID := chi.URLParam(r, "id")

	if err := h.ProductService.DeleteProduct(r.Context(), productUUID); err != nil {
		log.Println(err)
		if errors.Is(err, service.ErrProductNotFound) {
			util.HandleError(w, http.StatusNotFound, "PRODUCT_NOT_FOUND", "товар не найден")
		} else {
			util.HandleError(w, http.StatusInternalServerError, "SERVER_ERROR", "внутренняя ошибка сервера")
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(requestresponse.MessageResponse{Message: "товар успешно удалён"})
}

// ToggleFeaturedProduct godoc
// @Summary Переключение флага featured
// @Description Доступно только администратору, кэш подборки обновляется сразу
// @Tags Products
// @Produce json
// @Param id path string true "UUID товара"
// @Success 200 {object} model.Product
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/products/{id} [patch]
func (h *ProductHandler) ToggleFeaturedProduct(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	productUUID := chi.URLParam(r, "id")

	product, err := h.ProductService.ToggleFeaturedProduct(r.Context(), productUUID)
	if err != nil {
		log.Println(err)
		if errors.Is(err, service.ErrProductNotFound) {
			util.HandleError(w, http.StatusNotFound, "PRODUCT_NOT_FOUND", "товар не найден")
		} else {
			util.HandleError(w, http.StatusInternalServerError, "SERVER_ERROR", "внутренняя ошибка сервера")
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(product)
}
