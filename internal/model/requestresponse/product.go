package requestresponse

import "ecommerce-backend/internal/model"

// CreateProductRequest : тело запроса на создание товара
type CreateProductRequest struct {
	Name        string  `json:"name" example:"T-shirt"`
	Description string  `json:"description" example:"Cotton t-shirt"`
	Price       float64 `json:"price" example:"19.99"`
	Category    string  `json:"category" example:"clothes"`

	// Изображение в формате data URL (data:image/png;base64,...)
	Image string `json:"image,omitempty"`
}

// ProductsResponse : список товаров
type ProductsResponse struct {
	Products []model.Product `json:"products"`
}
