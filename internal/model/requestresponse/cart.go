package requestresponse

import "ecommerce-backend/internal/model"

// AddToCartRequest : тело запроса на добавление товара в корзину
type AddToCartRequest struct {
	ProductID string `json:"productId" example:"b6a1e1c4-4b1d-4f1e-8b29-1234567890ab"`
}

// RemoveFromCartRequest : тело запроса на удаление позиции корзины
type RemoveFromCartRequest struct {
	ProductID string `json:"productId" example:"b6a1e1c4-4b1d-4f1e-8b29-1234567890ab"`
}

// UpdateQuantityRequest : тело запроса на изменение количества
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" example:"2"`
}

// CartResponse : содержимое корзины
type CartResponse struct {
	CartItems []model.CartProduct `json:"cartItems"`
}
