package requestresponse

// SignupRequest : тело запроса на регистрацию
type SignupRequest struct {
	Name     string `json:"name" example:"Ivan"`
	Email    string `json:"email" example:"ivan@example.com"`
	Password string `json:"password" example:"P@ssw0rd123"`
}

// LoginRequest : тело запроса на аутентификацию
type LoginRequest struct {
	Email    string `json:"email" example:"ivan@example.com"`
	Password string `json:"password" example:"P@ssw0rd123"`
}

// UserResponse : публичные поля пользователя (без хэша пароля)
type UserResponse struct {
	ID    string `json:"id" example:"b6a1e1c4-4b1d-4f1e-8b29-1234567890ab"`
	Name  string `json:"name" example:"Ivan"`
	Email string `json:"email" example:"ivan@example.com"`
	Role  string `json:"role" example:"customer"`
}

// MessageResponse : ответ с одним сообщением
type MessageResponse struct {
	Message string `json:"message" example:"токены успешно обновлены"`
}

// ErrorDetail : детальная информация об ошибке
type ErrorDetail struct {
	Code    string `json:"code" example:"INVALID_CREDENTIALS"`
	Message string `json:"message" example:"неверный email или пароль"`
}

// ErrorResponse : стандартная структура ошибки
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
