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
)

type AuthenticationHandler struct {
	ports.AuthenticationService
	cookies *security.CookieTransport
}

func NewAuthenticationHandler(
	authenticationService *service.AuthenticationService,
	cookies *security.CookieTransport,
) *AuthenticationHandler {
	return &AuthenticationHandler{
		authenticationService,
		cookies,
	}
}

// Signup godoc
// @Summary Регистрация пользователя
// @Description Создаёт пользователя, открывает сессию и ставит auth cookie
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.SignupRequest true "Тело запроса"
// @Success 201 {object} requestresponse.UserResponse "Пользователь создан"
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный JSON или email уже занят"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/auth/signup [post]
func (h *AuthenticationHandler) Signup(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	var req requestresponse.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.HandleError(w, http.StatusBadRequest, "BAD_REQUEST", "некорректный JSON")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		util.HandleError(w, http.StatusBadRequest, "BAD_REQUEST", "name, email и password обязательны")
		return
	}

	user, tokens, err := h.AuthenticationService.Signup(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		log.Println(err)
		if errors.Is(err, service.ErrUserExists) {
			util.HandleError(w, http.StatusBadRequest, "USER_EXISTS", "пользователь уже существует")
		} else {
			util.HandleError(w, http.StatusInternalServerError, "SERVER_ERROR", "внутренняя ошибка сервера")
		}
		return
	}

	h.cookies.SetAuthCookies(w, tokens)

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(userResponse(user))
}

// Login godoc
// @Summary Аутентификация пользователя
// @Description Проверяет email и пароль, открывает сессию и ставит auth cookie
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.LoginRequest true "Тело запроса"
// @Success 200 {object} requestresponse.UserResponse "Успешная аутентификация"
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный JSON или пустые поля"
// @Failure 401 {object} requestresponse.ErrorResponse "Неверный email или пароль"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/auth/login [post]
func (h *AuthenticationHandler) Login(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	var req requestresponse.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.HandleError(w, http.StatusBadRequest, "BAD_REQUEST", "некорректный JSON")
		return
	}

	if req.Email == "" || req.Password == "" {
		util.HandleError(w, http.StatusBadRequest, "BAD_REQUEST", "email и password обязательны")
		return
	}

	user, tokens, err := h.AuthenticationService.Login(ctx, req.Email, req.Password)
	if err != nil {
		log.Println(err)
		if errors.Is(err, service.ErrInvalidCredentials) {
			util.HandleError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "неверный email или пароль")
		} else {
			util.HandleError(w, http.StatusInternalServerError, "SERVER_ERROR", "внутренняя ошибка сервера")
		}
		return
	}

	h.cookies.SetAuthCookies(w, tokens)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(userResponse(user))
}

// Logout godoc
// @Summary Завершение сессии
// @Description Удаляет запись сессии и стирает auth cookie. Отвечает 200 даже
// без refresh cookie: выйти можно всегда
// @Tags Authentication
// @Produce json
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/auth/logout [post]
func (h *AuthenticationHandler) Logout(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	if refreshToken, ok := h.cookies.ReadRefreshToken(r); ok {
		if err := h.AuthenticationService.Logout(ctx, refreshToken); err != nil {
			log.Println(err)
			util.HandleError(w, http.StatusInternalServerError, "SERVER_ERROR", "внутренняя ошибка сервера")
			return
		}
	}

	h.cookies.ClearAuthCookies(w)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(requestresponse.MessageResponse{Message: "выход выполнен"})
}

// RefreshToken godoc
// @Summary Обновление access токена
// @Description Выпускает новый access токен по refresh cookie и обновляет
// access cookie. Refresh токен при этом не перевыпускается
// @Tags Authentication
// @Produce json
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 401 {object} requestresponse.ErrorResponse "Refresh токен отсутствует или невалиден"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/auth/refresh [post]
func (h *AuthenticationHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	refreshToken, ok := h.cookies.ReadRefreshToken(r)
	if !ok {
		util.HandleError(w, http.StatusUnauthorized, "NO_REFRESH_TOKEN", "refresh токен не предоставлен")
		return
	}

	accessToken, err := h.AuthenticationService.RefreshAccessToken(ctx, refreshToken)
	if err != nil {
		log.Println(err)
		if errors.Is(err, service.ErrInvalidRefreshToken) {
			util.HandleError(w, http.StatusUnauthorized, "INVALID_REFRESH_TOKEN", "невалидный refresh токен")
		} else {
			util.HandleError(w, http.StatusInternalServerError, "SERVER_ERROR", "внутренняя ошибка сервера")
		}
		return
	}

	h.cookies.SetAccessCookie(w, accessToken)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(requestresponse.MessageResponse{Message: "токен успешно обновлён"})
}

// GetProfile godoc
// @Summary Профиль текущего пользователя
// @Description Возвращает пользователя, загруженного middleware-ом, без хэша пароля
// @Tags Authentication
// @Produce json
// @Success 200 {object} requestresponse.UserResponse
// @Failure 401 {object} requestresponse.ErrorResponse "Не авторизован"
// @Router /api/auth/profile [get]
func (h *AuthenticationHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		util.HandleError(w, http.StatusUnauthorized, "UNAUTHORIZED", "не авторизован")
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(userResponse(user))
}

func userResponse(user *model.User) requestresponse.UserResponse {
	return requestresponse.UserResponse{
		ID:    user.UUID,
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	}
}
