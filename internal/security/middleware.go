package security

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"ecommerce-backend/internal/model"
	"ecommerce-backend/internal/ports"
	"ecommerce-backend/internal/util"
)

type contextKey string

const (
	UserContextKey contextKey = "user"
)

// Protect закрывает маршрут: проверяет access токен из cookie и кладёт
// пользователя (без хэша пароля) в context запроса.
//
// Порядок проверок:
//  1. нет cookie -> 401 UNAUTHORIZED_NO_TOKEN
//  2. токен просрочен -> 401 ACCESS_TOKEN_EXPIRED (клиент должен вызвать refresh,
//     middleware сам токены не обновляет)
//  3. токен невалиден -> 401 INVALID_TOKEN
//  4. ошибка обращения к БД -> 500 SERVER_ERROR
//  5. пользователь не найден -> 401 USER_NOT_FOUND
func Protect(jwtService ports.JWTServiceInterface, userRepository ports.UserRepository, cookies *CookieTransport) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accessToken, ok := cookies.ReadAccessToken(r)
			if !ok {
				util.HandleError(w, http.StatusUnauthorized, "UNAUTHORIZED_NO_TOKEN", "access токен не предоставлен")
				return
			}

			userUUID, err := jwtService.VerifyAccessToken(accessToken)
			if err != nil {
				if errors.Is(err, ErrTokenExpired) {
					util.HandleError(w, http.StatusUnauthorized, "ACCESS_TOKEN_EXPIRED", "access токен просрочен")
					return
				}
				log.Printf("невалидный access токен: %v", err)
				util.HandleError(w, http.StatusUnauthorized, "INVALID_TOKEN", "невалидный access токен")
				return
			}

			user, err := userRepository.FindByUUID(r.Context(), userUUID)
			if err != nil {
				log.Printf("ошибка поиска пользователя %s: %v", userUUID, err)
				util.HandleError(w, http.StatusInternalServerError, "SERVER_ERROR", "внутренняя ошибка сервера")
				return
			}
			if user == nil {
				util.HandleError(w, http.StatusUnauthorized, "USER_NOT_FOUND", "пользователь не найден")
				return
			}

			user.PasswordHash = ""

			req := r.WithContext(context.WithValue(r.Context(), UserContextKey, user))
			next.ServeHTTP(w, req)
		})
	}
}

// AdminOnly пускает дальше только пользователей с ролью admin.
// Ставится строго после Protect: пользователь уже должен лежать в context
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := GetUserFromContext(r.Context())
		if err != nil || user.Role != model.RoleAdmin {
			util.HandleError(w, http.StatusUnauthorized, "ADMIN_ONLY", "доступ только для администратора")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func GetUserFromContext(ctx context.Context) (*model.User, error) {
	user, ok := ctx.Value(UserContextKey).(*model.User)
	if !ok || user == nil {
		return nil, fmt.Errorf("пользователь не авторизован")
	}
	return user, nil
}
