package security

import (
	"net/http"
	"time"

	"ecommerce-backend/internal/model"
)

const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// CookieTransport кладёт токены в HttpOnly cookie со строгим SameSite.
// Secure выставляется только в production окружении
type CookieTransport struct {
	secure        bool
	accessMaxAge  int
	refreshMaxAge int
}

func NewCookieTransport(environment string, accessTTL, refreshTTL time.Duration) *CookieTransport {
	return &CookieTransport{
		secure:        environment == "production",
		accessMaxAge:  int(accessTTL.Seconds()),
		refreshMaxAge: int(refreshTTL.Seconds()),
	}
}

// SetAuthCookies записывает оба токена в ответ
func (t *CookieTransport) SetAuthCookies(w http.ResponseWriter, tokens *model.TokensPair) {
	t.SetAccessCookie(w, tokens.AccessToken)
	http.SetCookie(w, t.cookie(RefreshTokenCookie, tokens.RefreshToken, t.refreshMaxAge))
}

// SetAccessCookie обновляет только access cookie (используется при refresh)
func (t *CookieTransport) SetAccessCookie(w http.ResponseWriter, accessToken string) {
	http.SetCookie(w, t.cookie(AccessTokenCookie, accessToken, t.accessMaxAge))
}

// ClearAuthCookies стирает оба cookie (используется при logout)
func (t *CookieTransport) ClearAuthCookies(w http.ResponseWriter) {
	http.SetCookie(w, t.cookie(AccessTokenCookie, "", -1))
	http.SetCookie(w, t.cookie(RefreshTokenCookie, "", -1))
}

// ReadAccessToken читает access токен только из cookie, без fallback на заголовки
func (t *CookieTransport) ReadAccessToken(r *http.Request) (string, bool) {
	return readCookie(r, AccessTokenCookie)
}

func (t *CookieTransport) ReadRefreshToken(r *http.Request) (string, bool) {
	return readCookie(r, RefreshTokenCookie)
}

func (t *CookieTransport) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   t.secure,
		SameSite: http.SameSiteStrictMode,
	}
}

func readCookie(r *http.Request, name string) (string, bool) {
	cookie, err := r.Cookie(name)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}
