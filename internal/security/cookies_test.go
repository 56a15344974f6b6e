package security_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ecommerce-backend/internal/model"
	"ecommerce-backend/internal/security"

	"github.com/stretchr/testify/assert"
)

func findCookie(t *testing.T, cookies []*http.Cookie, name string) *http.Cookie {
	t.Helper()
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %s не найден", name)
	return nil
}

// 1. Атрибуты cookie в development: HttpOnly, SameSite strict, без Secure
func TestSetAuthCookies_Development(t *testing.T) {
	transport := security.NewCookieTransport("development", 15*time.Minute, 7*24*time.Hour)
	recorder := httptest.NewRecorder()

	transport.SetAuthCookies(recorder, &model.TokensPair{AccessToken: "acc", RefreshToken: "ref"})

	cookies := recorder.Result().Cookies()
	assert.Len(t, cookies, 2)

	access := findCookie(t, cookies, security.AccessTokenCookie)
	assert.Equal(t, "acc", access.Value)
	assert.Equal(t, 900, access.MaxAge)
	assert.True(t, access.HttpOnly)
	assert.False(t, access.Secure)
	assert.Equal(t, http.SameSiteStrictMode, access.SameSite)
	assert.Equal(t, "/", access.Path)

	refresh := findCookie(t, cookies, security.RefreshTokenCookie)
	assert.Equal(t, "ref", refresh.Value)
	assert.Equal(t, 604800, refresh.MaxAge)
	assert.True(t, refresh.HttpOnly)
}

// 2. В production включается Secure
func TestSetAuthCookies_ProductionSecure(t *testing.T) {
	transport := security.NewCookieTransport("production", 15*time.Minute, 7*24*time.Hour)
	recorder := httptest.NewRecorder()

	transport.SetAuthCookies(recorder, &model.TokensPair{AccessToken: "acc", RefreshToken: "ref"})

	for _, c := range recorder.Result().Cookies() {
		assert.True(t, c.Secure)
	}
}

// 3. ClearAuthCookies стирает оба cookie
func TestClearAuthCookies(t *testing.T) {
	transport := security.NewCookieTransport("development", 15*time.Minute, 7*24*time.Hour)
	recorder := httptest.NewRecorder()

	transport.ClearAuthCookies(recorder)

	cookies := recorder.Result().Cookies()
	assert.Len(t, cookies, 2)
	for _, c := range cookies {
		assert.Empty(t, c.Value)
		assert.Negative(t, c.MaxAge)
	}
}

// 4. Чтение токенов из запроса
func TestReadTokens(t *testing.T) {
	transport := security.NewCookieTransport("development", 15*time.Minute, 7*24*time.Hour)

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.AddCookie(&http.Cookie{Name: security.AccessTokenCookie, Value: "acc"})
	request.AddCookie(&http.Cookie{Name: security.RefreshTokenCookie, Value: "ref"})

	accessToken, ok := transport.ReadAccessToken(request)
	assert.True(t, ok)
	assert.Equal(t, "acc", accessToken)

	refreshToken, ok := transport.ReadRefreshToken(request)
	assert.True(t, ok)
	assert.Equal(t, "ref", refreshToken)
}

// 5. Отсутствующий cookie это absent, а не пустая строка с ok
func TestReadTokens_Absent(t *testing.T) {
	transport := security.NewCookieTransport("development", 15*time.Minute, 7*24*time.Hour)

	request := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := transport.ReadAccessToken(request)
	assert.False(t, ok)

	_, ok = transport.ReadRefreshToken(request)
	assert.False(t, ok)
}

// 6. Токены не читаются из заголовка Authorization
func TestReadAccessToken_NoHeaderFallback(t *testing.T) {
	transport := security.NewCookieTransport("development", 15*time.Minute, 7*24*time.Hour)

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Authorization", "Bearer acc")

	_, ok := transport.ReadAccessToken(request)
	assert.False(t, ok)
}
