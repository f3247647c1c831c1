package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/JOHNMAVERICK23/event-venue-booking-system/internal/auth"
	"github.com/JOHNMAVERICK23/event-venue-booking-system/internal/domain"
)

func setupAuthRouter(t *testing.T, tokens *auth.TokenManager) http.Handler {
	t.Helper()
	r := ginext.New("test")
	r.GET("/admin", Auth(tokens), func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"ok": true})
	})
	return r
}

func TestAuth_MissingToken(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	r := setupAuthRouter(t, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_MalformedHeader(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	r := setupAuthRouter(t, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	r := setupAuthRouter(t, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuth_ExpiredToken(t *testing.T) {
	issuer := auth.NewTokenManager("test-secret", -time.Minute)
	verifier := auth.NewTokenManager("test-secret", time.Hour)
	r := setupAuthRouter(t, verifier)

	token, err := issuer.Issue(&domain.User{ID: 1, Username: "admin"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuth_ValidToken(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	r := setupAuthRouter(t, tokens)

	token, err := tokens.Issue(&domain.User{ID: 1, Username: "admin", Role: "admin"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
