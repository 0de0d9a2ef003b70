package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func guardedRouter(issuer *Issuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Middleware(issuer), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(PrincipalID)+" "+c.GetString(PrincipalEmail))
	})
	return r
}

func TestMiddleware_MissingToken(t *testing.T) {
	r := guardedRouter(NewIssuer("test-secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No token provided")
}

func TestMiddleware_InvalidToken(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	r := guardedRouter(issuer)

	token, err := NewIssuer("other-secret", time.Hour).Sign("id", "a@b.c")
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token is not valid")
}

func TestMiddleware_ValidToken(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	r := guardedRouter(issuer)

	token, err := issuer.Sign("abc123", "doc@example.com")
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc123 doc@example.com", w.Body.String())
}
