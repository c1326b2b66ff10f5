package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"loja/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, secret string, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": "11111111-1111-1111-1111-111111111111",
		"email":   "admin@loja.com",
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func setupProtected() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protegida", middleware.JWTAuth(testSecret), func(c *gin.Context) {
		claims := middleware.GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"email": claims.Email})
	})
	return r
}

func doGet(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth_TokenValido(t *testing.T) {
	r := setupProtected()
	w := doGet(r, "Bearer "+signToken(t, testSecret, time.Hour))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin@loja.com")
}

func TestJWTAuth_SemHeader(t *testing.T) {
	r := setupProtected()
	w := doGet(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_TokenExpirado(t *testing.T) {
	r := setupProtected()
	w := doGet(r, "Bearer "+signToken(t, testSecret, -time.Hour))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_AssinaturaErrada(t *testing.T) {
	r := setupProtected()
	w := doGet(r, "Bearer "+signToken(t, "outro-secret", time.Hour))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequestID_GeraQuandoAusente(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRequestID_PreservaInbound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}
