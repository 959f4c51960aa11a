package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bandacious/internal/shared/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newAdminRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JWT: config.JWTConfig{Secret: testSecret}}

	r := gin.New()
	r.GET("/admin", JWTAuthWithConfig(cfg), RequireAdmin(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextUsername))
	})
	return r
}

func TestJWTAuth(t *testing.T) {
	exp := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "missing header", header: "", want: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Token abc", want: http.StatusUnauthorized},
		{
			name:   "bad signature",
			header: "Bearer " + signToken(t, jwt.MapClaims{"type": "access", "role": RoleAdmin, "exp": exp}, "other"),
			want:   http.StatusUnauthorized,
		},
		{
			name:   "refresh token rejected",
			header: "Bearer " + signToken(t, jwt.MapClaims{"type": "refresh", "role": RoleAdmin, "exp": exp}, testSecret),
			want:   http.StatusUnauthorized,
		},
		{
			name:   "expired",
			header: "Bearer " + signToken(t, jwt.MapClaims{"type": "access", "role": RoleAdmin, "exp": time.Now().Add(-time.Minute).Unix()}, testSecret),
			want:   http.StatusUnauthorized,
		},
		{
			name:   "not an admin",
			header: "Bearer " + signToken(t, jwt.MapClaims{"type": "access", "role": "VIEWER", "exp": exp}, testSecret),
			want:   http.StatusForbidden,
		},
		{
			name:   "admin",
			header: "Bearer " + signToken(t, jwt.MapClaims{"type": "access", "role": RoleAdmin, "username": "admin", "exp": exp}, testSecret),
			want:   http.StatusOK,
		},
	}

	r := newAdminRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextRequestID))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(HeaderRequestID)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
}
