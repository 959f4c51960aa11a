package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, cfg := newTestService(t)
	r := gin.New()
	SetupAuthRoutes(r.Group("/api/v1"), NewController(svc), cfg)
	return r
}

func postJSON(r *gin.Engine, target string, body interface{}) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestController_LoginAndMe(t *testing.T) {
	r := setupRouter(t)

	w := postJSON(r, "/api/v1/auth/login", LoginRequest{Username: "admin", Password: testPassword})
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data AuthResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Data.AccessToken)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+body.Data.AccessToken)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"admin"`)
	assert.Contains(t, w.Body.String(), `"role":"ADMIN"`)
}

func TestController_LoginRejected(t *testing.T) {
	r := setupRouter(t)

	w := postJSON(r, "/api/v1/auth/login", LoginRequest{Username: "admin", Password: "not-the-password"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postJSON(r, "/api/v1/auth/login", map[string]string{"username": "admin"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
