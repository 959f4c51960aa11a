package admin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bandacious/internal/catalog"
	"bandacious/internal/shared/config"
	"bandacious/internal/shared/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "admin-test-secret"

type MockReloader struct {
	mock.Mock
}

func (m *MockReloader) Reload(ctx context.Context) (*catalog.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Snapshot), args.Error(1)
}

func token(t *testing.T, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"username": "admin",
		"role":     role,
		"type":     "access",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func setup(t *testing.T, reloader Reloader, store *catalog.Store) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{JWT: config.JWTConfig{Secret: testSecret}}
	r := gin.New()
	SetupAdminRoutes(r.Group("/api/v1"), NewController(reloader, store), cfg)
	return r
}

func do(r *gin.Engine, method, target, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sampleSnapshot(t *testing.T) *catalog.Snapshot {
	c, err := catalog.Sample()
	require.NoError(t, err)
	return &catalog.Snapshot{Catalog: c, Source: "builtin", LoadedAt: time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC)}
}

func TestCatalogStatus(t *testing.T) {
	snap := sampleSnapshot(t)
	r := setup(t, &MockReloader{}, catalog.NewStore(snap))

	w := do(r, http.MethodGet, "/api/v1/admin/catalog/status", token(t, middleware.RoleAdmin))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data CatalogStatusResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Data.Loaded)
	assert.Equal(t, snap.Catalog.Version(), body.Data.Version)
	assert.Equal(t, "builtin", body.Data.Source)
	assert.Equal(t, snap.Catalog.Stats(), body.Data.Stats)
}

func TestCatalogStatus_NotLoaded(t *testing.T) {
	r := setup(t, &MockReloader{}, catalog.NewStore(nil))

	w := do(r, http.MethodGet, "/api/v1/admin/catalog/status", token(t, middleware.RoleAdmin))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"loaded":false`)
}

func TestAdminRoutes_RequireAdmin(t *testing.T) {
	r := setup(t, &MockReloader{}, catalog.NewStore(nil))

	w := do(r, http.MethodPost, "/api/v1/admin/catalog/reload", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodPost, "/api/v1/admin/catalog/reload", token(t, "VIEWER"))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestReloadCatalog(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "success", wantStatus: http.StatusOK},
		{
			name:       "integrity failure",
			err:        fmt.Errorf("reload catalog from file: %w", &catalog.DataIntegrityError{Entity: "event", ID: 3, Reason: "unknown venue 99"}),
			wantStatus: http.StatusUnprocessableEntity,
		},
		{name: "source failure", err: errors.New("connection refused"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reloader := &MockReloader{}
			if tt.err != nil {
				reloader.On("Reload", mock.Anything).Return(nil, tt.err)
			} else {
				reloader.On("Reload", mock.Anything).Return(sampleSnapshot(t), nil)
			}

			r := setup(t, reloader, catalog.NewStore(nil))
			w := do(r, http.MethodPost, "/api/v1/admin/catalog/reload", token(t, middleware.RoleAdmin))

			assert.Equal(t, tt.wantStatus, w.Code)
			reloader.AssertExpectations(t)
		})
	}
}
