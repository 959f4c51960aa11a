package calendar

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bandacious/internal/catalog"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, err := catalog.Sample()
	require.NoError(t, err)
	store := catalog.NewStore(&catalog.Snapshot{Catalog: c, Source: "builtin"})

	r := gin.New()
	svc := NewService(store, newTestExporter())
	SetupCalendarRoutes(r.Group("/api/v1"), NewController(svc, "/api/v1"))
	return r
}

func TestController_DownloadICS(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events/5/calendar.ics", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/calendar; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=Live_Gig_5.ics", w.Header().Get("Content-Disposition"))
	assert.Equal(t, strings.Count(w.Body.String(), "\n"), strings.Count(w.Body.String(), "\r\n"))
	assert.Contains(t, w.Body.String(), "UID:5@bandacious.com")
	assert.Contains(t, w.Body.String(), "DTSTART:20251002T000000Z")
}

func TestController_DownloadICS_NotFound(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events/77/calendar.ics", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestController_GetCalendarLink(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events/1/calendar-link", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data CalendarLinkResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Data.EventID)
	assert.Equal(t, "/api/v1/events/1/calendar.ics", body.Data.ICSURL)
	assert.Contains(t, body.Data.GoogleURL, "action=TEMPLATE")
}

func TestController_InvalidID(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events/one/calendar-link", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
