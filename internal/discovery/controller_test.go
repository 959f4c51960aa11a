package discovery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bandacious/internal/catalog"
	"bandacious/internal/geo"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status     string          `json:"status"`
	StatusCode int             `json:"status_code"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Errors     json.RawMessage `json:"errors"`
}

func setupRouter(store *catalog.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := NewService(store, geo.London)
	SetupDiscoveryRoutes(r.Group("/api/v1"), NewController(svc, DefaultDefaults()))
	return r
}

func doGet(t *testing.T, r *gin.Engine, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestController_ListEvents(t *testing.T) {
	r := setupRouter(newSampleStore(t))

	w, body := doGet(t, r, "/api/v1/events?free_only=true")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", body.Status)

	var data EventListResponse
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.Equal(t, 8, data.Total)
	assert.Equal(t, []int{1, 2, 5, 7, 9, 10, 16, 20}, eventIDs(data.Events))
}

func TestController_ListEvents_EmptyResult(t *testing.T) {
	r := setupRouter(newSampleStore(t))

	w, body := doGet(t, r, "/api/v1/events?q=nobody+plays+here")
	require.Equal(t, http.StatusOK, w.Code)

	var data EventListResponse
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.Equal(t, 0, data.Total)
	assert.NotNil(t, data.Events)
	assert.Contains(t, string(body.Data), `"events":[]`)
}

func TestController_ListEvents_InvalidFilter(t *testing.T) {
	r := setupRouter(newSampleStore(t))

	w, body := doGet(t, r, "/api/v1/events?start_date=tomorrow")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, "Invalid filter value", body.Message)

	var details map[string]string
	require.NoError(t, json.Unmarshal(body.Errors, &details))
	assert.Equal(t, "start_date", details["field"])
	assert.Equal(t, "tomorrow", details["value"])
}

func TestController_GetEvent(t *testing.T) {
	r := setupRouter(newSampleStore(t))

	w, body := doGet(t, r, "/api/v1/events/5")
	require.Equal(t, http.StatusOK, w.Code)

	var ev EventView
	require.NoError(t, json.Unmarshal(body.Data, &ev))
	assert.Equal(t, "Greenwich Stage", ev.Venue.Name)
	assert.Equal(t, "Electric Beats", ev.Artist.Name)

	w, _ = doGet(t, r, "/api/v1/events/500")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doGet(t, r, "/api/v1/events/abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestController_PopularVenues(t *testing.T) {
	r := setupRouter(newSampleStore(t))

	w, body := doGet(t, r, "/api/v1/popular/venues?limit=1")
	require.Equal(t, http.StatusOK, w.Code)

	var venues []VenueView
	require.NoError(t, json.Unmarshal(body.Data, &venues))
	require.Len(t, venues, 1)
	assert.Equal(t, 22, venues[0].ID)
	assert.Equal(t, 4, venues[0].UpcomingCount)

	w, _ = doGet(t, r, "/api/v1/popular/venues?limit=-2")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestController_ListVenuesAndArtists(t *testing.T) {
	r := setupRouter(newSampleStore(t))

	w, body := doGet(t, r, "/api/v1/venues?q=hall&distance=3")
	require.Equal(t, http.StatusOK, w.Code)
	var venues VenueListResponse
	require.NoError(t, json.Unmarshal(body.Data, &venues))
	require.Equal(t, 1, venues.Total)
	assert.Equal(t, "Hackney Hall", venues.Venues[0].Name)

	w, body = doGet(t, r, "/api/v1/artists?q=beats")
	require.Equal(t, http.StatusOK, w.Code)
	var artists ArtistListResponse
	require.NoError(t, json.Unmarshal(body.Data, &artists))
	require.Equal(t, 1, artists.Total)
	assert.Equal(t, "Electric Beats", artists.Artists[0].Name)
}

func TestController_CatalogNotLoaded(t *testing.T) {
	r := setupRouter(catalog.NewStore(nil))

	w, _ := doGet(t, r, "/api/v1/genres")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
