package home

import (
	"bytes"
	"log/slog"
	"testing"

	"bandacious/internal/catalog"
	"bandacious/internal/discovery"
	"bandacious/internal/geo"
	"bandacious/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestNewMapView(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithHandler(slog.NewTextHandler(&buf, nil))

	assert.Equal(t, MapKindPlaceholder, NewMapView(false, "key", log).Kind())
	assert.Equal(t, MapKindInteractive, NewMapView(true, "key", log).Kind())

	assert.Equal(t, MapKindPlaceholder, NewMapView(true, "", log).Kind())
	assert.Contains(t, buf.String(), "falling back to placeholder map")
}

func TestInteractiveMap_Render(t *testing.T) {
	venues := []discovery.VenueView{
		{Venue: catalog.Venue{ID: 3, Name: "Chelsea Bar", Lat: 51.53, Lon: -0.11}},
		{Venue: catalog.Venue{ID: 8, Name: "Deptford Stage", Lat: 51.52, Lon: -0.12}},
	}

	m := InteractiveMap{APIKey: "abc 123"}.Render(geo.London, venues)

	assert.Equal(t, MapKindInteractive, m.Kind)
	assert.Equal(t, "https://maps.googleapis.com/maps/api/js?key=abc+123&libraries=places", m.ScriptURL)
	assert.Equal(t, geo.London, m.Center)
	assert.Equal(t, 11, m.Zoom)
	assert.Equal(t, []Marker{
		{VenueID: 3, Title: "Chelsea Bar", Lat: 51.53, Lng: -0.11},
		{VenueID: 8, Title: "Deptford Stage", Lat: 51.52, Lng: -0.12},
	}, m.Markers)
}

func TestPlaceholderMap_Render(t *testing.T) {
	m := PlaceholderMap{}.Render(geo.London, nil)

	assert.Equal(t, MapKindPlaceholder, m.Kind)
	assert.Empty(t, m.ScriptURL)
	assert.Empty(t, m.Markers)
	assert.Equal(t, "Interactive map unavailable", m.Message)
}
