package home

import (
	"net/url"

	"bandacious/internal/discovery"
	"bandacious/internal/geo"
	"bandacious/pkg/logger"
)

const (
	MapKindInteractive = "interactive"
	MapKindPlaceholder = "placeholder"

	googleMapsScriptURL = "https://maps.googleapis.com/maps/api/js"
	defaultMapZoom      = 11
)

// Marker is a venue pin.
type Marker struct {
	VenueID int     `json:"venue_id"`
	Title   string  `json:"title"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// MapModel is everything the page needs to draw the map panel.
type MapModel struct {
	Kind      string    `json:"kind"`
	ScriptURL string    `json:"script_url,omitempty"`
	Center    geo.Point `json:"center"`
	Zoom      int       `json:"zoom,omitempty"`
	Markers   []Marker  `json:"markers,omitempty"`
	Message   string    `json:"message,omitempty"`
	Hint      string    `json:"hint,omitempty"`
}

// MapView renders the map panel for a set of venues.
type MapView interface {
	Kind() string
	Render(center geo.Point, venues []discovery.VenueView) MapModel
}

// InteractiveMap loads the Google Maps script and pins every venue.
type InteractiveMap struct {
	APIKey string
	Zoom   int
}

func (m InteractiveMap) Kind() string {
	return MapKindInteractive
}

func (m InteractiveMap) Render(center geo.Point, venues []discovery.VenueView) MapModel {
	params := url.Values{}
	params.Set("key", m.APIKey)
	params.Set("libraries", "places")

	markers := make([]Marker, 0, len(venues))
	for _, v := range venues {
		markers = append(markers, Marker{VenueID: v.ID, Title: v.Name, Lat: v.Lat, Lng: v.Lon})
	}

	zoom := m.Zoom
	if zoom == 0 {
		zoom = defaultMapZoom
	}

	return MapModel{
		Kind:      MapKindInteractive,
		ScriptURL: googleMapsScriptURL + "?" + params.Encode(),
		Center:    center,
		Zoom:      zoom,
		Markers:   markers,
	}
}

// PlaceholderMap shows a static notice instead of a map.
type PlaceholderMap struct{}

func (PlaceholderMap) Kind() string {
	return MapKindPlaceholder
}

func (PlaceholderMap) Render(center geo.Point, _ []discovery.VenueView) MapModel {
	return MapModel{
		Kind:    MapKindPlaceholder,
		Center:  center,
		Message: "Interactive map unavailable",
		Hint:    "Set USE_GOOGLE_MAPS to enable the map",
	}
}

// NewMapView picks the map strategy once at startup. The interactive map
// needs an API key; without one the placeholder is used.
func NewMapView(useGoogleMaps bool, apiKey string, log *logger.Logger) MapView {
	if !useGoogleMaps {
		return PlaceholderMap{}
	}
	if apiKey == "" {
		log.Warn("USE_GOOGLE_MAPS is set but GOOGLE_MAPS_API_KEY is empty, falling back to placeholder map")
		return PlaceholderMap{}
	}
	return InteractiveMap{APIKey: apiKey, Zoom: defaultMapZoom}
}
