package discovery

import "bandacious/internal/catalog"

// EventView is an event with its venue and artist resolved.
type EventView struct {
	ID         int            `json:"id"`
	Title      string         `json:"title"`
	Date       string         `json:"date"`
	Price      float64        `json:"price"`
	Free       bool           `json:"free"`
	Genre      string         `json:"genre"`
	Venue      catalog.Venue  `json:"venue"`
	Artist     catalog.Artist `json:"artist"`
	DistanceKm float64        `json:"distance_km"`
}

// VenueView is a venue with its upcoming event count and distance from home.
type VenueView struct {
	catalog.Venue
	UpcomingCount int     `json:"upcoming_count"`
	DistanceKm    float64 `json:"distance_km"`
}

type ArtistView struct {
	catalog.Artist
	EventCount int `json:"event_count"`
}

type EventListResponse struct {
	Events []EventView `json:"events"`
	Total  int         `json:"total"`
}

type VenueListResponse struct {
	Venues []VenueView `json:"venues"`
	Total  int         `json:"total"`
}

type ArtistListResponse struct {
	Artists []ArtistView `json:"artists"`
	Total   int          `json:"total"`
}

func newEventView(ev catalog.Event, venue catalog.Venue, artist catalog.Artist, distanceKm float64) EventView {
	return EventView{
		ID:         ev.ID,
		Title:      ev.Title,
		Date:       ev.Date.Format(catalog.DateLayout),
		Price:      ev.Price,
		Free:       ev.IsFree(),
		Genre:      ev.Genre,
		Venue:      venue,
		Artist:     artist,
		DistanceKm: distanceKm,
	}
}
