package catalog

import (
	"time"

	"bandacious/internal/geo"
)

// DateLayout is the wire format for event dates and date filters.
const DateLayout = "2006-01-02"

type Venue struct {
	ID   int     `json:"id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// Point returns the venue position for distance calculations.
func (v Venue) Point() geo.Point {
	return geo.Point{Lat: v.Lat, Lon: v.Lon}
}

type Artist struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Event is a single gig. Date has no time of day and is held at UTC midnight.
type Event struct {
	ID       int       `json:"id"`
	Title    string    `json:"title"`
	Date     time.Time `json:"date"`
	VenueID  int       `json:"venue_id"`
	ArtistID int       `json:"artist_id"`
	Price    float64   `json:"price"`
	Genre    string    `json:"genre"`
}

// IsFree reports whether the event costs nothing.
func (e Event) IsFree() bool {
	return e.Price == 0
}

// ParseDate parses a YYYY-MM-DD string into UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
