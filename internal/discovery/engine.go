package discovery

import (
	"fmt"

	"bandacious/internal/catalog"
	"bandacious/internal/geo"
)

// Engine filters and ranks one catalog snapshot relative to a home point.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	catalog   *catalog.Catalog
	home      geo.Point
	distances map[int]float64
}

func NewEngine(c *catalog.Catalog, home geo.Point) *Engine {
	venues := c.Venues()
	distances := make(map[int]float64, len(venues))
	for _, v := range venues {
		distances[v.ID] = geo.Distance(home, v.Point())
	}
	return &Engine{catalog: c, home: home, distances: distances}
}

// Catalog returns the snapshot the engine was built from.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Events returns the events matching every condition of q, in catalog order.
// No match yields an empty slice.
func (e *Engine) Events(q EventQuery) []EventView {
	needle := normalizeQuery(q.Query)
	out := make([]EventView, 0)

	for _, ev := range e.catalog.Events() {
		// references are guaranteed to resolve by catalog.New
		venue, _ := e.catalog.Venue(ev.VenueID)
		artist, _ := e.catalog.Artist(ev.ArtistID)
		distance := e.distances[ev.VenueID]

		if q.matches(ev, venue, artist, distance, needle) {
			out = append(out, newEventView(ev, venue, artist, distance))
		}
	}

	return out
}

// Event resolves a single event by id.
func (e *Engine) Event(id int) (EventView, error) {
	ev, ok := e.catalog.Event(id)
	if !ok {
		return EventView{}, fmt.Errorf("event %d: %w", id, catalog.ErrEventNotFound)
	}
	venue, _ := e.catalog.Venue(ev.VenueID)
	artist, _ := e.catalog.Artist(ev.ArtistID)
	return newEventView(ev, venue, artist, e.distances[ev.VenueID]), nil
}

// Artists returns artists whose name contains query.
func (e *Engine) Artists(query string) []ArtistView {
	needle := normalizeQuery(query)
	out := make([]ArtistView, 0)

	for _, a := range e.catalog.Artists() {
		if needle != "" && !containsFold(a.Name, needle) {
			continue
		}
		out = append(out, e.artistView(a))
	}

	return out
}

// Venues returns venues whose name contains query and that lie within maxDistanceKm of home.
func (e *Engine) Venues(query string, maxDistanceKm float64) []VenueView {
	needle := normalizeQuery(query)
	out := make([]VenueView, 0)

	for _, v := range e.catalog.Venues() {
		if needle != "" && !containsFold(v.Name, needle) {
			continue
		}
		if e.distances[v.ID] > maxDistanceKm {
			continue
		}
		out = append(out, e.venueView(v))
	}

	return out
}

// Genres lists the distinct genres of the snapshot.
func (e *Engine) Genres() []string {
	genres := e.catalog.Genres()
	if genres == nil {
		return []string{}
	}
	return genres
}

func (e *Engine) venueView(v catalog.Venue) VenueView {
	return VenueView{
		Venue:         v,
		UpcomingCount: e.catalog.VenueEventCount(v.ID),
		DistanceKm:    e.distances[v.ID],
	}
}

func (e *Engine) artistView(a catalog.Artist) ArtistView {
	return ArtistView{Artist: a, EventCount: e.catalog.ArtistEventCount(a.ID)}
}

// Home is the reference point distances are measured from.
func (e *Engine) Home() geo.Point {
	return e.home
}
