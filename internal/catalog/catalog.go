package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Catalog is an immutable snapshot of venues, artists and events.
// Derived counts belong to the snapshot and are rebuilt with it.
type Catalog struct {
	venues  []Venue
	artists []Artist
	events  []Event

	venueIdx  map[int]int
	artistIdx map[int]int
	eventIdx  map[int]int

	venueCounts  map[int]int
	artistCounts map[int]int
	genres       []string
	version      string
}

// New validates the inputs and builds a snapshot. Insertion order is kept.
// A dangling reference or duplicate id yields a *DataIntegrityError.
func New(venues []Venue, artists []Artist, events []Event) (*Catalog, error) {
	c := &Catalog{
		venues:       append([]Venue(nil), venues...),
		artists:      append([]Artist(nil), artists...),
		events:       append([]Event(nil), events...),
		venueIdx:     make(map[int]int, len(venues)),
		artistIdx:    make(map[int]int, len(artists)),
		eventIdx:     make(map[int]int, len(events)),
		venueCounts:  make(map[int]int, len(venues)),
		artistCounts: make(map[int]int, len(artists)),
	}

	for i, v := range c.venues {
		if _, dup := c.venueIdx[v.ID]; dup {
			return nil, &DataIntegrityError{Entity: "venue", ID: v.ID, Reason: "duplicate id"}
		}
		c.venueIdx[v.ID] = i
	}
	for i, a := range c.artists {
		if _, dup := c.artistIdx[a.ID]; dup {
			return nil, &DataIntegrityError{Entity: "artist", ID: a.ID, Reason: "duplicate id"}
		}
		c.artistIdx[a.ID] = i
	}

	seenGenre := make(map[string]bool)
	for i, ev := range c.events {
		if _, dup := c.eventIdx[ev.ID]; dup {
			return nil, &DataIntegrityError{Entity: "event", ID: ev.ID, Reason: "duplicate id"}
		}
		if _, ok := c.venueIdx[ev.VenueID]; !ok {
			return nil, &DataIntegrityError{Entity: "event", ID: ev.ID, Reason: fmt.Sprintf("unknown venue %d", ev.VenueID)}
		}
		if _, ok := c.artistIdx[ev.ArtistID]; !ok {
			return nil, &DataIntegrityError{Entity: "event", ID: ev.ID, Reason: fmt.Sprintf("unknown artist %d", ev.ArtistID)}
		}
		c.eventIdx[ev.ID] = i
		c.venueCounts[ev.VenueID]++
		c.artistCounts[ev.ArtistID]++
		if ev.Genre != "" && !seenGenre[ev.Genre] {
			seenGenre[ev.Genre] = true
			c.genres = append(c.genres, ev.Genre)
		}
	}

	c.version = c.fingerprint()
	return c, nil
}

func (c *Catalog) fingerprint() string {
	h := sha256.New()
	for _, v := range c.venues {
		fmt.Fprintf(h, "v|%d|%s|%v|%v\n", v.ID, v.Name, v.Lat, v.Lon)
	}
	for _, a := range c.artists {
		fmt.Fprintf(h, "a|%d|%s\n", a.ID, a.Name)
	}
	for _, e := range c.events {
		fmt.Fprintf(h, "e|%d|%s|%s|%d|%d|%v|%s\n", e.ID, e.Title, e.Date.Format(DateLayout), e.VenueID, e.ArtistID, e.Price, e.Genre)
	}
	return hex.EncodeToString(h.Sum(nil))[:12]
}

// Venues returns all venues in catalog order.
func (c *Catalog) Venues() []Venue {
	return append([]Venue(nil), c.venues...)
}

// Artists returns all artists in catalog order.
func (c *Catalog) Artists() []Artist {
	return append([]Artist(nil), c.artists...)
}

// Events returns all events in catalog order.
func (c *Catalog) Events() []Event {
	return append([]Event(nil), c.events...)
}

func (c *Catalog) Venue(id int) (Venue, bool) {
	i, ok := c.venueIdx[id]
	if !ok {
		return Venue{}, false
	}
	return c.venues[i], true
}

func (c *Catalog) Artist(id int) (Artist, bool) {
	i, ok := c.artistIdx[id]
	if !ok {
		return Artist{}, false
	}
	return c.artists[i], true
}

func (c *Catalog) Event(id int) (Event, bool) {
	i, ok := c.eventIdx[id]
	if !ok {
		return Event{}, false
	}
	return c.events[i], true
}

// VenueEventCount is the number of events held at the venue (its upcoming count).
func (c *Catalog) VenueEventCount(venueID int) int {
	return c.venueCounts[venueID]
}

// ArtistEventCount is the number of events the artist plays.
func (c *Catalog) ArtistEventCount(artistID int) int {
	return c.artistCounts[artistID]
}

// Genres lists distinct event genres in order of first appearance.
func (c *Catalog) Genres() []string {
	return append([]string(nil), c.genres...)
}

// Version is a short content hash; equal catalogs share a version.
func (c *Catalog) Version() string {
	return c.version
}

// Stats summarises the snapshot size.
type Stats struct {
	Venues  int `json:"venues"`
	Artists int `json:"artists"`
	Events  int `json:"events"`
}

func (c *Catalog) Stats() Stats {
	return Stats{Venues: len(c.venues), Artists: len(c.artists), Events: len(c.events)}
}
