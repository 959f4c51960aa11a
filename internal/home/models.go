package home

import (
	"fmt"

	"bandacious/internal/discovery"
)

const (
	TabEvents  = "events"
	TabArtists = "artists"
	TabVenues  = "venues"
)

var Tabs = []string{TabEvents, TabArtists, TabVenues}

// PageQuery is the homepage query string: the event search plus the active tab.
type PageQuery struct {
	Tab string `form:"tab" json:"tab,omitempty"`
	discovery.EventQueryParams
}

// EventCard is an event as listed on the homepage, with its calendar actions.
type EventCard struct {
	discovery.EventView
	PriceLabel        string `json:"price_label"`
	DateLabel         string `json:"date_label"`
	GoogleCalendarURL string `json:"google_calendar_url"`
	ICSURL            string `json:"ics_url"`
}

// FilterError is shown inline when a filter value was rejected.
type FilterError struct {
	Field  string `json:"field"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

func (e *FilterError) String() string {
	return fmt.Sprintf("%s %q: %s", e.Field, e.Value, e.Reason)
}

// Page is the homepage view model, shared by the HTML page and /api/v1/home.
type Page struct {
	Tab            string                     `json:"tab"`
	Query          discovery.EventQueryParams `json:"query"`
	DistanceKm     float64                    `json:"distance_km"`
	Events         []EventCard                `json:"events"`
	Artists        []discovery.ArtistView     `json:"artists"`
	Venues         []discovery.VenueView      `json:"venues"`
	PopularVenues  []discovery.VenueView      `json:"popular_venues"`
	PopularArtists []discovery.ArtistView     `json:"popular_artists"`
	Genres         []string                   `json:"genres"`
	Map            MapModel                   `json:"map"`
	FilterError    *FilterError               `json:"filter_error,omitempty"`
	Year           int                        `json:"-"`
}

func priceLabel(ev discovery.EventView) string {
	if ev.Free {
		return "Free"
	}
	return fmt.Sprintf("£%.2f", ev.Price)
}
