package home

import (
	"context"
	"errors"
	"fmt"

	"bandacious/internal/calendar"
	"bandacious/internal/catalog"
	"bandacious/internal/clock"
	"bandacious/internal/discovery"
	"bandacious/pkg/logger"
)

type Service interface {
	Build(ctx context.Context, q PageQuery) (*Page, error)
}

type service struct {
	discovery discovery.Service
	exporter  *calendar.Exporter
	mapView   MapView
	defaults  discovery.Defaults
	basePath  string
	clock     clock.Clock
	logger    *logger.Logger
}

// NewService assembles homepage view models. basePath prefixes API links
// placed on the page.
func NewService(d discovery.Service, exporter *calendar.Exporter, mapView MapView, defaults discovery.Defaults, basePath string, clk clock.Clock) Service {
	return &service{
		discovery: d,
		exporter:  exporter,
		mapView:   mapView,
		defaults:  defaults,
		basePath:  basePath,
		clock:     clk,
		logger:    logger.GetDefault(),
	}
}

func normalizeTab(tab string) string {
	for _, t := range Tabs {
		if tab == t {
			return t
		}
	}
	return TabEvents
}

// Build runs the search for the active tab. A rejected filter value is
// reported on the page and no search is run with it.
func (s *service) Build(ctx context.Context, q PageQuery) (*Page, error) {
	page := &Page{
		Tab:        normalizeTab(q.Tab),
		Query:      q.EventQueryParams,
		DistanceKm: s.defaults.MaxDistanceKm,
		Year:       s.clock.Now().Year(),
	}

	genres, err := s.discovery.Genres(ctx)
	if err != nil {
		return nil, err
	}
	page.Genres = genres

	query, err := discovery.ParseEventQuery(q.EventQueryParams, s.defaults)
	if err != nil {
		var invalid *discovery.InvalidFilterValueError
		if !errors.As(err, &invalid) {
			return nil, err
		}
		s.logger.LogInvalidFilter(ctx, invalid.Field, invalid.Value)
		page.FilterError = &FilterError{Field: invalid.Field, Value: invalid.Value, Reason: invalid.Reason}
	} else {
		page.DistanceKm = query.MaxDistanceKm
	}

	venues, err := s.discovery.SearchVenues(ctx, q.Q, page.DistanceKm)
	if err != nil {
		return nil, err
	}
	page.Map = s.mapView.Render(s.discovery.Home(), venues)

	if page.FilterError == nil {
		switch page.Tab {
		case TabEvents:
			events, err := s.discovery.SearchEvents(ctx, query)
			if err != nil {
				return nil, err
			}
			page.Events = s.cards(events)
		case TabArtists:
			artists, err := s.discovery.SearchArtists(ctx, q.Q)
			if err != nil {
				return nil, err
			}
			page.Artists = artists
		case TabVenues:
			page.Venues = venues
		}
	}

	// Popular strips belong to the events tab only.
	if page.Tab == TabEvents {
		if page.PopularVenues, err = s.discovery.PopularVenues(ctx, s.defaults.PopularLimit); err != nil {
			return nil, err
		}
		if page.PopularArtists, err = s.discovery.PopularArtists(ctx, s.defaults.PopularLimit); err != nil {
			return nil, err
		}
	}

	return page, nil
}

func (s *service) cards(events []discovery.EventView) []EventCard {
	cards := make([]EventCard, 0, len(events))
	for _, ev := range events {
		card := EventCard{
			EventView:  ev,
			PriceLabel: priceLabel(ev),
			DateLabel:  ev.Date,
			ICSURL:     fmt.Sprintf("%s/events/%d/calendar.ics", s.basePath, ev.ID),
		}
		if date, err := catalog.ParseDate(ev.Date); err == nil {
			card.DateLabel = date.Format("Mon 2 Jan 2006")
			card.GoogleCalendarURL = s.exporter.GoogleURL(
				catalog.Event{ID: ev.ID, Title: ev.Title, Date: date},
				ev.Venue,
			)
		}
		cards = append(cards, card)
	}
	return cards
}
