package calendar

import (
	"context"
	"fmt"

	"bandacious/internal/catalog"
	"bandacious/pkg/logger"
	"bandacious/pkg/metrics"
)

const (
	FormatICS    = "ics"
	FormatGoogle = "google"
)

type Service interface {
	ICS(ctx context.Context, eventID int) (*ICSFile, error)
	GoogleURL(ctx context.Context, eventID int) (string, error)
	SetMetrics(m *metrics.Metrics)
}

type service struct {
	store    *catalog.Store
	exporter *Exporter
	metrics  *metrics.Metrics
	logger   *logger.Logger
}

func NewService(store *catalog.Store, exporter *Exporter) Service {
	return &service{store: store, exporter: exporter, logger: logger.GetDefault()}
}

func (s *service) SetMetrics(m *metrics.Metrics) {
	s.metrics = m
}

func (s *service) resolve(eventID int) (catalog.Event, catalog.Venue, error) {
	c, err := s.store.Current()
	if err != nil {
		return catalog.Event{}, catalog.Venue{}, err
	}
	ev, ok := c.Event(eventID)
	if !ok {
		return catalog.Event{}, catalog.Venue{}, fmt.Errorf("event %d: %w", eventID, catalog.ErrEventNotFound)
	}
	venue, ok := c.Venue(ev.VenueID)
	if !ok {
		return catalog.Event{}, catalog.Venue{}, fmt.Errorf("venue %d: %w", ev.VenueID, catalog.ErrVenueNotFound)
	}
	return ev, venue, nil
}

func (s *service) ICS(ctx context.Context, eventID int) (*ICSFile, error) {
	ev, venue, err := s.resolve(eventID)
	if err != nil {
		return nil, err
	}
	file := &ICSFile{
		Filename: s.exporter.Filename(ev),
		Body:     s.exporter.ICS(ev, venue),
	}
	s.metrics.CalendarExport(FormatICS)
	s.logger.LogCalendarExport(ctx, eventID, FormatICS)
	return file, nil
}

func (s *service) GoogleURL(ctx context.Context, eventID int) (string, error) {
	ev, venue, err := s.resolve(eventID)
	if err != nil {
		return "", err
	}
	link := s.exporter.GoogleURL(ev, venue)
	s.metrics.CalendarExport(FormatGoogle)
	s.logger.LogCalendarExport(ctx, eventID, FormatGoogle)
	return link, nil
}
