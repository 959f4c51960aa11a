package discovery

import (
	"context"
	"log/slog"

	"bandacious/internal/catalog"
	"bandacious/internal/geo"
	"bandacious/internal/shared/constants"
	"bandacious/pkg/cache"
	"bandacious/pkg/logger"
	"bandacious/pkg/metrics"
)

type Service interface {
	SearchEvents(ctx context.Context, q EventQuery) ([]EventView, error)
	GetEvent(ctx context.Context, id int) (*EventView, error)
	SearchArtists(ctx context.Context, query string) ([]ArtistView, error)
	SearchVenues(ctx context.Context, query string, maxDistanceKm float64) ([]VenueView, error)
	Genres(ctx context.Context) ([]string, error)
	PopularVenues(ctx context.Context, limit int) ([]VenueView, error)
	PopularArtists(ctx context.Context, limit int) ([]ArtistView, error)
	Home() geo.Point

	// Optional collaborators
	SetCacheService(cacheService cache.Service)
	SetMetrics(m *metrics.Metrics)
}

type service struct {
	store        *catalog.Store
	home         geo.Point
	cacheService cache.Service
	metrics      *metrics.Metrics
	logger       *logger.Logger
}

// NewService answers every call from the store's current snapshot.
func NewService(store *catalog.Store, home geo.Point) Service {
	return &service{
		store:  store,
		home:   home,
		logger: logger.GetDefault(),
	}
}

// SetCacheService enables caching of popular strips and genres.
func (s *service) SetCacheService(c cache.Service) {
	s.cacheService = c
}

func (s *service) SetMetrics(m *metrics.Metrics) {
	s.metrics = m
}

func (s *service) Home() geo.Point {
	return s.home
}

func (s *service) engine() (*Engine, error) {
	c, err := s.store.Current()
	if err != nil {
		return nil, err
	}
	return NewEngine(c, s.home), nil
}

func (s *service) SearchEvents(ctx context.Context, q EventQuery) ([]EventView, error) {
	e, err := s.engine()
	if err != nil {
		return nil, err
	}
	events := e.Events(q)
	s.metrics.ObserveFilter("events", len(events))
	return events, nil
}

func (s *service) GetEvent(ctx context.Context, id int) (*EventView, error) {
	e, err := s.engine()
	if err != nil {
		return nil, err
	}
	ev, err := e.Event(id)
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

func (s *service) SearchArtists(ctx context.Context, query string) ([]ArtistView, error) {
	e, err := s.engine()
	if err != nil {
		return nil, err
	}
	artists := e.Artists(query)
	s.metrics.ObserveFilter("artists", len(artists))
	return artists, nil
}

func (s *service) SearchVenues(ctx context.Context, query string, maxDistanceKm float64) ([]VenueView, error) {
	e, err := s.engine()
	if err != nil {
		return nil, err
	}
	venues := e.Venues(query, maxDistanceKm)
	s.metrics.ObserveFilter("venues", len(venues))
	return venues, nil
}

func (s *service) Genres(ctx context.Context) ([]string, error) {
	e, err := s.engine()
	if err != nil {
		return nil, err
	}
	if s.cacheService == nil {
		return e.Genres(), nil
	}

	var genres []string
	err = s.cacheService.GetOrSet(ctx, constants.GenresKey(e.Catalog().Version()), constants.TTL_GENRES, func() (interface{}, error) {
		return e.Genres(), nil
	}, &genres)
	if err != nil {
		s.logCacheFallback(ctx, "genres", err)
		return e.Genres(), nil
	}
	return genres, nil
}

func (s *service) PopularVenues(ctx context.Context, limit int) ([]VenueView, error) {
	e, err := s.engine()
	if err != nil {
		return nil, err
	}
	if s.cacheService == nil {
		return e.PopularVenues(limit), nil
	}

	var venues []VenueView
	err = s.cacheService.GetOrSet(ctx, constants.PopularVenuesKey(e.Catalog().Version(), limit), constants.TTL_POPULAR, func() (interface{}, error) {
		return e.PopularVenues(limit), nil
	}, &venues)
	if err != nil {
		s.logCacheFallback(ctx, "popular_venues", err)
		return e.PopularVenues(limit), nil
	}
	return venues, nil
}

func (s *service) PopularArtists(ctx context.Context, limit int) ([]ArtistView, error) {
	e, err := s.engine()
	if err != nil {
		return nil, err
	}
	if s.cacheService == nil {
		return e.PopularArtists(limit), nil
	}

	var artists []ArtistView
	err = s.cacheService.GetOrSet(ctx, constants.PopularArtistsKey(e.Catalog().Version(), limit), constants.TTL_POPULAR, func() (interface{}, error) {
		return e.PopularArtists(limit), nil
	}, &artists)
	if err != nil {
		s.logCacheFallback(ctx, "popular_artists", err)
		return e.PopularArtists(limit), nil
	}
	return artists, nil
}

func (s *service) logCacheFallback(ctx context.Context, what string, err error) {
	s.logger.WarnContext(ctx, "Cache unavailable, computing directly",
		slog.String("view", what),
		slog.String("error", err.Error()),
	)
}
