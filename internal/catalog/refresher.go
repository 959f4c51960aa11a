package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"bandacious/internal/clock"
	"bandacious/internal/notifications"
	"bandacious/internal/shared/constants"
	"bandacious/pkg/cache"
	"bandacious/pkg/logger"
	"bandacious/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// Refresher reloads the catalog from its source and swaps it into the store.
// A failed load leaves the previous snapshot in place.
type Refresher struct {
	source       Source
	store        *Store
	clock        clock.Clock
	logger       *logger.Logger
	publisher    notifications.Publisher
	cacheService cache.Service
	metrics      *metrics.Metrics

	mu   sync.Mutex
	cron *cron.Cron
}

func NewRefresher(source Source, store *Store, clk clock.Clock) *Refresher {
	return &Refresher{
		source:    source,
		store:     store,
		clock:     clk,
		logger:    logger.GetDefault(),
		publisher: notifications.NoopPublisher{},
	}
}

func (r *Refresher) SetPublisher(p notifications.Publisher) {
	r.publisher = p
}

func (r *Refresher) SetCacheService(c cache.Service) {
	r.cacheService = c
}

func (r *Refresher) SetMetrics(m *metrics.Metrics) {
	r.metrics = m
}

func (r *Refresher) SetLogger(l *logger.Logger) {
	r.logger = l
}

// Reload loads a new snapshot and makes it live. Concurrent calls are serialised.
func (r *Refresher) Reload(ctx context.Context) (*Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next, err := r.source.Load(ctx)
	if err != nil {
		r.metrics.CatalogReload(false)
		r.logger.LogCatalogReloadFailed(ctx, r.source.Name(), err)
		return nil, fmt.Errorf("reload catalog from %s: %w", r.source.Name(), err)
	}

	snap := &Snapshot{Catalog: next, Source: r.source.Name(), LoadedAt: r.clock.Now()}
	prev := r.store.Swap(snap)
	r.metrics.CatalogReload(true)

	stats := next.Stats()
	r.logger.LogCatalogLoaded(ctx, snap.Source, next.Version(), stats.Venues, stats.Artists, stats.Events)

	previousVersion := ""
	if prev != nil && prev.Catalog != nil {
		previousVersion = prev.Catalog.Version()
	}

	if r.cacheService != nil && previousVersion != "" && previousVersion != next.Version() {
		if err := r.cacheService.DeletePattern(ctx, constants.PATTERN_INVALIDATE_DISCOVERY_ALL); err != nil {
			r.logger.WarnContext(ctx, "Failed to invalidate discovery cache", slog.String("error", err.Error()))
		}
	}

	notification := notifications.NewCatalogReloaded(snap.Source, next.Version(), previousVersion,
		stats.Venues, stats.Artists, stats.Events, snap.LoadedAt)
	if err := r.publisher.PublishCatalogNotification(ctx, notification); err != nil {
		r.logger.WarnContext(ctx, "Failed to publish catalog notification", slog.String("error", err.Error()))
	}

	return snap, nil
}

// Start schedules periodic reloads. An empty schedule disables scheduling.
func (r *Refresher) Start(schedule string, timeout time.Duration) error {
	if schedule == "" {
		return nil
	}

	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		_, _ = r.Reload(ctx)
	})
	if err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", schedule, err)
	}

	r.cron = c
	c.Start()
	r.logger.Info("Catalog refresh scheduled", slog.String("schedule", schedule), slog.String("source", r.source.Name()))
	return nil
}

// Stop halts the schedule and waits for a running reload to finish.
func (r *Refresher) Stop() {
	if r.cron == nil {
		return
	}
	<-r.cron.Stop().Done()
}
