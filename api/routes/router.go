// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"bandacious/internal/admin"
	"bandacious/internal/auth"
	"bandacious/internal/calendar"
	"bandacious/internal/catalog"
	"bandacious/internal/clock"
	"bandacious/internal/discovery"
	"bandacious/internal/geo"
	"bandacious/internal/home"
	"bandacious/internal/shared/config"
	"bandacious/internal/shared/database"
	"bandacious/pkg/cache"
	"bandacious/pkg/logger"
	"bandacious/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const serviceName = "bandacious"

// Router holds all route dependencies
type Router struct {
	config       *config.Config
	db           *database.DB
	store        *catalog.Store
	refresher    *catalog.Refresher
	metrics      *metrics.Metrics
	cacheService cache.Service
	clock        clock.Clock

	discoveryService discovery.Service
	exporter         *calendar.Exporter
}

// NewRouter creates a new router instance. db may hold no connections at all.
func NewRouter(cfg *config.Config, db *database.DB, store *catalog.Store, refresher *catalog.Refresher) *Router {
	return &Router{
		config:    cfg,
		db:        db,
		store:     store,
		refresher: refresher,
		clock:     clock.NewSystem(),
	}
}

func (r *Router) SetMetrics(m *metrics.Metrics) {
	r.metrics = m
}

func (r *Router) SetCacheService(c cache.Service) {
	r.cacheService = c
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	r.setupDiscovery()
	r.setupCalendarExporter()

	homeController := r.homeController()
	home.SetupPageRoutes(engine, homeController)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)
		r.setupAdminRoutes(api)
		r.setupDiscoveryRoutes(api)
		r.setupCalendarRoutes(api)
		home.SetupHomeRoutes(api, homeController)
	}
}

func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   serviceName,
			})
			return
		}

		if _, err := r.store.Current(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   serviceName,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   serviceName,
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		status := gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		}
		if snap := r.store.Snapshot(); snap != nil && snap.Catalog != nil {
			status["catalog_version"] = snap.Catalog.Version()
			status["catalog_source"] = snap.Source
		}
		c.JSON(http.StatusOK, status)
	})

	if r.metrics != nil {
		engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
}

func (r *Router) setupDiscovery() {
	svc := discovery.NewService(r.store, geo.Point{Lat: r.config.Discovery.HomeLat, Lon: r.config.Discovery.HomeLon})
	if r.cacheService != nil {
		svc.SetCacheService(r.cacheService)
	}
	svc.SetMetrics(r.metrics)
	r.discoveryService = svc
}

func (r *Router) setupCalendarExporter() {
	r.exporter = calendar.NewExporter(calendar.Options{
		LocationSuffix: r.config.Calendar.LocationSuffix,
		UIDDomain:      r.config.Calendar.UIDDomain,
		Duration:       r.config.Calendar.EventDuration,
		ProductID:      r.config.Calendar.ProductID,
	}, r.clock)
}

func (r *Router) defaults() discovery.Defaults {
	return discovery.Defaults{
		MaxDistanceKm: r.config.Discovery.DefaultMaxDistanceKm,
		PopularLimit:  r.config.Discovery.PopularLimit,
	}
}

// setupAuthRoutes configures authentication routes
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewConfigRepository(r.config.Admin)
	authService := auth.NewService(authRepo, r.config)
	authController := auth.NewController(authService)

	auth.SetupAuthRoutes(rg, authController, r.config)
}

func (r *Router) setupAdminRoutes(rg *gin.RouterGroup) {
	admin.SetupAdminRoutes(rg, admin.NewController(r.refresher, r.store), r.config)
}

func (r *Router) setupDiscoveryRoutes(rg *gin.RouterGroup) {
	discovery.SetupDiscoveryRoutes(rg, discovery.NewController(r.discoveryService, r.defaults()))
}

func (r *Router) setupCalendarRoutes(rg *gin.RouterGroup) {
	calendarService := calendar.NewService(r.store, r.exporter)
	calendarService.SetMetrics(r.metrics)

	calendar.SetupCalendarRoutes(rg, calendar.NewController(calendarService, r.config.GetAPIBasePath()))
}

func (r *Router) homeController() home.Controller {
	mapView := home.NewMapView(r.config.Maps.UseGoogleMaps, r.config.Maps.APIKey, logger.GetDefault())
	homeService := home.NewService(r.discoveryService, r.exporter, mapView, r.defaults(), r.config.GetAPIBasePath(), r.clock)

	return home.NewController(homeService)
}
