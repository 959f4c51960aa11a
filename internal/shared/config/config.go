package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for our application
type Config struct {
	// Server configuration
	Port           string
	GinMode        string
	APIVersion     string
	APIPrefix      string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxHeaderBytes int

	// Catalog source and refresh
	Catalog CatalogConfig

	// Discovery defaults
	Discovery DiscoveryConfig

	// Homepage map
	Maps MapsConfig

	// Calendar export
	Calendar CalendarConfig

	// Database configuration
	Database DatabaseConfig

	// Redis configuration
	Redis RedisConfig

	// JWT configuration
	JWT JWTConfig

	// Admin credentials
	Admin AdminConfig

	// Rate limiting
	RateLimit RateLimitConfig

	// Kafka catalog feed
	Kafka KafkaConfig

	// Logging
	LogLevel string
}

// CatalogConfig selects where the catalog is loaded from
type CatalogConfig struct {
	Source        string // builtin, file or postgres
	File          string
	RefreshCron   string // empty disables scheduled reloads
	ReloadTimeout time.Duration
}

// DiscoveryConfig holds the search defaults
type DiscoveryConfig struct {
	HomeLat              float64
	HomeLon              float64
	DefaultMaxDistanceKm float64
	PopularLimit         int
}

// MapsConfig controls the homepage map strategy
type MapsConfig struct {
	UseGoogleMaps bool
	APIKey        string
}

// CalendarConfig shapes calendar exports
type CalendarConfig struct {
	LocationSuffix string
	UIDDomain      string
	EventDuration  time.Duration
	ProductID      string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	DSN      string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
	PoolSize int
	Addr     string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	JWTExpiresIn     time.Duration
	RefreshExpiresIn time.Duration
}

// AdminConfig is the single catalog administrator
type AdminConfig struct {
	Username     string
	PasswordHash string // bcrypt
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled          bool          `json:"enabled"`
	WindowDuration   time.Duration `json:"window_duration"`
	DefaultRequests  int           `json:"default_requests"`
	PublicRequests   int           `json:"public_requests"`
	CalendarRequests int           `json:"calendar_requests"`
	AuthRequests     int           `json:"auth_requests"`
	AdminRequests    int           `json:"admin_requests"`
	WhitelistedIPs   []string      `json:"whitelisted_ips"`
}

// KafkaConfig holds the catalog change feed settings
type KafkaConfig struct {
	Brokers      []string
	CatalogTopic string
	ClientID     string
}

const (
	CatalogSourceBuiltin  = "builtin"
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"
)

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Server configuration
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		APIVersion:     getEnv("API_VERSION", "v1"),
		APIPrefix:      getEnv("API_PREFIX", "/api"),
		ReadTimeout:    getDurationEnv("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:   getDurationEnv("WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:    getDurationEnv("IDLE_TIMEOUT", 60*time.Second),
		MaxHeaderBytes: getIntEnv("MAX_HEADER_BYTES", 1<<20), // 1 MB

		// Catalog
		Catalog: CatalogConfig{
			Source:        strings.ToLower(getEnv("CATALOG_SOURCE", CatalogSourceBuiltin)),
			File:          getEnv("CATALOG_FILE", "./catalog.yaml"),
			RefreshCron:   getEnv("CATALOG_REFRESH_CRON", ""),
			ReloadTimeout: getDurationEnv("CATALOG_RELOAD_TIMEOUT", 30*time.Second),
		},

		// Discovery defaults (central London, 50 km slider maximum)
		Discovery: DiscoveryConfig{
			HomeLat:              getFloatEnv("HOME_LAT", 51.5074),
			HomeLon:              getFloatEnv("HOME_LON", -0.1278),
			DefaultMaxDistanceKm: getFloatEnv("DEFAULT_MAX_DISTANCE_KM", 50),
			PopularLimit:         getIntEnv("POPULAR_LIMIT", 6),
		},

		Maps: MapsConfig{
			UseGoogleMaps: getBoolEnv("USE_GOOGLE_MAPS", false),
			APIKey:        getEnv("GOOGLE_MAPS_API_KEY", ""),
		},

		Calendar: CalendarConfig{
			LocationSuffix: getEnv("CALENDAR_LOCATION_SUFFIX", "London"),
			UIDDomain:      getEnv("CALENDAR_UID_DOMAIN", "bandacious.com"),
			EventDuration:  getDurationEnv("CALENDAR_EVENT_DURATION", 2*time.Hour),
			ProductID:      getEnv("CALENDAR_PRODUCT_ID", "-//Bandacious//EN"),
		},

		// Database configuration
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "bandacious_db"),
			User:     getEnv("DB_USER", "bandacious_user"),
			Password: getEnv("DB_PASSWORD", "bandacious_password"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},

		// Redis configuration
		Redis: RedisConfig{
			Enabled:  getBoolEnv("REDIS_ENABLED", false),
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
			PoolSize: getIntEnv("REDIS_POOL_SIZE", 10),
		},

		// JWT configuration
		JWT: JWTConfig{
			Secret:           getEnv("JWT_SECRET", "your-super-secret-jwt-key"),
			JWTExpiresIn:     getDurationEnvSeconds("JWT_EXPIRES_IN", 15*time.Minute),
			RefreshExpiresIn: getDurationEnvSeconds("JWT_REFRESH_EXPIRES_IN", 24*time.Hour),
		},

		Admin: AdminConfig{
			Username:     getEnv("ADMIN_USERNAME", "admin"),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},

		// Rate limiting
		RateLimit: RateLimitConfig{
			Enabled:          getBoolEnv("RATE_LIMIT_ENABLED", true),
			WindowDuration:   getDurationEnv("RATE_LIMIT_WINDOW_DURATION", 60*time.Second),
			DefaultRequests:  getIntEnv("RATE_LIMIT_DEFAULT_REQUESTS", 60),
			PublicRequests:   getIntEnv("RATE_LIMIT_PUBLIC_REQUESTS", 120),
			CalendarRequests: getIntEnv("RATE_LIMIT_CALENDAR_REQUESTS", 30),
			AuthRequests:     getIntEnv("RATE_LIMIT_AUTH_REQUESTS", 10),
			AdminRequests:    getIntEnv("RATE_LIMIT_ADMIN_REQUESTS", 30),
			WhitelistedIPs:   getStringSliceEnv("RATE_LIMIT_WHITELISTED_IPS", []string{}),
		},

		Kafka: KafkaConfig{
			Brokers:      getStringSliceEnv("KAFKA_BROKERS", nil),
			CatalogTopic: getEnv("KAFKA_CATALOG_TOPIC", "catalog-updates"),
			ClientID:     getEnv("KAFKA_CLIENT_ID", "bandacious"),
		},

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "debug"),
	}

	// Build composite values
	cfg.Database.DSN = buildDatabaseDSN(cfg.Database)
	cfg.Redis.Addr = cfg.Redis.Host + ":" + cfg.Redis.Port

	return cfg
}

// buildDatabaseDSN builds the database connection string
func buildDatabaseDSN(db DatabaseConfig) string {
	return "host=" + db.Host +
		" port=" + db.Port +
		" user=" + db.User +
		" password=" + db.Password +
		" dbname=" + db.Name +
		" sslmode=" + db.SSLMode
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getIntEnv gets an integer environment variable with a fallback value
func getIntEnv(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}

// getFloatEnv gets a float environment variable with a fallback value
func getFloatEnv(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return fallback
}

// getDurationEnv gets a duration environment variable with a fallback value
func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return fallback
}

// getDurationEnvSeconds gets an environment variable as seconds (int) and converts to time.Duration
func getDurationEnvSeconds(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}

// getBoolEnv gets a boolean environment variable with a fallback value
func getBoolEnv(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

// getStringSliceEnv gets a comma-separated string environment variable as a slice
func getStringSliceEnv(key string, fallback []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		var result []string
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GinMode == "debug"
}

// GetServerAddress returns the full server address
func (c *Config) GetServerAddress() string {
	return ":" + c.Port
}

// GetAPIBasePath returns the API base path
func (c *Config) GetAPIBasePath() string {
	return c.APIPrefix + "/" + c.APIVersion
}

// UsesPostgres reports whether the catalog is read from the database
func (c *Config) UsesPostgres() bool {
	return c.Catalog.Source == CatalogSourcePostgres
}

// KafkaEnabled reports whether catalog notifications go to Kafka
func (c *Config) KafkaEnabled() bool {
	return len(c.Kafka.Brokers) > 0
}
