package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "/api/v1", cfg.GetAPIBasePath())
	assert.Equal(t, CatalogSourceBuiltin, cfg.Catalog.Source)
	assert.Equal(t, 51.5074, cfg.Discovery.HomeLat)
	assert.Equal(t, -0.1278, cfg.Discovery.HomeLon)
	assert.Equal(t, 50.0, cfg.Discovery.DefaultMaxDistanceKm)
	assert.Equal(t, 6, cfg.Discovery.PopularLimit)
	assert.False(t, cfg.Maps.UseGoogleMaps)
	assert.Equal(t, 2*time.Hour, cfg.Calendar.EventDuration)
	assert.Equal(t, "bandacious.com", cfg.Calendar.UIDDomain)
	assert.False(t, cfg.UsesPostgres())
	assert.False(t, cfg.KafkaEnabled())
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "Postgres")
	t.Setenv("HOME_LAT", "53.4808")
	t.Setenv("HOME_LON", "-2.2426")
	t.Setenv("DEFAULT_MAX_DISTANCE_KM", "25")
	t.Setenv("USE_GOOGLE_MAPS", "true")
	t.Setenv("GOOGLE_MAPS_API_KEY", "key")
	t.Setenv("CALENDAR_EVENT_DURATION", "90m")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092")
	t.Setenv("JWT_EXPIRES_IN", "600")

	cfg := Load()

	assert.True(t, cfg.UsesPostgres())
	assert.Equal(t, 53.4808, cfg.Discovery.HomeLat)
	assert.Equal(t, -2.2426, cfg.Discovery.HomeLon)
	assert.Equal(t, 25.0, cfg.Discovery.DefaultMaxDistanceKm)
	assert.True(t, cfg.Maps.UseGoogleMaps)
	assert.Equal(t, 90*time.Minute, cfg.Calendar.EventDuration)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.KafkaEnabled())
	assert.Equal(t, 10*time.Minute, cfg.JWT.JWTExpiresIn)
}

func TestLoad_IgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("POPULAR_LIMIT", "six")
	t.Setenv("HOME_LAT", "north")

	cfg := Load()

	assert.Equal(t, 6, cfg.Discovery.PopularLimit)
	assert.Equal(t, 51.5074, cfg.Discovery.HomeLat)
}
