package database

import (
	"context"
	"testing"

	"bandacious/internal/shared/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_NoBackends(t *testing.T) {
	cfg := &config.Config{
		Catalog: config.CatalogConfig{Source: config.CatalogSourceBuiltin},
	}

	db, err := InitDB(context.Background(), cfg)
	require.NoError(t, err)
	assert.Nil(t, db.PostgreSQL)
	assert.Nil(t, db.Redis)

	assert.NoError(t, db.HealthCheck(context.Background()))
	assert.NoError(t, db.Close())
}
