package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "MONGODB_URI", "MONGODB_DATABASE", "RX_COLLECTION", "RX_LINK_MODE", "SCHEDULER_ENABLED", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "rx", cfg.MongoDatabase)
	assert.Equal(t, "rxes", cfg.RxCollection)
	assert.Equal(t, "fragments", cfg.LinkMode)
	assert.True(t, cfg.SchedulerEnabled)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("RX_LINK_MODE", "reference")
	t.Setenv("SCHEDULER_ENABLED", "false")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg := Load()

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "reference", cfg.LinkMode)
	assert.False(t, cfg.SchedulerEnabled)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_IgnoresMalformedValues(t *testing.T) {
	t.Setenv("MIGRATIONS_ENABLED", "sometimes")
	t.Setenv("MONGODB_CONNECT_TIMEOUT", "soon")

	cfg := Load()

	assert.True(t, cfg.MigrationsEnabled)
	assert.Equal(t, 10*time.Second, cfg.MongoConnectTimeout)
}
