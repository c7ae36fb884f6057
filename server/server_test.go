package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/langhamerm/EasyRx/config"
	"github.com/langhamerm/EasyRx/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetDefaultOptions(t *testing.T) {
	cfg := &config.Config{
		Port:                "4000",
		MongoURI:            "mongodb://db:27017",
		MongoDatabase:       "rx",
		MongoConnectTimeout: time.Second,
		ShutdownTimeout:     2 * time.Second,
		MigrationsEnabled:   true,
		SchedulerEnabled:    false,
	}

	opts := GetDefaultOptions(cfg)

	assert.True(t, opts.MongoEnabled)
	assert.True(t, opts.WebServerEnabled)
	assert.Equal(t, "4000", opts.WebServerPort)
	assert.Equal(t, "mongodb://db:27017", opts.MongoURI)
	assert.True(t, opts.MigrationEnabled)
	assert.True(t, opts.JobsEnabled)
	assert.Equal(t, 2*time.Second, opts.ShutdownTimeout)
}

func TestNewEngine(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewEngine(Options{
		WebServerPreHandler: func(r *gin.Engine) {
			r.GET("/boom", func(c *gin.Context) { panic("boom") })
		},
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestStart_RunsStartupTasksWithoutServing(t *testing.T) {
	var migrated, jobs bool

	Start(Options{
		MigrationEnabled: true,
		MigrationHandler: func(ctx context.Context) error {
			migrated = true
			return nil
		},
		JobsEnabled: true,
		JobsHandler: func(ctx context.Context) { jobs = true },
	})

	assert.True(t, migrated)
	assert.True(t, jobs)
}

func TestStart_SkipsDisabledTasks(t *testing.T) {
	called := false

	Start(Options{
		MigrationHandler: func(ctx context.Context) error {
			called = true
			return nil
		},
		JobsHandler: func(ctx context.Context) { called = true },
	})

	assert.False(t, called)
}
