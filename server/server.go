package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/langhamerm/EasyRx/config"
	"github.com/langhamerm/EasyRx/config/db"
	"github.com/langhamerm/EasyRx/config/logger"
	"github.com/langhamerm/EasyRx/middleware"

	"github.com/gin-gonic/gin"
)

type Options struct {
	MongoEnabled        bool
	MongoURI            string
	MongoDatabase       string
	MongoConnectTimeout time.Duration

	WebServerEnabled    bool
	WebServerPort       string
	WebServerPreHandler func(r *gin.Engine)
	ShutdownTimeout     time.Duration

	MigrationEnabled bool
	MigrationHandler func(ctx context.Context) error

	JobsEnabled bool
	JobsHandler func(ctx context.Context)
	StopHandler func(ctx context.Context)
}

func GetDefaultOptions(cfg *config.Config) Options {
	return Options{
		MongoEnabled:        true,
		MongoURI:            cfg.MongoURI,
		MongoDatabase:       cfg.MongoDatabase,
		MongoConnectTimeout: cfg.MongoConnectTimeout,
		WebServerEnabled:    true,
		WebServerPort:       cfg.Port,
		ShutdownTimeout:     cfg.ShutdownTimeout,
		MigrationEnabled:    cfg.MigrationsEnabled,
		JobsEnabled:         true,
	}
}

// NewEngine builds the router with logging and recovery in front of whatever
// the pre-handler registers.
func NewEngine(opts Options) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())
	if opts.WebServerPreHandler != nil {
		opts.WebServerPreHandler(r)
	}
	return r
}

/*
* Connect to Mongo, an unreachable store is fatal
* Run migrations, then the startup jobs
* Serve until SIGINT/SIGTERM, then drain and disconnect
 */
func Start(opts Options) {
	ctx := context.Background()

	if opts.MongoEnabled {
		if err := db.Connect(ctx, opts.MongoURI, opts.MongoDatabase, opts.MongoConnectTimeout); err != nil {
			logger.Log.WithError(err).Fatal("failed to connect to mongo")
		}
		logger.WithField("database", opts.MongoDatabase).Info("Connected to mongo")
	}

	if opts.MigrationEnabled && opts.MigrationHandler != nil {
		if err := opts.MigrationHandler(ctx); err != nil {
			logger.Log.WithError(err).Fatal("migration failed")
		}
	}

	if opts.JobsEnabled && opts.JobsHandler != nil {
		opts.JobsHandler(ctx)
	}

	if !opts.WebServerEnabled {
		return
	}

	srv := &http.Server{
		Addr:    ":" + opts.WebServerPort,
		Handler: NewEngine(opts),
	}
	go func() {
		logger.WithField("port", opts.WebServerPort).Info("App running on http://localhost:" + opts.WebServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.WithError(err).Fatal("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), opts.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.WithError(err).Error("server forced to shutdown")
	}
	if opts.StopHandler != nil {
		opts.StopHandler(shutdownCtx)
	}
	if err := db.Disconnect(shutdownCtx); err != nil {
		logger.Log.WithError(err).Error("failed to disconnect from mongo")
	}
	logger.Log.Info("Stopped")
}
