package main

import (
	"context"

	"github.com/langhamerm/EasyRx/config"
	"github.com/langhamerm/EasyRx/config/logger"
	"github.com/langhamerm/EasyRx/jobs"
	"github.com/langhamerm/EasyRx/migrations"
	"github.com/langhamerm/EasyRx/routes"
	"github.com/langhamerm/EasyRx/server"
	"github.com/langhamerm/EasyRx/services"
	"github.com/langhamerm/EasyRx/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	startServer = server.Start
	isTest      = false
)

func main() {
	run()
}

func run() {
	err := godotenv.Load()
	cfg := config.Load()
	logger.Init(cfg.LogLevel)
	if err != nil {
		logger.Log.Info("No .env file loaded, using the process environment")
	}

	util.PatientCollection = cfg.PatientCollection
	util.PrescriptionCollection = cfg.RxCollection

	mode, err := services.ParseLinkMode(cfg.LinkMode)
	if err != nil {
		logger.Log.WithError(err).Fatal("invalid RX_LINK_MODE")
	}
	services.SetLinkMode(mode)
	logger.WithField("mode", mode).Info("Prescription link mode")

	defaultopts := server.GetDefaultOptions(cfg)

	options := server.Options{
		MongoEnabled:        defaultopts.MongoEnabled && !isTest,
		MongoURI:            defaultopts.MongoURI,
		MongoDatabase:       defaultopts.MongoDatabase,
		MongoConnectTimeout: defaultopts.MongoConnectTimeout,
		WebServerEnabled:    defaultopts.WebServerEnabled && !isTest,
		WebServerPort:       defaultopts.WebServerPort,
		ShutdownTimeout:     defaultopts.ShutdownTimeout,

		MigrationEnabled: defaultopts.MigrationEnabled && !isTest,
		MigrationHandler: func(ctx context.Context) error {
			if isTest {
				return nil
			}
			return migrations.Run(ctx)
		},

		JobsEnabled: defaultopts.JobsEnabled && !isTest,
		JobsHandler: func(ctx context.Context) {
			if isTest {
				return
			}
			jobs.RunSeed(ctx)
			if !cfg.SchedulerEnabled {
				return
			}
			if err := jobs.StartOrphanAudit(cfg.OrphanAuditSchedule); err != nil {
				logger.Log.WithError(err).Error("orphan audit not scheduled")
			}
		},
		StopHandler: jobs.StopScheduler,

		WebServerPreHandler: func(r *gin.Engine) {
			r.Use(cors.New(cors.Config{
				AllowOrigins:  []string{"*"},
				AllowMethods:  []string{"GET", "POST", "OPTIONS"},
				AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-ID"},
				ExposeHeaders: []string{"X-Request-ID"},
			}))
			routes.Routes(r, cfg.PublicDir)
		},
	}
	startServer(options)
}
