package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Server
	Port            string
	PublicDir       string
	ShutdownTimeout time.Duration

	// Mongo
	MongoURI            string
	MongoDatabase       string
	MongoConnectTimeout time.Duration
	PatientCollection   string
	RxCollection        string

	// Relationship
	LinkMode string

	// Logging
	LogLevel string

	// Startup tasks
	MigrationsEnabled   bool
	SchedulerEnabled    bool
	OrphanAuditSchedule string
}

// Load reads the process environment. godotenv has already merged any .env
// file into it by the time this runs.
func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "3000"),
		PublicDir:       getEnv("PUBLIC_DIR", "public"),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		MongoURI:            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase:       getEnv("MONGODB_DATABASE", "rx"),
		MongoConnectTimeout: getDuration("MONGODB_CONNECT_TIMEOUT", 10*time.Second),
		PatientCollection:   getEnv("PATIENT_COLLECTION", "patients"),
		RxCollection:        getEnv("RX_COLLECTION", "rxes"),

		LinkMode: getEnv("RX_LINK_MODE", "fragments"),

		LogLevel: getEnv("LOG_LEVEL", "info"),

		MigrationsEnabled:   getBoolEnv("MIGRATIONS_ENABLED", true),
		SchedulerEnabled:    getBoolEnv("SCHEDULER_ENABLED", true),
		OrphanAuditSchedule: getEnv("ORPHAN_AUDIT_SCHEDULE", "0 * * * *"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
