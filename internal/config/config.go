// config.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file reads process configuration from the environment,
// optionally preloaded from a .env file in local development, in the
// same style as the teacher's go-app/main.go ACCESS_KEY/PORT/
// ALLOWED_ORIGINS handling.

package config

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vthorsteinsson/goboggle/internal/history"
)

// Config holds process-wide settings. Only this package reads the
// environment, on behalf of cmd/boggle-server; the core boggle
// package never does.
type Config struct {
	DictPath          string
	Port              string
	AllowedOrigins    string
	AdminTokenSecret  string
	HistoryBackend    string // "datastore" | "sqlite" | "none"
	HistorySqlitePath string
	GoogleCloudProject string
	DatastoreNamespace string
	LogLevel          string
}

// Load reads .env (if present) and then the environment, applying
// defaults for anything unset.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		DictPath:           getEnv("BOGGLE_DICT_PATH", "dicts/english.dawg"),
		Port:               getEnv("PORT", "8080"),
		AllowedOrigins:     getEnv("ALLOWED_ORIGINS", "*"),
		AdminTokenSecret:   getEnv("ADMIN_TOKEN_SECRET", ""),
		HistoryBackend:     getEnv("HISTORY_BACKEND", "none"),
		HistorySqlitePath:  getEnv("HISTORY_SQLITE_PATH", "./data/history.db"),
		GoogleCloudProject: getEnv("GOOGLE_CLOUD_PROJECT", ""),
		DatastoreNamespace: getEnv("DATASTORE_NAMESPACE", ""),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// InitLogging applies c.LogLevel as the global zerolog level, falling
// back silently to the existing level if the value does not parse.
func (c Config) InitLogging() {
	if lvl, err := zerolog.ParseLevel(c.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
}

// OpenHistoryStore builds the history.Store selected by
// c.HistoryBackend, or a no-op store for "none" (the default).
func (c Config) OpenHistoryStore(ctx context.Context) (history.Store, error) {
	switch c.HistoryBackend {
	case "none", "":
		return history.Noop(), nil
	case "sqlite":
		store, err := history.NewSqliteStore(c.HistorySqlitePath)
		if err != nil {
			return nil, err
		}
		log.Info().Str("path", c.HistorySqlitePath).Msg("generation history: sqlite backend opened")
		return store, nil
	case "datastore":
		store, err := history.NewDatastoreStore(ctx, c.GoogleCloudProject, c.DatastoreNamespace)
		if err != nil {
			return nil, err
		}
		log.Info().Str("project", c.GoogleCloudProject).Msg("generation history: datastore backend opened")
		return store, nil
	default:
		return nil, fmt.Errorf("config: unknown HISTORY_BACKEND %q", c.HistoryBackend)
	}
}
