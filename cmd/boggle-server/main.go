// main.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// Boggle HTTP service entry point, in the idiom of the teacher's
// go-app/main.go: reads its configuration from the environment,
// loads the dictionary once, and serves generate/analyse/history
// over HTTP.

package main

import (
	"context"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog/log"

	"github.com/vthorsteinsson/goboggle"
	"github.com/vthorsteinsson/goboggle/internal/config"
	"github.com/vthorsteinsson/goboggle/internal/httpserver"
)

func main() {
	cfg := config.Load()
	cfg.InitLogging()

	log.Info().Str("go_version", runtime.Version()).Msg("boggle-server starting")

	dict, err := boggle.Load(cfg.DictPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DictPath).Msg("failed to load dictionary")
	}
	log.Info().Int("nodes", dict.NumNodes()).Msg("dictionary loaded")

	store, err := cfg.OpenHistoryStore(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open generation history store")
	}
	defer store.Close()

	srv := &httpserver.Server{
		Dict:    dict,
		Cache:   boggle.NewAnalyseCache(1024),
		History: store,
		Secret:  cfg.AdminTokenSecret,
		Origins: cfg.AllowedOrigins,
	}

	log.Info().Str("port", cfg.Port).Msg("listening")
	if err := http.ListenAndServe(":"+cfg.Port, srv.Router()); err != nil {
		log.Fatal().Err(err).Msg("server exited")
		os.Exit(1)
	}
}
