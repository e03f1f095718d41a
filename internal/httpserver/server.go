// server.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements a compact HTTP server that receives JSON
// encoded generate/analyse requests and returns JSON encoded
// responses, in the idiom of the teacher's server.go, adapted to the
// generate/analyse contracts of this spec instead of move generation.

package httpserver

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/vthorsteinsson/goboggle"
	"github.com/vthorsteinsson/goboggle/internal/history"
)

// Server bundles the dependencies the HTTP handlers need: a loaded
// dictionary, the analyse cache, and a (possibly no-op) history
// store.
type Server struct {
	Dict     *boggle.Dictionary
	Cache    *boggle.AnalyseCache
	History  history.Store
	Secret   string
	Origins  string
}

// Router builds the chi router for this Server.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)
	r.Use(cors(s.Origins))

	r.Post("/generate", s.handleGenerate)
	r.Post("/analyse", s.handleAnalyse)
	r.With(requireAdminToken(s.Secret)).Get("/history", s.handleHistory)

	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request handled")
	})
}

// generateRequest is the JSON body for POST /generate.
type generateRequest struct {
	Dice        []string          `json:"dice"`
	ScoreTable  []int             `json:"score_table"`
	Width       int               `json:"width"`
	Height      int               `json:"height"`
	MinWords    int               `json:"min_words"`
	MaxWords    int               `json:"max_words"`
	MinScore    int               `json:"min_score"`
	MaxScore    int               `json:"max_score"`
	MinLongest  int               `json:"min_longest"`
	MaxLongest  int               `json:"max_longest"`
	MinLegalLen int               `json:"min_legal_len"`
	MaxTries    int               `json:"max_tries"`
	Seed        int64             `json:"seed"`
	Prefilter   bool              `json:"prefilter"`
}

type generateResponse struct {
	Words      []string `json:"words"`
	DiceLayout string   `json:"dice_layout"`
	Tries      int      `json:"tries"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	dice := make(boggle.DiceSet, len(req.Dice))
	for i, d := range req.Dice {
		dice[i] = boggle.Die(d)
	}
	constraints := boggle.Constraints{
		MinWords:    req.MinWords,
		MaxWords:    req.MaxWords,
		MinScore:    req.MinScore,
		MaxScore:    req.MaxScore,
		MinLongest:  req.MinLongest,
		MaxLongest:  req.MaxLongest,
		MinLegalLen: req.MinLegalLen,
	}
	rng := rand.New(rand.NewSource(req.Seed))

	result, ok, err := boggle.Generate(
		s.Dict, req.ScoreTable, req.Width, req.Height,
		constraints, req.MaxTries, dice, rng, req.Prefilter,
	)
	if err != nil {
		writeStructuralError(w, err)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if s.History != nil {
		scoreTable := boggle.ScoreTable(req.ScoreTable)
		score, longest := 0, 0
		for _, word := range result.Words {
			score += scoreTable.ScoreFor(len(word))
			if len(word) > longest {
				longest = len(word)
			}
		}
		rec := history.Record{
			Width: req.Width, Height: req.Height,
			Layout: result.DiceLayout, NumWords: len(result.Words),
			Score: score, Longest: longest,
			Tries: result.Tries, CreatedAt: time.Now(),
		}
		if err := s.History.Record(r.Context(), rec); err != nil {
			log.Warn().Err(err).Msg("failed to record generation history")
		}
	}

	writeJSON(w, generateResponse{
		Words:      result.Words,
		DiceLayout: result.DiceLayout,
		Tries:      result.Tries,
	})
}

type analyseRequest struct {
	ScoreTable []int  `json:"score_table"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Layout     string `json:"layout"`
}

type analyseResponse struct {
	Words []string `json:"words"`
}

func (s *Server) handleAnalyse(w http.ResponseWriter, r *http.Request) {
	var req analyseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var (
		words []string
		err   error
	)
	if s.Cache != nil {
		words, err = s.Cache.Analyse(s.Dict, req.ScoreTable, req.Width, req.Height, req.Layout)
	} else {
		words, err = boggle.Analyse(s.Dict, req.ScoreTable, req.Width, req.Height, req.Layout)
	}
	if err != nil {
		writeStructuralError(w, err)
		return
	}
	writeJSON(w, analyseResponse{Words: words})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 20
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	store := s.History
	if store == nil {
		store = history.Noop()
	}
	recs, err := store.Recent(ctx, limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, recs)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// writeStructuralError maps the structural errors of spec.md section
// 7 to HTTP status codes; BudgetExhausted never reaches here, since
// Generate signals it with (false, nil) rather than an error.
func writeStructuralError(w http.ResponseWriter, err error) {
	switch err.(type) {
	case *boggle.BadDie, *boggle.BoardTooLarge:
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
