package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/konstantinosKokos/lassy-tlg-extraction/alpino"
	"github.com/konstantinosKokos/lassy-tlg-extraction/cache"
	"github.com/konstantinosKokos/lassy-tlg-extraction/extract"
	"github.com/konstantinosKokos/lassy-tlg-extraction/results"
	"github.com/konstantinosKokos/lassy-tlg-extraction/storage"
)

const (
	maxTreeBytes    = 10 << 20
	lookupCacheSize = 4096
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "serve extraction and lexicon lookups over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "db", Required: true, Usage: "SQLite lexicon database `FILE`"},
			&cli.StringFlag{Name: "addr", Value: ":8080", Usage: "listen `ADDRESS`"},
			&cli.BoolFlag{Name: "quiet", Usage: "log warnings only"},
		},
		Action: runServe,
	}
}

func runServe(c *cli.Context) error {
	logger := newLogger(c.Bool("quiet"))

	store, err := storage.Open(c.String("db"))
	if err != nil {
		return err
	}
	defer store.Close()

	s := &server{
		store:    store,
		cache:    cache.NewLookupCache(lookupCacheSize),
		pipeline: extract.NewPipeline(extract.DefaultConfig()),
		logger:   logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/extract", s.handleExtract)
	mux.HandleFunc("/api/lexicon", s.handleLexicon)
	mux.HandleFunc("/api/stats", s.handleStats)

	addr := c.String("addr")
	logger.Info().Str("addr", addr).Msg("listening")
	return http.ListenAndServe(addr, cors.Default().Handler(mux))
}

type server struct {
	store    *storage.Store
	cache    *cache.LookupCache
	pipeline *extract.Pipeline
	logger   zerolog.Logger
}

type extractResponse struct {
	Sentence string            `json:"sentence"`
	Lexica   [][]results.Entry `json:"lexica"`
	Warnings []string          `json:"warnings,omitempty"`
}

type statsResponse struct {
	Database storage.Stats `json:"database"`
	Cache    cache.Stats   `json:"cache"`
}

// handleExtract runs the pipeline on a raw alpino_ds document.
func (s *server) handleExtract(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("POST required"))
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxTreeBytes))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("read body: %w", err))
		return
	}
	tree, err := alpino.Parse(body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	out, err := s.pipeline.Run(tree)
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	resp := extractResponse{
		Sentence: tree.Sentence.Text,
		Lexica:   results.FromLexica(out.Lexica),
	}
	for _, warn := range out.Warnings {
		resp.Warnings = append(resp.Warnings, warn.String())
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// handleLexicon serves the stored types of one word.
func (s *server) handleLexicon(w http.ResponseWriter, r *http.Request) {
	word := r.URL.Query().Get("word")
	if word == "" {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("word parameter required"))
		return
	}

	counts, err := s.cache.GetOrLookup(word, func() ([]storage.TypeCount, error) {
		return s.store.LookupWord(word)
	})
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"word":  word,
		"types": counts,
	})
}

// handleStats serves the database totals and cache counters.
func (s *server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.Stats()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, statsResponse{
		Database: stats,
		Cache:    s.cache.Stats(),
	})
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn().Err(err).Msg("write response")
	}
}

func (s *server) writeError(w http.ResponseWriter, status int, err error) {
	s.logger.Warn().Int("status", status).Err(err).Msg("request failed")
	s.writeJSON(w, status, map[string]string{
		"error":  results.Kind(err),
		"detail": err.Error(),
	})
}
