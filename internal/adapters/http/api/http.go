// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	repository "github.com/okian/paddock/internal/adapters/repository"
	"github.com/okian/paddock/internal/domain/story"
	"github.com/okian/paddock/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// SimilarDrivers returns the ranked matches for a surname; an empty
	// slice is a valid no-match answer.
	SimilarDrivers(ctx context.Context, surname string) ([]types.Match, error)

	// RaceStory reconstructs one driver's outcome in one race.
	RaceStory(ctx context.Context, raceID int, fullName string) (types.Story, error)

	// Archive browsing.
	Seasons(ctx context.Context) ([]int, error)
	RacesForSeason(ctx context.Context, year int) ([]types.Race, error)
	DriversInRace(ctx context.Context, raceID int) ([]string, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	similarHandler *SimilarHandler
	storyHandler   *StoryHandler
	archiveHandler *ArchiveHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:  NewHealthHandler(),
		statsHandler:   NewStatsHandler(statsProvider),
		similarHandler: NewSimilarHandler(deps),
		storyHandler:   NewStoryHandler(deps),
		archiveHandler: NewArchiveHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", Middleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", Middleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/similar/", Middleware(s.similarHandler.HandleGetSimilar, "similar"))
	mux.HandleFunc("/story", Middleware(s.storyHandler.HandleGetStory, "story"))
	mux.HandleFunc("/seasons", Middleware(s.archiveHandler.HandleGetSeasons, "seasons"))
	mux.HandleFunc("/races", Middleware(s.archiveHandler.HandleGetRaces, "races"))
	mux.HandleFunc("/drivers", Middleware(s.archiveHandler.HandleGetDrivers, "drivers"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// isNotFound translates upstream not-found sentinels to 404 responses.
func isNotFound(err error) bool {
	return errors.Is(err, story.ErrNotFound) || errors.Is(err, repository.ErrNotFound)
}
