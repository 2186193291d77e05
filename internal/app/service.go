// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/okian/paddock/internal/adapters/knowledge"
	repository "github.com/okian/paddock/internal/adapters/repository"
	"github.com/okian/paddock/internal/domain/identity"
	"github.com/okian/paddock/internal/domain/model"
	"github.com/okian/paddock/internal/domain/similarity"
	"github.com/okian/paddock/internal/domain/story"
	"github.com/okian/paddock/internal/domain/types"
	"github.com/okian/paddock/pkg/logger"
	"github.com/okian/paddock/pkg/metrics"
)

// ErrNotFound marks a lookup that matched nothing; callers branch on it
// rather than treating it as a fault.
var ErrNotFound = errors.New("not found")

// ErrNotStarted marks an operation invoked before Start has loaded the
// stores.
var ErrNotStarted = errors.New("service not started")

// Service implements the API dependencies for the insight system. All
// operations are pure reads over immutable snapshots, so any number of
// callers may run them concurrently.
type Service struct {
	mu sync.RWMutex

	// Core components
	storeCache *repository.Cache
	know       *knowledge.Store
	ranker     *similarity.Ranker

	// Configuration
	dataDir       string
	knowledgeFile string
	topK          int
	watchData     bool

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDataDir sets the relational table directory.
func WithDataDir(dir string) Option {
	return func(s *Service) {
		if dir != "" {
			s.dataDir = dir
		}
	}
}

// WithKnowledgeFile sets the driver statistics JSON path.
func WithKnowledgeFile(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.knowledgeFile = path
		}
	}
}

// WithTopK caps the number of similarity matches per request.
func WithTopK(k int) Option {
	return func(s *Service) {
		if k > 0 {
			s.topK = k
		}
	}
}

// WithDataWatch toggles modification-time reloads of the relational store.
func WithDataWatch(enabled bool) Option {
	return func(s *Service) {
		s.watchData = enabled
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		dataDir:       "data",
		knowledgeFile: "driver_knowledge.json",
		topK:          3,
		watchData:     true,
		logger:        nil, // Will be replaced when service starts
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start loads both stores and readies the ranking engine. Either store
// being unavailable is fatal: the service refuses to run on fabricated
// data.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting insight service...")

	s.storeCache = repository.NewCache(s.dataDir, repository.WithModTimeWatch(s.watchData))
	store, err := s.storeCache.Get(ctx)
	if err != nil {
		return fmt.Errorf("load relational store: %w", err)
	}

	know, err := knowledge.Load(ctx, s.knowledgeFile)
	if err != nil {
		return fmt.Errorf("load knowledge store: %w", err)
	}
	s.know = know
	metrics.UpdateKnowledgeProfiles(know.Len())

	s.ranker = similarity.NewRanker(similarity.WithTopK(s.topK))

	s.started = true
	counts := store.Counts(ctx)
	s.logger.Info(ctx, "insight service started",
		logger.Int("resultRows", counts["results"]),
		logger.Int("races", counts["races"]),
		logger.Int("drivers", counts["drivers"]),
		logger.Int("profiles", know.Len()),
		logger.Int("topK", s.topK),
	)

	return nil
}

// Stop shuts down the service. The stores are plain memory snapshots, so
// there is nothing to flush.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "insight service stopped")
}

// ready reports whether Start has completed; every operation checks it
// so calls before Start fail instead of dereferencing unloaded stores.
func (s *Service) ready() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return ErrNotStarted
	}
	return nil
}

// Reload drops the cached relational store so the next read reloads it.
// A no-op before Start.
func (s *Service) Reload(ctx context.Context) {
	if s.ready() != nil {
		return
	}
	s.storeCache.Invalidate()
	s.logger.Info(ctx, "relational store cache invalidated")
}

// SimilarDrivers ranks the knowledge population against the target
// surname. An unknown surname yields an empty slice, which callers must
// handle as a no-match outcome.
func (s *Service) SimilarDrivers(ctx context.Context, surname string) ([]types.Match, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	start := time.Now()
	ranked := s.ranker.Rank(ctx, surname, s.know.Profiles())
	metrics.RecordSimilarityRequest(len(ranked), float64(time.Since(start).Milliseconds()))

	matches := make([]types.Match, len(ranked))
	for i, m := range ranked {
		matches[i] = types.Match{
			Surname:         m.Profile.Surname,
			TeamName:        m.Profile.TeamName,
			Races:           m.Profile.Races,
			SimilarityScore: m.Score,
		}
	}
	return matches, nil
}

// RaceStory reconstructs the outcome of one driver (by full name) in one
// race. Returns ErrNotFound when the driver did not start that race.
func (s *Service) RaceStory(ctx context.Context, raceID int, fullName string) (types.Story, error) {
	if err := s.ready(); err != nil {
		return types.Story{}, err
	}

	store, err := s.storeCache.Get(ctx)
	if err != nil {
		return types.Story{}, err
	}

	start := time.Now()
	fact, err := story.Reconstruct(ctx, store, raceID, fullName)
	metrics.RecordStoryRequest(float64(time.Since(start).Milliseconds()))
	if err != nil {
		if errors.Is(err, story.ErrNotFound) || errors.Is(err, repository.ErrNotFound) {
			metrics.RecordStoryNotFound()
			return types.Story{}, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return types.Story{}, err
	}

	return types.Story{
		Year:   fact.Year,
		GPName: fact.GPName,
		Date:   fact.Date,
		Driver: fact.Driver,
		Team:   fact.Team,
		Grid:   fact.Grid,
		Finish: fact.Finish,
		Status: fact.Status,
		Delta:  fact.Delta,
	}, nil
}

// Seasons lists every recorded season year, newest first.
func (s *Service) Seasons(ctx context.Context) ([]int, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	store, err := s.storeCache.Get(ctx)
	if err != nil {
		return nil, err
	}
	return store.Seasons(ctx), nil
}

// RacesForSeason lists the races of one season ordered by round.
func (s *Service) RacesForSeason(ctx context.Context, year int) ([]types.Race, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	store, err := s.storeCache.Get(ctx)
	if err != nil {
		return nil, err
	}

	races := store.RacesForSeason(ctx, year)
	out := make([]types.Race, len(races))
	for i, r := range races {
		out[i] = types.Race{
			ID:    r.ID,
			Year:  r.Year,
			Round: r.Round,
			Name:  r.Name,
			Date:  r.Date,
		}
	}
	return out, nil
}

// DriversInRace lists the sorted full names of every driver who has a
// result row in the race.
func (s *Service) DriversInRace(ctx context.Context, raceID int) ([]string, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	store, err := s.storeCache.Get(ctx)
	if err != nil {
		return nil, err
	}
	return identity.DriversInRace(ctx, store, raceID)
}

// DriverProfiles returns the knowledge entries for a surname, for use as
// narration context by the explanation layer.
func (s *Service) DriverProfiles(_ context.Context, surname string) []model.Profile {
	if s.ready() != nil {
		return nil
	}
	return s.know.ProfilesBySurname(surname)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":  s.started,
		"topK":     s.topK,
		"dataDir":  s.dataDir,
		"profiles": 0,
	}
	if s.know != nil {
		stats["profiles"] = s.know.Len()
	}

	if s.started {
		if store, err := s.storeCache.Get(context.Background()); err == nil {
			for table, n := range store.Counts(context.Background()) {
				stats[table] = n
			}
		}
	}

	return stats
}
