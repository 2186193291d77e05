package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/okian/paddock/internal/domain/model"
)

// MemoryStore is an immutable, index-backed Store over in-memory tables.
// Build one with NewMemoryStore or LoadDir and treat it as read-only.
type MemoryStore struct {
	results      []model.Result
	races        map[int]model.Race
	drivers      map[int]model.Driver
	constructors map[int]model.Constructor

	// resultsByRace indexes result rows by race id, preserving the
	// original table order within each race.
	resultsByRace map[int][]model.Result
}

// NewMemoryStore builds an in-memory store from raw table rows.
func NewMemoryStore(results []model.Result, races []model.Race, drivers []model.Driver, constructors []model.Constructor) *MemoryStore {
	s := &MemoryStore{
		results:       results,
		races:         make(map[int]model.Race, len(races)),
		drivers:       make(map[int]model.Driver, len(drivers)),
		constructors:  make(map[int]model.Constructor, len(constructors)),
		resultsByRace: make(map[int][]model.Result),
	}
	for _, r := range races {
		s.races[r.ID] = r
	}
	for _, d := range drivers {
		s.drivers[d.ID] = d
	}
	for _, c := range constructors {
		s.constructors[c.ID] = c
	}
	for _, res := range results {
		s.resultsByRace[res.RaceID] = append(s.resultsByRace[res.RaceID], res)
	}
	return s
}

// Race returns the race row for an id.
func (s *MemoryStore) Race(_ context.Context, raceID int) (model.Race, error) {
	race, ok := s.races[raceID]
	if !ok {
		return model.Race{}, fmt.Errorf("race %d: %w", raceID, ErrNotFound)
	}
	return race, nil
}

// ResultsForRace returns every result row recorded for a race.
func (s *MemoryStore) ResultsForRace(_ context.Context, raceID int) ([]model.Result, error) {
	return s.resultsByRace[raceID], nil
}

// Driver returns the driver row for an id.
func (s *MemoryStore) Driver(_ context.Context, driverID int) (model.Driver, error) {
	driver, ok := s.drivers[driverID]
	if !ok {
		return model.Driver{}, fmt.Errorf("driver %d: %w", driverID, ErrNotFound)
	}
	return driver, nil
}

// Constructor returns the constructor row for an id.
func (s *MemoryStore) Constructor(_ context.Context, constructorID int) (model.Constructor, error) {
	constructor, ok := s.constructors[constructorID]
	if !ok {
		return model.Constructor{}, fmt.Errorf("constructor %d: %w", constructorID, ErrNotFound)
	}
	return constructor, nil
}

// Seasons returns every season year present in the races table, newest first.
func (s *MemoryStore) Seasons(_ context.Context) []int {
	seen := make(map[int]struct{})
	years := make([]int, 0)
	for _, race := range s.races {
		if _, ok := seen[race.Year]; ok {
			continue
		}
		seen[race.Year] = struct{}{}
		years = append(years, race.Year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// RacesForSeason returns the races of one season ordered by round.
func (s *MemoryStore) RacesForSeason(_ context.Context, year int) []model.Race {
	races := make([]model.Race, 0)
	for _, race := range s.races {
		if race.Year == year {
			races = append(races, race)
		}
	}
	sort.Slice(races, func(i, j int) bool { return races[i].Round < races[j].Round })
	return races
}

// Counts returns per-table row counts for monitoring.
func (s *MemoryStore) Counts(_ context.Context) map[string]int {
	return map[string]int{
		"results":      len(s.results),
		"races":        len(s.races),
		"drivers":      len(s.drivers),
		"constructors": len(s.constructors),
	}
}
