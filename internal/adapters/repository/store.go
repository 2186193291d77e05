// Package repository holds the read-only relational store and its loaders.
package repository

import (
	"context"

	"github.com/okian/paddock/internal/domain/model"
)

// Store provides read access to the four relational tables. Every method
// is safe for concurrent use: the underlying tables never change after a
// store has been handed to readers.
type Store interface {
	// Race returns the race row for an id.
	// Returns ErrNotFound if the race is unknown.
	Race(ctx context.Context, raceID int) (model.Race, error)

	// ResultsForRace returns every result row recorded for a race.
	// A race with no rows yields an empty slice, not an error.
	ResultsForRace(ctx context.Context, raceID int) ([]model.Result, error)

	// Driver returns the driver row for an id.
	// Returns ErrNotFound if the driver is unknown.
	Driver(ctx context.Context, driverID int) (model.Driver, error)

	// Constructor returns the constructor row for an id.
	// Returns ErrNotFound if the constructor is unknown.
	Constructor(ctx context.Context, constructorID int) (model.Constructor, error)

	// Seasons returns every season year present in the races table,
	// newest first.
	Seasons(ctx context.Context) []int

	// RacesForSeason returns the races of one season ordered by round.
	RacesForSeason(ctx context.Context, year int) []model.Race

	// Counts returns per-table row counts for monitoring.
	Counts(ctx context.Context) map[string]int
}
