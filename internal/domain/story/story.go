// Package story reconstructs the factual outcome of one driver in one
// race from the relational store: identity-safe row selection, status
// decoding, and the start-to-finish position delta.
package story

import (
	"context"
	"fmt"

	"github.com/okian/paddock/internal/domain/identity"
	"github.com/okian/paddock/internal/domain/model"
)

// pitLaneGrid substitutes for a recorded grid of 0 when computing the
// position delta. The raw grid value is still reported verbatim.
const pitLaneGrid = 20

// View is the read-only slice of the relational store this package needs.
type View interface {
	identity.View
	Race(ctx context.Context, raceID int) (model.Race, error)
	Constructor(ctx context.Context, constructorID int) (model.Constructor, error)
}

// Fact is the reconstructed outcome record for one race appearance.
type Fact struct {
	Year   int
	GPName string
	Date   string
	Driver string // full name as requested
	Team   string
	Grid   int // raw recorded grid, 0 preserved
	Finish int
	Status string
	Delta  int // positive = places gained
}

// Reconstruct derives the outcome fact for the driver with the given full
// name in the given race. A driver who did not start that race yields
// ErrNotFound, which callers must treat as a normal outcome. For a pair
// present in the data the result is deterministic and side-effect-free.
func Reconstruct(ctx context.Context, view View, raceID int, fullName string) (Fact, error) {
	results, err := view.ResultsForRace(ctx, raceID)
	if err != nil {
		return Fact{}, fmt.Errorf("load results for race %d: %w", raceID, err)
	}

	// Match on the full name only; surname matching would cross-contaminate
	// drivers who share one.
	var row model.Result
	found := false
	for _, res := range results {
		driver, err := view.Driver(ctx, res.DriverID)
		if err != nil {
			return Fact{}, fmt.Errorf("resolve driver %d: %w", res.DriverID, err)
		}
		if identity.FullName(driver) == fullName {
			row = res
			found = true
			break
		}
	}
	if !found {
		return Fact{}, fmt.Errorf("race %d, driver %q: %w", raceID, fullName, ErrNotFound)
	}

	constructor, err := view.Constructor(ctx, row.ConstructorID)
	if err != nil {
		return Fact{}, fmt.Errorf("resolve constructor %d: %w", row.ConstructorID, err)
	}
	race, err := view.Race(ctx, raceID)
	if err != nil {
		return Fact{}, fmt.Errorf("resolve race %d: %w", raceID, err)
	}

	effectiveGrid := row.Grid
	if effectiveGrid == 0 {
		effectiveGrid = pitLaneGrid
	}

	return Fact{
		Year:   race.Year,
		GPName: race.Name,
		Date:   race.Date,
		Driver: fullName,
		Team:   constructor.Name,
		Grid:   row.Grid,
		Finish: row.PositionOrder,
		Status: DecodeStatus(row.StatusID),
		Delta:  effectiveGrid - row.PositionOrder,
	}, nil
}
