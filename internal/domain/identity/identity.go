// Package identity resolves display identities for race appearances.
//
// Surnames collide across eras, so the full name (forename + surname) is
// the only key safe for event-scoped lookups. Surname-only matching is
// confined to the statistics layer, whose upstream store is itself keyed
// by surname.
package identity

import (
	"context"
	"fmt"
	"sort"

	"github.com/okian/paddock/internal/domain/model"
)

// View is the read-only slice of the relational store this package needs.
type View interface {
	ResultsForRace(ctx context.Context, raceID int) ([]model.Result, error)
	Driver(ctx context.Context, driverID int) (model.Driver, error)
}

// FullName builds the disambiguated display identity for a driver.
func FullName(d model.Driver) string {
	return fmt.Sprintf("%s %s", d.Forename, d.Surname)
}

// DriversInRace returns the sorted, de-duplicated full names of every
// driver with a result row in the given race.
func DriversInRace(ctx context.Context, view View, raceID int) ([]string, error) {
	results, err := view.ResultsForRace(ctx, raceID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(results))
	names := make([]string, 0, len(results))
	for _, res := range results {
		driver, err := view.Driver(ctx, res.DriverID)
		if err != nil {
			return nil, err
		}
		name := FullName(driver)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}
