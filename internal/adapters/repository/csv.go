package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/okian/paddock/internal/domain/model"
)

// Table file names expected inside the data directory. The layout mirrors
// the upstream Kaggle export the service is fed with.
const (
	resultsFile      = "results.csv"
	racesFile        = "races.csv"
	driversFile      = "drivers.csv"
	constructorsFile = "constructors.csv"
)

// nullLiteral is the upstream marker for a missing value.
const nullLiteral = `\N`

// LoadDir reads the four relational tables from dir and builds a
// MemoryStore. A missing directory or table file is a hard failure: no
// computation is possible without the store, and nothing is fabricated.
func LoadDir(_ context.Context, dir string) (*MemoryStore, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("%w: data directory %q: %w", ErrUnavailable, dir, err)
	}

	results, err := readResults(filepath.Join(dir, resultsFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	races, err := readRaces(filepath.Join(dir, racesFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	drivers, err := readDrivers(filepath.Join(dir, driversFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	constructors, err := readConstructors(filepath.Join(dir, constructorsFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return NewMemoryStore(results, races, drivers, constructors), nil
}

// readTable opens a CSV file and returns its rows as column-name maps.
func readTable(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.ReuseRecord = false

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", filepath.Base(path), err)
	}

	var rows []map[string]string
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		// A malformed row (bad quoting, field-count mismatch) must fail
		// the whole load; a truncated table is fabricated data.
		if err != nil {
			return nil, fmt.Errorf("read row of %s: %w", filepath.Base(path), err)
		}
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func readResults(path string) ([]model.Result, error) {
	rows, err := readTable(path)
	if err != nil {
		return nil, err
	}
	results := make([]model.Result, 0, len(rows))
	for _, row := range rows {
		results = append(results, model.Result{
			RaceID:        atoi(row["raceId"]),
			DriverID:      atoi(row["driverId"]),
			ConstructorID: atoi(row["constructorId"]),
			Grid:          atoi(row["grid"]),
			PositionOrder: atoi(row["positionOrder"]),
			Points:        atof(row["points"]),
			Laps:          atoi(row["laps"]),
			StatusID:      atoi(row["statusId"]),
		})
	}
	return results, nil
}

func readRaces(path string) ([]model.Race, error) {
	rows, err := readTable(path)
	if err != nil {
		return nil, err
	}
	races := make([]model.Race, 0, len(rows))
	for _, row := range rows {
		races = append(races, model.Race{
			ID:    atoi(row["raceId"]),
			Year:  atoi(row["year"]),
			Round: atoi(row["round"]),
			Name:  row["name"],
			Date:  row["date"],
		})
	}
	return races, nil
}

func readDrivers(path string) ([]model.Driver, error) {
	rows, err := readTable(path)
	if err != nil {
		return nil, err
	}
	drivers := make([]model.Driver, 0, len(rows))
	for _, row := range rows {
		drivers = append(drivers, model.Driver{
			ID:          atoi(row["driverId"]),
			Forename:    row["forename"],
			Surname:     row["surname"],
			Code:        row["code"],
			Nationality: row["nationality"],
		})
	}
	return drivers, nil
}

func readConstructors(path string) ([]model.Constructor, error) {
	rows, err := readTable(path)
	if err != nil {
		return nil, err
	}
	constructors := make([]model.Constructor, 0, len(rows))
	for _, row := range rows {
		constructors = append(constructors, model.Constructor{
			ID:   atoi(row["constructorId"]),
			Name: row["name"],
		})
	}
	return constructors, nil
}

// atoi parses an integer cell, mapping the upstream null marker and
// malformed values to 0 the way the original tables are consumed.
func atoi(s string) int {
	if s == "" || s == nullLiteral {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// atof parses a float cell with the same null handling as atoi.
func atof(s string) float64 {
	if s == "" || s == nullLiteral {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
