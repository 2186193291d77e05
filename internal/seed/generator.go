// Package seed generates a small deterministic data set for local
// development and smoke testing: the four relational CSV tables plus a
// driver knowledge file. The set includes a shared-surname driver pair
// so identity disambiguation is exercisable out of the box.
package seed

import (
	"context"
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/okian/paddock/internal/domain/model"
)

// Default generation parameters.
const (
	defaultSeasons    = 2
	defaultRounds     = 5
	defaultSeed       = 42
	firstSeason       = 2020
	raceLaps          = 58
	pitLaneChance     = 10 // one in N rows starts from the pit lane
	retirementChance  = 6  // one in N rows retires
	filePermissions   = 0o644
	dirPermissions    = 0o755
	knowledgeNullSlot = 2 // profile index carrying a null finish_std
)

// pointsByPosition awards championship points for the top finishers.
var pointsByPosition = []float64{25, 18, 15, 12, 10, 8, 6, 4, 2, 1}

// retirementStatuses are drawn for non-finishers.
var retirementStatuses = []int{3, 5, 6, 9, 20, 31}

var gpNames = []string{
	"Bahrain Grand Prix",
	"Monaco Grand Prix",
	"British Grand Prix",
	"Italian Grand Prix",
	"Abu Dhabi Grand Prix",
	"Japanese Grand Prix",
	"Brazilian Grand Prix",
}

// seedDrivers is the fixed grid. Two entries share a surname on purpose.
var seedDrivers = []model.Driver{
	{ID: 1, Forename: "Michael", Surname: "Schumacher", Code: "MSC", Nationality: "German"},
	{ID: 2, Forename: "Mick", Surname: "Schumacher", Code: "MSC", Nationality: "German"},
	{ID: 3, Forename: "Lewis", Surname: "Hamilton", Code: "HAM", Nationality: "British"},
	{ID: 4, Forename: "Fernando", Surname: "Alonso", Code: "ALO", Nationality: "Spanish"},
	{ID: 5, Forename: "Kimi", Surname: "Raikkonen", Code: "RAI", Nationality: "Finnish"},
	{ID: 6, Forename: "Max", Surname: "Verstappen", Code: "VER", Nationality: "Dutch"},
}

var seedConstructors = []model.Constructor{
	{ID: 1, Name: "Ferrari"},
	{ID: 2, Name: "Mercedes"},
	{ID: 3, Name: "Red Bull"},
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithSeasons sets the number of generated seasons.
func WithSeasons(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.seasons = n
		}
	}
}

// WithRounds sets the number of races per season.
func WithRounds(n int) Option {
	return func(g *Generator) {
		if n > 0 && n <= len(gpNames) {
			g.rounds = n
		}
	}
}

// WithSeed sets the RNG seed; equal seeds produce equal data sets.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic seed for reproducible data
	}
}

// Generator produces the synthetic data set.
type Generator struct {
	seasons int
	rounds  int
	rng     *rand.Rand
}

// New creates a generator with configuration options.
func New(opts ...Option) *Generator {
	g := &Generator{
		seasons: defaultSeasons,
		rounds:  defaultRounds,
		rng:     rand.New(rand.NewSource(defaultSeed)), //nolint:gosec // deterministic seed for reproducible data
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// WriteData writes the four relational CSV tables into dir.
func (g *Generator) WriteData(_ context.Context, dir string) error {
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	races, results := g.generate()

	if err := writeCSV(filepath.Join(dir, "drivers.csv"),
		[]string{"driverId", "forename", "surname", "code", "nationality"},
		len(seedDrivers), func(i int) []string {
			d := seedDrivers[i]
			return []string{itoa(d.ID), d.Forename, d.Surname, d.Code, d.Nationality}
		}); err != nil {
		return err
	}

	if err := writeCSV(filepath.Join(dir, "constructors.csv"),
		[]string{"constructorId", "name"},
		len(seedConstructors), func(i int) []string {
			c := seedConstructors[i]
			return []string{itoa(c.ID), c.Name}
		}); err != nil {
		return err
	}

	if err := writeCSV(filepath.Join(dir, "races.csv"),
		[]string{"raceId", "year", "round", "name", "date"},
		len(races), func(i int) []string {
			r := races[i]
			return []string{itoa(r.ID), itoa(r.Year), itoa(r.Round), r.Name, r.Date}
		}); err != nil {
		return err
	}

	return writeCSV(filepath.Join(dir, "results.csv"),
		[]string{"raceId", "driverId", "constructorId", "grid", "positionOrder", "points", "laps", "statusId"},
		len(results), func(i int) []string {
			r := results[i]
			return []string{
				itoa(r.RaceID), itoa(r.DriverID), itoa(r.ConstructorID),
				itoa(r.Grid), itoa(r.PositionOrder),
				fmt.Sprintf("%g", r.Points), itoa(r.Laps), itoa(r.StatusID),
			}
		})
}

// WriteKnowledge writes the surname-keyed statistics JSON to path.
func (g *Generator) WriteKnowledge(_ context.Context, path string) error {
	profiles := g.knowledgeProfiles()
	raw, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		return fmt.Errorf("encode knowledge: %w", err)
	}
	if err := os.WriteFile(path, raw, filePermissions); err != nil {
		return fmt.Errorf("write knowledge: %w", err)
	}
	return nil
}

// generate builds race and result rows for every configured season.
func (g *Generator) generate() ([]model.Race, []model.Result) {
	var races []model.Race
	var results []model.Result

	raceID := 0
	for season := 0; season < g.seasons; season++ {
		year := firstSeason + season
		for round := 1; round <= g.rounds; round++ {
			raceID++
			races = append(races, model.Race{
				ID:    raceID,
				Year:  year,
				Round: round,
				Name:  gpNames[round-1],
				Date:  fmt.Sprintf("%d-%02d-%02d", year, round+2, 1+g.rng.Intn(27)),
			})
			results = append(results, g.raceResults(raceID)...)
		}
	}
	return races, results
}

// raceResults shuffles the grid and the finishing order for one race.
func (g *Generator) raceResults(raceID int) []model.Result {
	n := len(seedDrivers)
	grid := g.rng.Perm(n)
	finish := g.rng.Perm(n)

	results := make([]model.Result, 0, n)
	for i, d := range seedDrivers {
		gridPos := grid[i] + 1
		if g.rng.Intn(pitLaneChance) == 0 {
			gridPos = 0 // pit-lane start: no recorded grid
		}

		pos := finish[i] + 1
		status := 1
		laps := raceLaps
		if g.rng.Intn(retirementChance) == 0 {
			status = retirementStatuses[g.rng.Intn(len(retirementStatuses))]
			laps = g.rng.Intn(raceLaps)
		}

		points := 0.0
		if status == 1 && pos <= len(pointsByPosition) {
			points = pointsByPosition[pos-1]
		}

		results = append(results, model.Result{
			RaceID:        raceID,
			DriverID:      d.ID,
			ConstructorID: 1 + (d.ID-1)%len(seedConstructors),
			Grid:          gridPos,
			PositionOrder: pos,
			Points:        points,
			Laps:          laps,
			StatusID:      status,
		})
	}
	return results
}

// knowledgeProfiles derives one statistical profile per seed driver.
// One entry carries a null finish_std so mean-fill stays exercisable.
func (g *Generator) knowledgeProfiles() []model.Profile {
	profiles := make([]model.Profile, 0, len(seedDrivers))
	for i, d := range seedDrivers {
		avg := 2 + g.rng.Float64()*12
		std := 1 + g.rng.Float64()*5
		delta := g.rng.Float64()*4 - 2

		p := model.Profile{
			Surname:     d.Surname,
			Races:       20 + g.rng.Intn(280),
			AvgFinish:   &avg,
			FinishStd:   &std,
			DeltaVsTeam: &delta,
			TeamName:    seedConstructors[(d.ID-1)%len(seedConstructors)].Name,
		}
		if i == knowledgeNullSlot {
			p.FinishStd = nil
		}
		profiles = append(profiles, p)
	}
	return profiles
}

// writeCSV writes header plus n rows produced by row.
func writeCSV(path string, header []string, n int, row func(i int) []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header of %s: %w", filepath.Base(path), err)
	}
	for i := 0; i < n; i++ {
		if err := w.Write(row(i)); err != nil {
			return fmt.Errorf("write row of %s: %w", filepath.Base(path), err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", filepath.Base(path), err)
	}
	return nil
}

func itoa(n int) string {
	return fmt.Sprintf("%d", n)
}
