// Package model contains domain models passed between layers.
package model

// Result represents one driver's classified outcome in one race.
// Fields mirror the columns of the upstream results table.
type Result struct {
	RaceID        int     // race the row belongs to
	DriverID      int     // subject driver identifier
	ConstructorID int     // team the driver raced for
	Grid          int     // starting position; 0 means no recorded grid / pit-lane start
	PositionOrder int     // finishing order, 1-based
	Points        float64 // championship points awarded
	Laps          int     // laps completed
	StatusID      int     // status code describing how the race ended
}

// Race represents a single event within a season.
type Race struct {
	ID    int
	Year  int
	Round int
	Name  string
	Date  string
}

// Driver identifies a competitor. Surname alone is not unique across
// eras; forename plus surname is the disambiguation key.
type Driver struct {
	ID          int
	Forename    string
	Surname     string
	Code        string
	Nationality string
}

// Constructor represents a team entry.
type Constructor struct {
	ID   int
	Name string
}

// Profile is one driver's statistical summary from the knowledge store.
// The store is keyed by bare surname; that granularity is an upstream
// limitation and is deliberately not second-guessed here.
//
// Nullable statistics are pointers so that a missing value can be told
// apart from a genuine zero when features are built.
type Profile struct {
	Surname     string   `json:"surname"`
	Races       int      `json:"races"`
	AvgFinish   *float64 `json:"avg_finish"`
	FinishStd   *float64 `json:"finish_std"`
	DeltaVsTeam *float64 `json:"delta_vs_team"`
	TeamName    string   `json:"team_name"`
}
