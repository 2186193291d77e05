// Package types contains common types used across the application
package types

// Match is a similarity result: a driver profile plus its cosine score.
type Match struct {
	Surname         string  `json:"surname"`
	TeamName        string  `json:"team_name"`
	Races           int     `json:"races"`
	SimilarityScore float64 `json:"similarity_score"`
}

// Race summarizes one event for archive browsing.
type Race struct {
	ID    int    `json:"race_id"`
	Year  int    `json:"year"`
	Round int    `json:"round"`
	Name  string `json:"name"`
	Date  string `json:"date"`
}

// Story is the reconstructed factual outcome of one driver in one race.
type Story struct {
	Year   int    `json:"year"`
	GPName string `json:"gp_name"`
	Date   string `json:"date"`
	Driver string `json:"driver"`
	Team   string `json:"team"`
	Grid   int    `json:"grid"`
	Finish int    `json:"finish"`
	Status string `json:"status"`
	Delta  int    `json:"delta"`
}
