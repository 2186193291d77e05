// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/okian/paddock/internal/domain/types"
)

// ArchiveDependencies defines the interface for archive browsing.
type ArchiveDependencies interface {
	Seasons(ctx context.Context) ([]int, error)
	RacesForSeason(ctx context.Context, year int) ([]types.Race, error)
	DriversInRace(ctx context.Context, raceID int) ([]string, error)
}

// ArchiveHandler handles season/race/driver listing requests.
type ArchiveHandler struct {
	deps ArchiveDependencies
}

// NewArchiveHandler creates a new archive handler.
func NewArchiveHandler(deps ArchiveDependencies) *ArchiveHandler {
	return &ArchiveHandler{deps: deps}
}

// HandleGetSeasons handles GET /seasons requests.
func (h *ArchiveHandler) HandleGetSeasons(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	years, err := h.deps.Seasons(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, years)
}

// HandleGetRaces handles GET /races?year=N requests.
func (h *ArchiveHandler) HandleGetRaces(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	races, err := h.deps.RacesForSeason(r.Context(), year)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, races)
}

// HandleGetDrivers handles GET /drivers?race_id=N requests.
func (h *ArchiveHandler) HandleGetDrivers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	raceID, err := strconv.Atoi(r.URL.Query().Get("race_id"))
	if err != nil || raceID < 1 {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	drivers, err := h.deps.DriversInRace(r.Context(), raceID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, drivers)
}
