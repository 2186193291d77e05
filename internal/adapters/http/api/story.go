// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/paddock/internal/domain/types"
)

// StoryDependencies defines the interface for story reconstruction.
type StoryDependencies interface {
	RaceStory(ctx context.Context, raceID int, fullName string) (types.Story, error)
}

// StoryHandler handles race story requests.
type StoryHandler struct {
	deps StoryDependencies
}

// NewStoryHandler creates a new story handler.
func NewStoryHandler(deps StoryDependencies) *StoryHandler {
	return &StoryHandler{deps: deps}
}

// HandleGetStory handles GET /story?race_id=N&driver=Full+Name requests.
// The driver parameter must be a full name; surnames are ambiguous at
// race scope and are rejected upstream by simply not matching.
func (h *StoryHandler) HandleGetStory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	raceID, err := strconv.Atoi(r.URL.Query().Get("race_id"))
	if err != nil || raceID < 1 {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	driver := strings.TrimSpace(r.URL.Query().Get("driver"))
	if driver == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	fact, err := h.deps.RaceStory(r.Context(), raceID, driver)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, fact)
}
