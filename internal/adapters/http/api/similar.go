// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/okian/paddock/internal/domain/types"
)

// SimilarDependencies defines the interface for similarity lookups.
type SimilarDependencies interface {
	SimilarDrivers(ctx context.Context, surname string) ([]types.Match, error)
}

// SimilarHandler handles similarity ranking requests.
type SimilarHandler struct {
	deps SimilarDependencies
}

// NewSimilarHandler creates a new similarity handler.
func NewSimilarHandler(deps SimilarDependencies) *SimilarHandler {
	return &SimilarHandler{deps: deps}
}

// HandleGetSimilar handles GET /similar/{surname} requests.
// An unknown surname responds 200 with an empty array: consumers must
// treat "no match" as a normal outcome.
func (h *SimilarHandler) HandleGetSimilar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	// Extract path parameter after /similar/
	surname := strings.TrimPrefix(r.URL.Path, "/similar/")
	if surname == "" || strings.Contains(surname, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	matches, err := h.deps.SimilarDrivers(r.Context(), surname)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	if matches == nil {
		matches = []types.Match{}
	}
	writeJSON(w, http.StatusOK, matches)
}
