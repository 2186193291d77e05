// Package knowledge loads the surname-keyed driver statistics store.
//
// The upstream store is a JSON array of per-driver summaries keyed by
// bare surname. That key can collide across eras; the similarity layer
// accepts the coarseness because it matches the store's own granularity,
// while event-scoped lookups elsewhere use full names.
package knowledge

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"

	"github.com/okian/paddock/internal/domain/model"
)

// Store holds the loaded driver profile population. It is immutable once
// built and safe for concurrent readers.
type Store struct {
	profiles []model.Profile
}

// Load reads and decodes the knowledge file. A missing or malformed file
// is a hard failure: the ranker cannot run without its population.
func Load(_ context.Context, path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrUnavailable, path, err)
	}

	var profiles []model.Profile
	if err := json.Unmarshal(raw, &profiles); err != nil {
		return nil, fmt.Errorf("%w: decode %q: %w", ErrUnavailable, path, err)
	}

	return &Store{profiles: profiles}, nil
}

// NewStore builds a knowledge store from an in-memory population.
func NewStore(profiles []model.Profile) *Store {
	return &Store{profiles: profiles}
}

// Profiles returns the whole population in store order.
func (s *Store) Profiles() []model.Profile {
	return s.profiles
}

// ProfilesBySurname returns every profile matching the surname,
// case-insensitively. Multiple entries are possible: one driver can
// appear per team stint, and distinct drivers can share the surname.
func (s *Store) ProfilesBySurname(surname string) []model.Profile {
	var out []model.Profile
	for _, p := range s.profiles {
		if strings.EqualFold(p.Surname, surname) {
			out = append(out, p)
		}
	}
	return out
}

// Len returns the population size.
func (s *Store) Len() int {
	return len(s.profiles)
}
