package similarity

import (
	"context"
	"sort"

	"github.com/okian/paddock/internal/domain/model"
)

// defaultTopK caps the number of matches returned per ranking request.
const defaultTopK = 3

// Match pairs a driver profile with its cosine similarity to the target.
type Match struct {
	Profile model.Profile
	Score   float64
}

// Option applies a configuration option to the Ranker.
type Option func(*Ranker)

// WithTopK sets the maximum number of matches returned per request.
func WithTopK(k int) Option {
	return func(r *Ranker) {
		if k > 0 {
			r.topK = k
		}
	}
}

// Ranker computes similarity rankings over a profile population. It holds
// no mutable state between calls, so a single instance is safe for
// concurrent use.
type Ranker struct {
	topK int
}

// NewRanker creates a new ranker with configuration options.
func NewRanker(opts ...Option) *Ranker {
	r := &Ranker{
		topK: defaultTopK,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Rank returns the profiles most similar to the target surname, best
// first, capped at the configured top-k and never including the target
// itself. An unknown surname yields an empty slice: a no-match signal for
// callers, not a fault.
//
// The feature matrix, scaling bounds, and scores are all rebuilt from the
// given population on every call, so two calls with identical input
// produce identical ordered output. Ties keep population order.
func (r *Ranker) Rank(_ context.Context, targetSurname string, population []model.Profile) []Match {
	targetIdx := -1
	for i, p := range population {
		if p.Surname == targetSurname {
			targetIdx = i
			break
		}
	}
	if targetIdx == -1 {
		return nil
	}

	matrix := buildFeatures(population)
	minMaxScale(matrix)

	target := matrix[targetIdx]
	matches := make([]Match, 0, len(population)-1)
	for i, row := range matrix {
		if i == targetIdx {
			continue
		}
		matches = append(matches, Match{
			Profile: population[i],
			Score:   cosine(target, row),
		})
	}

	// Stable: equal scores keep their population ordering.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > r.topK {
		matches = matches[:r.topK]
	}
	return matches
}
