// Package similarity ranks driver profiles by how close their statistical
// footprint is to a target driver's, using cosine similarity over a fixed
// 4-dimensional feature vector (pace, consistency, skill, experience).
package similarity

import (
	"math"

	"github.com/okian/paddock/internal/domain/model"
)

// Feature construction anchors. Every dimension is oriented so that a
// larger value means more of the underlying quality, which keeps high
// performers close to high performers after scaling.
const (
	paceAnchor        = 22.0 // idealized 21-place grid: winning averages score highest
	consistencyAnchor = 15.0 // idealized ceiling on finishing-position spread
)

// Feature vector dimensions.
const (
	dimPace = iota
	dimConsistency
	dimSkill
	dimExperience
	dimCount
)

// buildFeatures maps each profile to a raw feature vector. Missing source
// statistics become NaN here and are replaced by the column mean in
// fillMissing before any scaling happens.
func buildFeatures(population []model.Profile) [][]float64 {
	matrix := make([][]float64, len(population))
	for i, p := range population {
		row := make([]float64, dimCount)
		row[dimPace] = paceAnchor - orNaN(p.AvgFinish)
		row[dimConsistency] = consistencyAnchor - orNaN(p.FinishStd)
		row[dimSkill] = -1 * orNaN(p.DeltaVsTeam)
		row[dimExperience] = float64(p.Races)
		matrix[i] = row
	}
	fillMissing(matrix)
	return matrix
}

// orNaN dereferences an optional statistic, mapping absence to NaN.
func orNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

// fillMissing replaces NaN cells with the arithmetic mean of the observed
// values in the same column. A column with no observed values fills with 0
// so no feature enters normalization undefined.
func fillMissing(matrix [][]float64) {
	for dim := 0; dim < dimCount; dim++ {
		var sum float64
		var n int
		for _, row := range matrix {
			if !math.IsNaN(row[dim]) {
				sum += row[dim]
				n++
			}
		}
		mean := 0.0
		if n > 0 {
			mean = sum / float64(n)
		}
		for _, row := range matrix {
			if math.IsNaN(row[dim]) {
				row[dim] = mean
			}
		}
	}
}

// minMaxScale rescales each column independently to [0, 1] over the whole
// population. A zero-variance column maps to constant 0 for every row to
// avoid division by zero. Bounds are derived from the given matrix only;
// nothing is cached across populations.
func minMaxScale(matrix [][]float64) {
	for dim := 0; dim < dimCount; dim++ {
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, row := range matrix {
			lo = math.Min(lo, row[dim])
			hi = math.Max(hi, row[dim])
		}
		span := hi - lo
		for _, row := range matrix {
			if span == 0 {
				row[dim] = 0
				continue
			}
			row[dim] = (row[dim] - lo) / span
		}
	}
}

// cosine returns the cosine similarity of two equal-length vectors.
// Similarity against a zero vector is defined as 0 rather than NaN, which
// covers single-row populations and degenerate scaling.
func cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	s := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	// Scaled features are non-negative, so cosine lives in [0, 1];
	// clamp to absorb floating-point drift at the boundaries.
	return math.Max(0, math.Min(1, s))
}
