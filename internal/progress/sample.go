package progress

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// Sample is one completed form-analysis session, as reported by the
// mobile app after a pose-analysis run. Samples are immutable once
// created, the engine never mutates its input.
type Sample struct {
	ID           int               `json:"id"`
	ExerciseType string            `json:"exerciseType"`
	OverallScore float64           `json:"overallScore"`
	Confidence   *float64          `json:"confidence,omitempty"`
	AnalyzedAt   time.Time         `json:"analyzedAt"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

var (
	ErrSampleNotFound = errors.New("sample not found")
	ErrInvalidSample  = errors.New("invalid sample")
)

// Validate fails fast on malformed input shape, silently coercing bad
// data would corrupt all downstream statistics.
func (s Sample) Validate() error {
	if s.ExerciseType == "" {
		return fmt.Errorf("%w: exercise type empty", ErrInvalidSample)
	}
	if s.OverallScore < 0 || s.OverallScore > 100 {
		return fmt.Errorf("%w: overall score %f out of range [0, 100]", ErrInvalidSample, s.OverallScore)
	}
	if s.Confidence != nil && (*s.Confidence < 0 || *s.Confidence > 1) {
		return fmt.Errorf("%w: confidence %f out of range [0, 1]", ErrInvalidSample, *s.Confidence)
	}
	return nil
}

// sortedByTime returns a copy of samples sorted by AnalyzedAt ascending.
// Samples may arrive in any order, so every order-sensitive algorithm
// (trend, streaks, before/after split) sorts first.
func sortedByTime(samples []Sample) []Sample {
	sorted := make([]Sample, len(samples))
	copy(sorted, samples)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AnalyzedAt.Before(sorted[j].AnalyzedAt)
	})
	return sorted
}

func scoresOf(samples []Sample) []float64 {
	scores := make([]float64, len(samples))
	for i, s := range samples {
		scores[i] = s.OverallScore
	}
	return scores
}

func bestScoreOf(samples []Sample) float64 {
	var best float64
	for _, s := range samples {
		if s.OverallScore > best {
			best = s.OverallScore
		}
	}
	return best
}
