package progress

import (
	"math"
	"time"

	"github.com/formcoach/backend/internal/progress/stats"
)

type ComparisonMode string

const (
	CompareTimePeriods ComparisonMode = "time_periods"
	CompareExercises   ComparisonMode = "exercises"
	CompareBeforeAfter ComparisonMode = "before_after"
	ComparePeers       ComparisonMode = "peer_comparison"
)

// exerciseTrendWindow is the fixed recent-vs-older window used by the
// exercises comparison mode (requires 2x this many samples).
const exerciseTrendWindow = 3

// beforeAfterMinSamples is the minimum history needed for a meaningful
// before/after split.
const beforeAfterMinSamples = 10

type Period struct {
	Name string `json:"name"`
	Days int    `json:"days"`
}

// ComparisonRequest selects a comparison mode and its parameters. Now is
// the reference instant for period filtering, callers set it once so
// that recomputation with an identical request stays idempotent.
type ComparisonRequest struct {
	Mode          ComparisonMode `json:"mode"`
	Periods       []Period       `json:"periods,omitempty"`
	ExerciseTypes []string       `json:"exerciseTypes,omitempty"`
	Now           time.Time      `json:"now"`
}

// BucketStats holds the aggregate statistics of one comparison bucket
// (a time period, an exercise, or a before/after half).
type BucketStats struct {
	Label        string               `json:"label"`
	Sessions     int                  `json:"sessions"`
	AverageScore float64              `json:"averageScore"`
	BestScore    float64              `json:"bestScore"`
	Improvement  float64              `json:"improvement"`
	Consistency  float64              `json:"consistency"`
	Trend        stats.TrendDirection `json:"trend"`
}

type Transformation struct {
	ScoreImprovement       float64 `json:"scoreImprovement"`
	ConsistencyImprovement float64 `json:"consistencyImprovement"`
	TransformationScore    float64 `json:"transformationScore"`
	TotalImprovement       int     `json:"totalImprovement"`
}

type UserStats struct {
	TotalSessions   int     `json:"totalSessions"`
	AverageScore    float64 `json:"averageScore"`
	BestScore       float64 `json:"bestScore"`
	Consistency     float64 `json:"consistency"`
	ExerciseVariety int     `json:"exerciseVariety"`
	ImprovementRate float64 `json:"improvementRate"`
}

type ComparisonResult struct {
	Mode        ComparisonMode `json:"mode"`
	Comparisons []BucketStats  `json:"comparisons"`
	Insights    []Insight      `json:"insights"`

	// before_after only
	Transformation *Transformation `json:"transformation,omitempty"`

	// peer_comparison only
	UserStats    *UserStats         `json:"userStats,omitempty"`
	PeerBaseline *UserStats         `json:"peerBaseline,omitempty"`
	Percentiles  map[string]float64 `json:"percentiles,omitempty"`

	// set instead of comparisons when the history is too small for the
	// requested mode (before_after only), never an actual error
	Error string `json:"error,omitempty"`
}

// Compare derives a ComparisonResult from the full sample history and a
// request. It is a pure function: identical inputs produce identical
// results, which is what allows the result caching in the service layer.
func Compare(samples []Sample, req ComparisonRequest) *ComparisonResult {
	var result *ComparisonResult
	switch req.Mode {
	case CompareExercises:
		result = compareExercises(samples, req.ExerciseTypes)
	case CompareBeforeAfter:
		result = compareBeforeAfter(samples)
	case ComparePeers:
		result = comparePeers(samples)
	default:
		result = compareTimePeriods(samples, req.Periods, req.Now)
	}

	result.Insights = generateInsights(result)
	return result
}

func compareTimePeriods(samples []Sample, periods []Period, now time.Time) *ComparisonResult {
	result := &ComparisonResult{
		Mode:        CompareTimePeriods,
		Comparisons: make([]BucketStats, 0, len(periods)),
	}

	for _, period := range periods {
		cutoff := now.AddDate(0, 0, -period.Days)
		var filtered []Sample
		for _, s := range samples {
			if !s.AnalyzedAt.Before(cutoff) {
				filtered = append(filtered, s)
			}
		}

		bucket := bucketFor(period.Name, filtered)
		if len(filtered) > 0 {
			trend := stats.AnalyzeHalves(scoresOf(sortedByTime(filtered)))
			bucket.Improvement = trend.Improvement
			bucket.Trend = trend.Direction
		}
		result.Comparisons = append(result.Comparisons, bucket)
	}

	return result
}

func compareExercises(samples []Sample, exerciseTypes []string) *ComparisonResult {
	result := &ComparisonResult{
		Mode:        CompareExercises,
		Comparisons: make([]BucketStats, 0, len(exerciseTypes)),
	}

	for _, exerciseType := range exerciseTypes {
		var filtered []Sample
		for _, s := range samples {
			if s.ExerciseType == exerciseType {
				filtered = append(filtered, s)
			}
		}

		bucket := bucketFor(exerciseType, filtered)
		if len(filtered) > 0 {
			trend := stats.AnalyzeRecentWindow(scoresOf(sortedByTime(filtered)), exerciseTrendWindow)
			bucket.Improvement = trend.Improvement
			bucket.Trend = trend.Direction
		}
		result.Comparisons = append(result.Comparisons, bucket)
	}

	return result
}

func compareBeforeAfter(samples []Sample) *ComparisonResult {
	result := &ComparisonResult{
		Mode:        CompareBeforeAfter,
		Comparisons: []BucketStats{},
	}

	if len(samples) < beforeAfterMinSamples {
		result.Error = "not enough sessions for a before/after comparison"
		return result
	}

	sorted := sortedByTime(samples)
	mid := len(sorted) / 2
	before := bucketWithTrend("Before", sorted[:mid])
	after := bucketWithTrend("After", sorted[mid:])
	result.Comparisons = append(result.Comparisons, before, after)

	scoreImprovement := after.AverageScore - before.AverageScore
	consistencyImprovement := after.Consistency - before.Consistency
	result.Transformation = &Transformation{
		ScoreImprovement:       scoreImprovement,
		ConsistencyImprovement: consistencyImprovement,
		TransformationScore:    0.6*scoreImprovement + 0.4*consistencyImprovement,
		TotalImprovement:       int(math.Round((scoreImprovement + consistencyImprovement) / 2)),
	}

	return result
}

func comparePeers(samples []Sample) *ComparisonResult {
	userStats := aggregateUserStats(samples)
	baseline := peerBaseline(userStats)

	return &ComparisonResult{
		Mode:         ComparePeers,
		Comparisons:  []BucketStats{},
		UserStats:    &userStats,
		PeerBaseline: &baseline,
		Percentiles:  percentiles(userStats),
	}
}

func aggregateUserStats(samples []Sample) UserStats {
	scores := scoresOf(samples)
	variety := make(map[string]struct{})
	for _, s := range samples {
		variety[s.ExerciseType] = struct{}{}
	}

	return UserStats{
		TotalSessions:   len(samples),
		AverageScore:    stats.Mean(scores),
		BestScore:       bestScoreOf(samples),
		Consistency:     stats.ConsistencyScore(scores),
		ExerciseVariety: len(variety),
		ImprovementRate: stats.AnalyzeHalves(scoresOf(sortedByTime(samples))).Improvement,
	}
}

// bucketFor computes the order-insensitive aggregates. Empty buckets are
// zero-valued with a stable trend, sparse data must never error out.
func bucketFor(label string, samples []Sample) BucketStats {
	bucket := BucketStats{
		Label:    label,
		Sessions: len(samples),
		Trend:    stats.TrendStable,
	}
	if len(samples) == 0 {
		return bucket
	}

	scores := scoresOf(samples)
	bucket.AverageScore = stats.Mean(scores)
	bucket.BestScore = bestScoreOf(samples)
	bucket.Consistency = stats.ConsistencyScore(scores)
	return bucket
}

func bucketWithTrend(label string, orderedSamples []Sample) BucketStats {
	bucket := bucketFor(label, orderedSamples)
	if len(orderedSamples) > 0 {
		trend := stats.AnalyzeHalves(scoresOf(orderedSamples))
		bucket.Improvement = trend.Improvement
		bucket.Trend = trend.Direction
	}
	return bucket
}
