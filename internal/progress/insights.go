package progress

import (
	"fmt"

	"github.com/formcoach/backend/internal/progress/stats"
)

// Insight is a short natural-language observation derived from a
// comparison result. The triggering thresholds below are exact product
// contracts, the message wording is not.
type Insight struct {
	Type    string `json:"type"`
	Icon    string `json:"icon"`
	Message string `json:"message"`
}

const (
	insightImprovement    = "improvement"
	insightConsistency    = "consistency"
	insightTrend          = "trend"
	insightStrength       = "strength"
	insightOpportunity    = "opportunity"
	insightTransformation = "transformation"
	insightProgress       = "progress"
	insightExcellence     = "excellence"
)

// generateInsights is rule-based with no randomness, so the comparison
// engine stays idempotent.
func generateInsights(result *ComparisonResult) []Insight {
	switch result.Mode {
	case CompareTimePeriods:
		return timePeriodInsights(result.Comparisons)
	case CompareExercises:
		return exerciseInsights(result.Comparisons)
	case CompareBeforeAfter:
		return beforeAfterInsights(result.Transformation)
	case ComparePeers:
		return peerInsights(result.Percentiles)
	default:
		return []Insight{}
	}
}

func timePeriodInsights(buckets []BucketStats) []Insight {
	insights := []Insight{}
	if len(buckets) < 2 {
		return insights
	}

	recent, previous := buckets[0], buckets[1]

	if delta := recent.AverageScore - previous.AverageScore; delta > 0 {
		insights = append(insights, Insight{
			Type:    insightImprovement,
			Icon:    "📈",
			Message: fmt.Sprintf("Your average form score is up %.1f points recently", delta),
		})
	}

	if delta := recent.Consistency - previous.Consistency; delta > 5 {
		insights = append(insights, Insight{
			Type:    insightConsistency,
			Icon:    "🎯",
			Message: fmt.Sprintf("Your form got %.1f points more consistent recently", delta),
		})
	}

	if recent.Trend == stats.TrendImproving {
		insights = append(insights, Insight{
			Type:    insightTrend,
			Icon:    "🚀",
			Message: "You are on an improving trend, keep it up",
		})
	}

	return insights
}

func exerciseInsights(buckets []BucketStats) []Insight {
	insights := []Insight{}
	if len(buckets) < 2 {
		return insights
	}

	best, worst := buckets[0], buckets[0]
	for _, b := range buckets[1:] {
		if b.AverageScore > best.AverageScore {
			best = b
		}
		if b.AverageScore < worst.AverageScore {
			worst = b
		}
	}

	if best.AverageScore-worst.AverageScore > 10 {
		insights = append(insights,
			Insight{
				Type:    insightStrength,
				Icon:    "💪",
				Message: fmt.Sprintf("%s is your strongest exercise at %.1f average", best.Label, best.AverageScore),
			},
			Insight{
				Type:    insightOpportunity,
				Icon:    "🔧",
				Message: fmt.Sprintf("%s has the most room to grow at %.1f average", worst.Label, worst.AverageScore),
			},
		)
	}

	return insights
}

func beforeAfterInsights(transformation *Transformation) []Insight {
	insights := []Insight{}
	if transformation == nil {
		return insights
	}

	switch {
	case transformation.TransformationScore > 10:
		insights = append(insights, Insight{
			Type:    insightTransformation,
			Icon:    "🔥",
			Message: fmt.Sprintf("Remarkable transformation: overall progress score of %.1f", transformation.TransformationScore),
		})
	case transformation.TransformationScore > 5:
		insights = append(insights, Insight{
			Type:    insightProgress,
			Icon:    "📈",
			Message: fmt.Sprintf("Solid progress: overall progress score of %.1f", transformation.TransformationScore),
		})
	}

	if transformation.ConsistencyImprovement > 10 {
		insights = append(insights, Insight{
			Type:    insightConsistency,
			Icon:    "🎯",
			Message: fmt.Sprintf("Your consistency improved by %.1f points", transformation.ConsistencyImprovement),
		})
	}

	return insights
}

func peerInsights(percentiles map[string]float64) []Insight {
	insights := []Insight{}

	// fixed iteration order so identical inputs produce identical results
	for _, metric := range []string{
		"totalSessions", "averageScore", "bestScore", "consistency", "exerciseVariety",
	} {
		percentile, ok := percentiles[metric]
		if !ok {
			continue
		}
		switch {
		case percentile > 80:
			insights = append(insights, Insight{
				Type:    insightExcellence,
				Icon:    "🏆",
				Message: fmt.Sprintf("Your %s beats %.0f%% of comparable users", metric, percentile),
			})
		case percentile < 30:
			insights = append(insights, Insight{
				Type:    insightOpportunity,
				Icon:    "🔧",
				Message: fmt.Sprintf("Your %s trails most comparable users, a focus area", metric),
			})
		}
	}

	return insights
}
