package stats

type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendDeclining TrendDirection = "declining"
	TrendStable    TrendDirection = "stable"
)

// improvementThreshold is a fixed product policy constant (in score
// points), not derived from the data.
const improvementThreshold = 2.0

type Trend struct {
	Direction   TrendDirection `json:"direction"`
	Improvement float64        `json:"improvement"`
}

// AnalyzeHalves splits the chronologically ordered scores into an
// earlier and a later half (floor division) and reports the difference
// of their means. Fewer than 2 scores yield a stable trend.
func AnalyzeHalves(orderedScores []float64) Trend {
	if len(orderedScores) < 2 {
		return Trend{Direction: TrendStable}
	}

	mid := len(orderedScores) / 2
	improvement := Mean(orderedScores[mid:]) - Mean(orderedScores[:mid])

	return Trend{
		Direction:   classifyImprovement(improvement),
		Improvement: improvement,
	}
}

// AnalyzeRecentWindow compares the most recent `window` scores against
// the `window` scores immediately before them. Fewer than 2*window
// scores yield a stable trend.
//
// NOTE: this variant and AnalyzeHalves intentionally coexist, as
// different comparison modes use different window strategies.
func AnalyzeRecentWindow(orderedScores []float64, window int) Trend {
	if window <= 0 || len(orderedScores) < 2*window {
		return Trend{Direction: TrendStable}
	}

	n := len(orderedScores)
	recent := orderedScores[n-window:]
	older := orderedScores[n-2*window : n-window]
	improvement := Mean(recent) - Mean(older)

	return Trend{
		Direction:   classifyImprovement(improvement),
		Improvement: improvement,
	}
}

func classifyImprovement(improvement float64) TrendDirection {
	switch {
	case improvement > improvementThreshold:
		return TrendImproving
	case improvement < -improvementThreshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}
