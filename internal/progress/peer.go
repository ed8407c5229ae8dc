package progress

// Synthetic peer baseline.
//
// The multipliers and percentile parameters below are hardcoded
// placeholders standing in for a future real peer-data service, they are
// not statistically meaningful. Everything synthetic is isolated in this
// file so swapping in real aggregate peer data only touches
// peerBaseline() and percentiles(), not the comparison control flow.

const (
	percentileFloor   = 5
	percentileCeiling = 95
)

var peerMultipliers = struct {
	totalSessions   float64
	averageScore    float64
	bestScore       float64
	consistency     float64
	exerciseVariety float64
	improvementRate float64
}{
	totalSessions:   0.90,
	averageScore:    0.88,
	bestScore:       0.92,
	consistency:     0.85,
	exerciseVariety: 0.90,
	improvementRate: 0.85,
}

// percentileParams maps a metric to the reference point and slope of the
// linear percentile estimate: clamp(5, 95, 50 + (value - ref) * slope).
var percentileParams = map[string]struct {
	ref   float64
	slope float64
}{
	"totalSessions":   {ref: 20, slope: 0.8},
	"averageScore":    {ref: 70, slope: 1.2},
	"bestScore":       {ref: 85, slope: 1.0},
	"consistency":     {ref: 75, slope: 0.9},
	"exerciseVariety": {ref: 4, slope: 8.0},
}

func peerBaseline(user UserStats) UserStats {
	return UserStats{
		TotalSessions:   int(float64(user.TotalSessions) * peerMultipliers.totalSessions),
		AverageScore:    user.AverageScore * peerMultipliers.averageScore,
		BestScore:       user.BestScore * peerMultipliers.bestScore,
		Consistency:     user.Consistency * peerMultipliers.consistency,
		ExerciseVariety: int(float64(user.ExerciseVariety) * peerMultipliers.exerciseVariety),
		ImprovementRate: user.ImprovementRate * peerMultipliers.improvementRate,
	}
}

func percentiles(user UserStats) map[string]float64 {
	values := map[string]float64{
		"totalSessions":   float64(user.TotalSessions),
		"averageScore":    user.AverageScore,
		"bestScore":       user.BestScore,
		"consistency":     user.Consistency,
		"exerciseVariety": float64(user.ExerciseVariety),
	}

	result := make(map[string]float64, len(values))
	for metric, value := range values {
		params := percentileParams[metric]
		result[metric] = clampPercentile(50 + (value-params.ref)*params.slope)
	}
	return result
}

func clampPercentile(p float64) float64 {
	if p < percentileFloor {
		return percentileFloor
	}
	if p > percentileCeiling {
		return percentileCeiling
	}
	return p
}
