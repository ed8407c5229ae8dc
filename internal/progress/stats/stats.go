// Package stats holds the numeric primitives used by the progress
// analytics engine. All functions tolerate empty input and guard
// divisions, returning defined fallback values instead of NaN/Inf,
// since the consumers are presentation screens that must never crash
// on sparse data.
package stats

import "math"

func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Variance returns the population variance of values, 0 for empty input.
func Variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := Mean(values)
	var sumSq float64
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}
	return sumSq / float64(len(values))
}

func StdDev(values []float64) float64 {
	return math.Sqrt(Variance(values))
}

// ConsistencyScore maps the coefficient of variation to a 0-100 score,
// higher meaning less volatile scores. A zero mean yields 100 (no
// variation, trivially consistent) to keep the result defined.
func ConsistencyScore(values []float64) float64 {
	mean := Mean(values)
	if mean == 0 {
		return 100
	}
	return math.Max(0, 100-(StdDev(values)/mean)*100)
}

// Correlation returns the Pearson correlation coefficient of xs and ys.
// Mismatched lengths, empty input or zero variance in either dimension
// yield 0.
func Correlation(xs, ys []float64) float64 {
	n := len(xs)
	if n == 0 || n != len(ys) {
		return 0
	}

	var sumX, sumY, sumXY, sumXX, sumYY float64
	for i := 0; i < n; i++ {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumXX += xs[i] * xs[i]
		sumYY += ys[i] * ys[i]
	}

	fn := float64(n)
	numerator := fn*sumXY - sumX*sumY
	denominator := math.Sqrt(fn*sumXX-sumX*sumX) * math.Sqrt(fn*sumYY-sumY*sumY)
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// MovingAveragePoint is one window average, tagged with the index of the
// last sample in its window.
type MovingAveragePoint struct {
	Index int     `json:"index"`
	Value float64 `json:"value"`
}

// MovingAverage returns the sliding window averages of the ordered
// values: for window size w and n inputs it yields n-w+1 points.
func MovingAverage(orderedValues []float64, windowSize int) []MovingAveragePoint {
	if windowSize <= 0 || len(orderedValues) < windowSize {
		return nil
	}

	points := make([]MovingAveragePoint, 0, len(orderedValues)-windowSize+1)

	var windowSum float64
	for i, v := range orderedValues {
		windowSum += v
		if i < windowSize-1 {
			continue
		}
		if i >= windowSize {
			windowSum -= orderedValues[i-windowSize]
		}
		points = append(points, MovingAveragePoint{
			Index: i,
			Value: windowSum / float64(windowSize),
		})
	}

	return points
}
