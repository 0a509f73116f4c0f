package scoring

import (
	"math"

	apperrors "github.com/ZanzyTHEbar/org-air-engine/internal/errors"
)

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// roundTo rounds half away from zero to the given number of decimal places,
// matching how the persisted scores are quantized downstream.
func roundTo(x float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(x*pow) / pow
}

func round2(x float64) float64 { return roundTo(x, 2) }

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	s := 0.0
	for _, v := range xs {
		s += v
	}
	return s / float64(len(xs))
}

// popStdDev computes the population standard deviation.
func popStdDev(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := mean(xs)
	variance := 0.0
	for _, v := range xs {
		variance += (v - m) * (v - m)
	}
	variance /= float64(len(xs))
	return math.Sqrt(variance)
}

// sampleStdDev computes the sample standard deviation (n-1 denominator).
func sampleStdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	m := mean(xs)
	variance := 0.0
	for _, v := range xs {
		variance += (v - m) * (v - m)
	}
	variance /= float64(len(xs) - 1)
	return math.Sqrt(variance)
}

// WeightedMean computes sum(v*w)/sum(w). Mismatched lengths are a caller
// bug and fail fast; zero total weight returns 0.
func WeightedMean(values, weights []float64) (float64, error) {
	if len(values) != len(weights) {
		return 0, apperrors.NewValidationError("values and weights must have same length")
	}
	if len(values) == 0 {
		return 0, nil
	}

	totalWeight := 0.0
	for _, w := range weights {
		totalWeight += w
	}
	if totalWeight == 0 {
		return 0, nil
	}

	weightedSum := 0.0
	for i, v := range values {
		weightedSum += v * weights[i]
	}
	return weightedSum / totalWeight, nil
}

// WeightedStdDev computes the weighted standard deviation around a
// pre-calculated weighted mean.
func WeightedStdDev(values, weights []float64, weightedMean float64) (float64, error) {
	if len(values) != len(weights) {
		return 0, apperrors.NewValidationError("values and weights must have same length")
	}
	if len(values) == 0 {
		return 0, nil
	}

	totalWeight := 0.0
	for _, w := range weights {
		totalWeight += w
	}
	if totalWeight == 0 {
		return 0, nil
	}

	variance := 0.0
	for i, v := range values {
		variance += weights[i] * (v - weightedMean) * (v - weightedMean)
	}
	variance /= totalWeight
	return math.Sqrt(variance), nil
}

// CoefficientOfVariation computes stddev/mean with a zero-mean guard.
func CoefficientOfVariation(stdDev, mean float64) float64 {
	if mean == 0 {
		return 0
	}
	return stdDev / mean
}
