package conversion

import "math"

// escalationThreshold is the highest ability value that costs its face
// value. Each point above it costs double.
const escalationThreshold = 16

// csrPlaces is the number of decimals a CSR is rounded to.
const csrPlaces = 4

// AdjustedCost returns the point cost of an ability value: v below 17
// costs v, otherwise v + (v - 16).
func AdjustedCost(v float64) float64 {
	if v >= escalationThreshold+1 {
		return v + (v - escalationThreshold)
	}
	return v
}

// ComputeCSR returns adjusted(v) / averageAdjustedCost for each value, in
// input order, rounded half away from zero to four decimals.
//
// No error is reported here: a zero average yields ±Inf or NaN entries.
// Engine.Convert rejects degenerate averages before calling it.
func ComputeCSR(values []float64, averageAdjustedCost float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = roundPlaces(AdjustedCost(v)/averageAdjustedCost, csrPlaces)
	}
	return out
}

// roundPlaces rounds half away from zero. Non-finite input passes through.
func roundPlaces(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	scale := math.Pow10(places)
	return math.Round(v*scale) / scale
}
