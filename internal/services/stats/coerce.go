package stats

import "math"

// coerce extracts a usable number from a loosely-typed counter value.
// Finite numbers pass through unchanged; anything else (absent, wrong
// type, NaN, ±Inf) becomes 0.
func coerce(v any) float64 {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}

// sumAll sums coerce over every value in a counter map. A nil or empty
// map contributes 0.
func sumAll(counters map[string]any) float64 {
	var total float64
	for _, v := range counters {
		total += coerce(v)
	}
	return total
}
