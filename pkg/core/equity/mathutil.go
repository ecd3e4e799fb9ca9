package equity

import "math"

// ratio returns num/den, or 0 when den is 0
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Min(math.Max(v, lo), hi)
}

// percent clamps v to [0,100] and rounds it
func percent(v float64) int {
	return int(math.Round(clamp(v, 0, 100)))
}

// round rounds a component score without clamping
func round(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Round(v))
}
