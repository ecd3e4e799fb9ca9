package equity

import "fmt"

// Recommendation texts
const (
	RecommendationStrong     = "strongly recommended"
	RecommendationNormal     = "recommended"
	RecommendationAcceptable = "acceptable"
	RecommendationNone       = "not recommended"
)

// Recommend returns the text tier of a score (80/60/40).
// A non-empty caveat is appended to the "recommended" tier.
//
// Text tiers do not line up with color tiers (70/40): a 65 is "recommended" but orange.
func Recommend(score int, caveat string) string {
	switch {
	case score >= 80:
		return RecommendationStrong
	case score >= 60:
		if caveat != "" {
			return fmt.Sprintf("%s (weak point: %s)", RecommendationNormal, caveat)
		}
		return RecommendationNormal
	case score >= 40:
		return RecommendationAcceptable
	default:
		return RecommendationNone
	}
}

// ScoreColor returns the display tier of a score
func ScoreColor(score int) Color {
	switch {
	case score >= 70:
		return ColorGreen
	case score >= 40:
		return ColorOrange
	default:
		return ColorRed
	}
}
