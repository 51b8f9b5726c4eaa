package models

// RiskLevel represents the categorical verdict attached to a score
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Score bounds and tier thresholds.
const (
	MinScore = 0
	MaxScore = 100

	HighRiskThreshold   = 70
	MediumRiskThreshold = 40
)

// ClampScore bounds a raw accumulated score to [MinScore, MaxScore]
func ClampScore(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

// TierFor maps a clamped score to its risk tier and safety flag.
// Bands are checked in descending order, first match wins.
func TierFor(score int) (RiskLevel, bool) {
	switch {
	case score >= HighRiskThreshold:
		return RiskHigh, false
	case score >= MediumRiskThreshold:
		return RiskMedium, false
	default:
		return RiskLow, true
	}
}
