package risk

import "github.com/siteguard-sec/siteguard/dtos"

// The 25/50/75 thresholds are shared by every vertical. Scenario generators
// working on a raw T x V x I (x E) product normalize it to 0-100 first
// (see scenario package) so the same constants apply everywhere.
const (
	thresholdMedium   = 25
	thresholdHigh     = 50
	thresholdCritical = 75
)

// LevelFromScore classifies a 0-100 risk score. Boundaries are inclusive:
// 24 is Low, 25 Medium, 49 Medium, 50 High, 74 High, 75 Critical.
func LevelFromScore(score int) dtos.RiskLevel {
	switch {
	case score >= thresholdCritical:
		return dtos.RiskLevelCritical
	case score >= thresholdHigh:
		return dtos.RiskLevelHigh
	case score >= thresholdMedium:
		return dtos.RiskLevelMedium
	default:
		return dtos.RiskLevelLow
	}
}

// LevelFromNormalized classifies a risk value already normalized to the
// 0-100 scale.
func LevelFromNormalized(v float64) dtos.RiskLevel {
	switch {
	case v >= thresholdCritical:
		return dtos.RiskLevelCritical
	case v >= thresholdHigh:
		return dtos.RiskLevelHigh
	case v >= thresholdMedium:
		return dtos.RiskLevelMedium
	default:
		return dtos.RiskLevelLow
	}
}

// LikelihoodDescriptor maps a 1-5 likelihood score to its stored text
// descriptor.
func LikelihoodDescriptor(score float64) string {
	switch {
	case score >= 4.5:
		return "very-high"
	case score >= 3.5:
		return "high"
	case score >= 2.5:
		return "medium"
	case score >= 1.5:
		return "low"
	default:
		return "very-low"
	}
}

// ImpactDescriptor maps a 1-5 impact score to its stored text descriptor.
func ImpactDescriptor(score float64) string {
	switch {
	case score >= 4.5:
		return "catastrophic"
	case score >= 3.5:
		return "major"
	case score >= 2.5:
		return "moderate"
	case score >= 1.5:
		return "minor"
	default:
		return "negligible"
	}
}
