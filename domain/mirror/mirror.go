// Package mirror implements Layer 3: mirror-awareness scoring, the measure
// of how well a respondent integrates their classification's cognitive
// opposite. Translation and Governance carry extra weight in the overall
// score.
package mirror

import (
	"math"

	"edna/domain/identity"
)

// Dimension identifies one of the five mirror-awareness axes
type Dimension string

const (
	Recognition      Dimension = "recognition"
	Translation      Dimension = "translation"
	Integration      Dimension = "integration"
	Governance       Dimension = "governance"
	ConflictRecovery Dimension = "conflict_recovery"
)

// Dimensions lists the five axes in scoring order
func Dimensions() []Dimension {
	return []Dimension{Recognition, Translation, Integration, Governance, ConflictRecovery}
}

// Scores holds the five raw sub-scores, each expected in [0,100]. Not
// clamped here; the question bank only produces in-range weights.
type Scores struct {
	Recognition      float64 `json:"recognition"`
	Translation      float64 `json:"translation"`
	Integration      float64 `json:"integration"`
	Governance       float64 `json:"governance"`
	ConflictRecovery float64 `json:"conflict_recovery"`
}

// Weighted-average divisor: three unit weights plus two 1.25 weights.
const weightDivisor = 5.5

// OverallScore computes round((R + 1.25T + I + 1.25G + C) / 5.5).
// Stays in [0,100] for inputs in [0,100].
func OverallScore(s Scores) int {
	sum := s.Recognition + 1.25*s.Translation + s.Integration + 1.25*s.Governance + s.ConflictRecovery
	return int(math.Round(sum / weightDivisor))
}

// Band is the named ordinal range the overall score falls into
type Band string

const (
	BandVeryLow  Band = "Very Low"
	BandLow      Band = "Low"
	BandModerate Band = "Moderate"
	BandHigh     Band = "High"
	BandMastery  Band = "Mastery"
)

// BandFor maps an overall score to its band. Cutoffs: <50, <65, <75, <85.
func BandFor(score int) Band {
	switch {
	case score < 50:
		return BandVeryLow
	case score < 65:
		return BandLow
	case score < 75:
		return BandModerate
	case score < 85:
		return BandHigh
	default:
		return BandMastery
	}
}

// indicatorCutoff is the per-dimension high/low split. Independent of the
// overall band cutoffs above; the two scales coexist on purpose.
const indicatorCutoff = 65

// DimensionScore carries a raw dimension score with its qualitative read
type DimensionScore struct {
	Score      float64  `json:"score"`
	Level      string   `json:"level"`
	Indicators []string `json:"indicators"`
}

func dimensionScore(dim Dimension, score float64) DimensionScore {
	content := dimensionContent[dim]
	if score >= indicatorCutoff {
		return DimensionScore{Score: score, Level: "high", Indicators: content.High}
	}
	return DimensionScore{Score: score, Level: "low", Indicators: content.Low}
}

// DirectionalInsight describes awareness toward one cognitive opposite
type DirectionalInsight struct {
	Direction string `json:"direction"`
	Narrative string `json:"narrative"`
}

// Profile is the complete Layer 3 output
type Profile struct {
	OverallScore         int                  `json:"overall_score"`
	Band                 Band                 `json:"band"`
	Recognition          DimensionScore       `json:"recognition"`
	Translation          DimensionScore       `json:"translation"`
	Integration          DimensionScore       `json:"integration"`
	Governance           DimensionScore       `json:"governance"`
	ConflictRecovery     DimensionScore       `json:"conflict_recovery"`
	DualKPIPresent       bool                 `json:"dual_kpi_present"`
	ChairingRolesPresent bool                 `json:"chairing_roles_present"`
	Directions           []DirectionalInsight `json:"directions"`
	Recommendations      []string             `json:"recommendations"`
}

// GenerateProfile scores the five dimensions and assembles the profile.
// The core type only selects which directional narratives are populated:
// a single direction for architect and alchemist, both for blurred. It
// never alters the numeric score.
func GenerateProfile(s Scores, coreType identity.CoreType) Profile {
	overall := OverallScore(s)
	band := BandFor(overall)

	return Profile{
		OverallScore:         overall,
		Band:                 band,
		Recognition:          dimensionScore(Recognition, s.Recognition),
		Translation:          dimensionScore(Translation, s.Translation),
		Integration:          dimensionScore(Integration, s.Integration),
		Governance:           dimensionScore(Governance, s.Governance),
		ConflictRecovery:     dimensionScore(ConflictRecovery, s.ConflictRecovery),
		DualKPIPresent:       s.Governance >= 65,
		ChairingRolesPresent: s.Governance >= 75,
		Directions:           directionsFor(coreType),
		Recommendations:      DevelopmentRecommendations(band),
	}
}

func directionsFor(coreType identity.CoreType) []DirectionalInsight {
	toAlchemist := DirectionalInsight{
		Direction: "architect_to_alchemist",
		Narrative: "Your mirror is the alchemist mode: momentum, narrative, and deals that close on conviction. Awareness here predicts how well you partner with, hire, and sell to people who move before the plan exists.",
	}
	toArchitect := DirectionalInsight{
		Direction: "alchemist_to_architect",
		Narrative: "Your mirror is the architect mode: systems, sequencing, and decisions that survive your absence. Awareness here predicts whether your wins become machines or stay performances.",
	}
	switch coreType {
	case identity.CoreArchitect:
		return []DirectionalInsight{toAlchemist}
	case identity.CoreAlchemist:
		return []DirectionalInsight{toArchitect}
	default:
		return []DirectionalInsight{toAlchemist, toArchitect}
	}
}

// DevelopmentRecommendations is a pure band→text lookup. Unrecognized bands
// fall back to the Moderate entry rather than erroring.
func DevelopmentRecommendations(band Band) []string {
	if recs, ok := developmentRecommendations[band]; ok {
		return recs
	}
	return developmentRecommendations[BandModerate]
}
