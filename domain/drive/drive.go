// Package drive implements Layer 6: the mindset / risk / energy profile.
// Each axis maps one answer token to a fixed score, then bands it with the
// <40 / >60 three-way split (scores 40–60 inclusive are the middle band).
// Layer 5 bands with a different two-cutover scheme; the schemes stay
// separate.
package drive

// Axis score constants for recognized tokens. Anything unrecognized falls
// through to the middle score rather than erroring.
const (
	highScore   = 85
	lowScore    = 15
	middleScore = 50
)

// Recognized answer tokens per axis
const (
	MindsetGrowth = "growth"
	MindsetFixed  = "fixed"
	MindsetMixed  = "mixed"

	RiskHigh     = "high"
	RiskLow      = "low"
	RiskModerate = "moderate"

	EnergyHigh     = "high"
	EnergyLow      = "low"
	EnergyBalanced = "balanced"
)

// AxisProfile is one axis' banded result with its content tables
type AxisProfile struct {
	Type        string   `json:"type"`
	Score       int      `json:"score"`
	Patterns    []string `json:"patterns"`
	Strengths   []string `json:"strengths"`
	Risks       []string `json:"risks"`
	Adaptations []string `json:"adaptations"`
}

// Profile is the complete Layer 6 output
type Profile struct {
	MindsetOrientation AxisProfile `json:"mindset_orientation"`
	RiskStyle          AxisProfile `json:"risk_style"`
	EnergyModality     AxisProfile `json:"energy_modality"`
	EDNAAdaptations    []string    `json:"edna_adaptations"`
}

// ScoreMindset maps a mindset answer token to its axis score
func ScoreMindset(answer string) int {
	switch answer {
	case MindsetGrowth:
		return highScore
	case MindsetFixed:
		return lowScore
	default:
		return middleScore
	}
}

// ScoreRisk maps a risk answer token to its axis score
func ScoreRisk(answer string) int {
	switch answer {
	case RiskHigh:
		return highScore
	case RiskLow:
		return lowScore
	default:
		return middleScore
	}
}

// ScoreEnergy maps an energy answer token to its axis score
func ScoreEnergy(answer string) int {
	switch answer {
	case EnergyHigh:
		return highScore
	case EnergyLow:
		return lowScore
	default:
		return middleScore
	}
}

// bandType resolves the three-way band name for a score. Strictly below 40
// is low, strictly above 60 is high; 40 through 60 land in the middle.
func bandType(score int, high, low, middle string) string {
	if score < 40 {
		return low
	}
	if score > 60 {
		return high
	}
	return middle
}

// GenerateProfile builds the Layer 6 profile from the three axis answers.
// Pure; unrecognized answers silently score the middle band.
func GenerateProfile(mindsetAnswer, riskAnswer, energyAnswer string) Profile {
	mindsetScore := ScoreMindset(mindsetAnswer)
	riskScore := ScoreRisk(riskAnswer)
	energyScore := ScoreEnergy(energyAnswer)

	mindsetType := bandType(mindsetScore, MindsetGrowth, MindsetFixed, MindsetMixed)
	riskType := bandType(riskScore, RiskHigh, RiskLow, RiskModerate)
	energyType := bandType(energyScore, EnergyHigh, EnergyLow, EnergyBalanced)

	return Profile{
		MindsetOrientation: axisProfile(mindsetType, mindsetScore, mindsetContent),
		RiskStyle:          axisProfile(riskType, riskScore, riskContent),
		EnergyModality:     axisProfile(energyType, energyScore, energyContent),
		EDNAAdaptations:    EDNAAdaptations(mindsetType, riskType, energyType),
	}
}

func axisProfile(bandName string, score int, content map[string]axisNarrative) AxisProfile {
	n := content[bandName]
	return AxisProfile{
		Type:        bandName,
		Score:       score,
		Patterns:    n.Patterns,
		Strengths:   n.Strengths,
		Risks:       n.Risks,
		Adaptations: n.Adaptations,
	}
}

// EDNAAdaptations synthesizes one adaptation line per axis from its band.
// Risk and energy emit nothing for their middle bands; mindset emits a line
// for all three bands including mixed. The asymmetry is intentional.
func EDNAAdaptations(mindsetType, riskType, energyType string) []string {
	var lines []string

	switch mindsetType {
	case MindsetGrowth:
		lines = append(lines, "Your growth orientation compounds every other layer: invest in skills at the edge of your type, not just inside it.")
	case MindsetFixed:
		lines = append(lines, "A fixed frame turns your type into a cage: treat one blind spot per quarter as trainable and measure it.")
	case MindsetMixed:
		lines = append(lines, "Your mindset shifts by domain: map where you believe growth is possible and borrow that belief elsewhere.")
	}

	switch riskType {
	case RiskHigh:
		lines = append(lines, "Your risk appetite needs a floor, not a ceiling: pre-commit to maximum-loss limits before each bet.")
	case RiskLow:
		lines = append(lines, "Your caution needs a forcing function: schedule small irreversible bets so analysis cannot substitute for action.")
	}

	switch energyType {
	case EnergyHigh:
		lines = append(lines, "Your output runs hot: build recovery into the operating rhythm before the crash schedules itself.")
	case EnergyLow:
		lines = append(lines, "Your energy is a scarce budget: spend it on decisions only you can make and delegate the rest.")
	}

	return lines
}
