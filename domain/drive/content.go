package drive

type axisNarrative struct {
	Patterns    []string
	Strengths   []string
	Risks       []string
	Adaptations []string
}

var mindsetContent = map[string]axisNarrative{
	MindsetGrowth: {
		Patterns:    []string{"Treats setbacks as tuition", "Seeks feedback that stings", "Rewrites self-assessment after new evidence"},
		Strengths:   []string{"Skill ceiling keeps moving", "Attracts mentors and candid advisors"},
		Risks:       []string{"Can over-invest in self-improvement over shipping", "May stay in learning mode past the decision point"},
		Adaptations: []string{"Attach every learning goal to a shipping deadline"},
	},
	MindsetFixed: {
		Patterns:    []string{"Protects existing competence zones", "Reads failure as verdict, not data", "Avoids arenas without proven ability"},
		Strengths:   []string{"Deep mastery inside the established zone", "Consistent, predictable output"},
		Risks:       []string{"Market shifts strand the mastered skill", "Feedback avoidance compounds blind spots"},
		Adaptations: []string{"Pick one low-stakes arena to be a beginner in, on purpose"},
	},
	MindsetMixed: {
		Patterns:    []string{"Growth frame in some domains, fixed in others", "Belief about improvability varies with past wins"},
		Strengths:   []string{"Realistic about where effort pays", "Not naive about trainability claims"},
		Risks:       []string{"The fixed domains quietly set the ceiling"},
		Adaptations: []string{"Audit which domains carry the fixed frame and test one"},
	},
}

var riskContent = map[string]axisNarrative{
	RiskHigh: {
		Patterns:    []string{"Moves on asymmetric upside quickly", "Comfortable with public, visible bets", "Recovers composure fast after losses"},
		Strengths:   []string{"Captures windows others deliberate through", "Volatility tolerance is a competitive asset"},
		Risks:       []string{"Position sizing by feel, not by rule", "Winning streaks inflate the next bet"},
		Adaptations: []string{"Write loss limits before entering, not during"},
	},
	RiskLow: {
		Patterns:    []string{"Models downside before upside", "Prefers staged, reversible commitments", "Waits for confirmation before scaling"},
		Strengths:   []string{"Rarely blindsided; survives long games", "Capital efficiency under uncertainty"},
		Risks:       []string{"Misses windows that reward early movers", "Analysis becomes a socially acceptable delay"},
		Adaptations: []string{"Set decision deadlines with default-to-action"},
	},
	RiskModerate: {
		Patterns:    []string{"Calibrates exposure to conviction level", "Mixes safe base with measured bets"},
		Strengths:   []string{"Sustainable risk budget across cycles"},
		Risks:       []string{"Mid-sized bets can underperform both extremes"},
		Adaptations: []string{"Occasionally size up when conviction is rare and high"},
	},
}

var energyContent = map[string]axisNarrative{
	EnergyHigh: {
		Patterns:    []string{"Long intense output runs", "Work expands to fill every open hour", "Rest feels like a withdrawal symptom"},
		Strengths:   []string{"Outworks competition in sprint phases", "High presence; teams match the founder's tempo"},
		Risks:       []string{"Crash cycles arrive unscheduled", "Team burnout mirrors the founder's pace"},
		Adaptations: []string{"Timebox sprints and calendar the recovery first"},
	},
	EnergyLow: {
		Patterns:    []string{"Limited daily deep-work budget", "Output quality gated by recovery quality", "Overcommitment shows up somatically"},
		Strengths:   []string{"Forced prioritization produces clean focus", "Builds leverage and delegation early by necessity"},
		Risks:       []string{"Undersells capacity in high-tempo partnerships"},
		Adaptations: []string{"Protect the two best hours; negotiate everything else"},
	},
	EnergyBalanced: {
		Patterns:    []string{"Steady output across normal cycles", "Can surge briefly without lasting damage"},
		Strengths:   []string{"Predictable cadence teams can plan around"},
		Risks:       []string{"May under-use surge capacity at true inflection points"},
		Adaptations: []string{"Identify the one annual moment worth a deliberate surge"},
	},
}
