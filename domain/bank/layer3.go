package bank

import (
	"edna/domain/mirror"
)

// Layer 3: mirror awareness. Two questions per dimension; option weights
// are raw sub-scores and the dimension score is their mean.

func mirrorOptions() []Option {
	return []Option{
		{Value: "rarely", Label: "Rarely true of me", Weight: 20},
		{Value: "sometimes", Label: "Sometimes true of me", Weight: 45},
		{Value: "often", Label: "Often true of me", Weight: 70},
		{Value: "consistently", Label: "Consistently true of me", Weight: 95},
	}
}

func Layer3() []Question {
	return []Question{
		{
			ID: "L3_Q1", Layer: 3, Dimension: mirror.Recognition,
			Prompt:  "I can name which of my collaborators think in my opposite mode, without judging them for it.",
			Options: mirrorOptions(),
		},
		{
			ID: "L3_Q2", Layer: 3, Dimension: mirror.Recognition,
			Prompt:  "When a project stalls, I can tell whether it's starving for structure or for momentum.",
			Options: mirrorOptions(),
		},
		{
			ID: "L3_Q3", Layer: 3, Dimension: mirror.Translation,
			Prompt:  "Before pitching someone wired differently from me, I reframe the proposal in their language.",
			Options: mirrorOptions(),
		},
		{
			ID: "L3_Q4", Layer: 3, Dimension: mirror.Translation,
			Prompt:  "I could argue my opposite's position well enough that they'd endorse my summary.",
			Options: mirrorOptions(),
		},
		{
			ID: "L3_Q5", Layer: 3, Dimension: mirror.Integration,
			Prompt:  "My plans carry requirements from both modes, not just the one that comes naturally.",
			Options: mirrorOptions(),
		},
		{
			ID: "L3_Q6", Layer: 3, Dimension: mirror.Integration,
			Prompt:  "Feedback from my opposite mode has genuinely changed how I work, recently.",
			Options: mirrorOptions(),
		},
		{
			ID: "L3_Q7", Layer: 3, Dimension: mirror.Governance,
			Prompt:  "In my ventures, decision rights are explicitly split so neither mode holds all the vetoes.",
			Options: mirrorOptions(),
		},
		{
			ID: "L3_Q8", Layer: 3, Dimension: mirror.Governance,
			Prompt:  "We track paired metrics so one mode's wins can't hide the other's losses.",
			Options: mirrorOptions(),
		},
		{
			ID: "L3_Q9", Layer: 3, Dimension: mirror.ConflictRecovery,
			Prompt:  "After a clash with an opposite-mode partner, we repair within days and change something real.",
			Options: mirrorOptions(),
		},
		{
			ID: "L3_Q10", Layer: 3, Dimension: mirror.ConflictRecovery,
			Prompt:  "I've kept important relationships through hard cross-mode disagreements.",
			Options: mirrorOptions(),
		},
	}
}
