package bank

import (
	"edna/domain/drive"
)

// Layer 6: mindset / risk / energy. One question per axis; the selected
// option's value is the axis token handed to the drive scorer.

const (
	AxisMindset = "mindset"
	AxisRisk    = "risk"
	AxisEnergy  = "energy"
)

// Axes lists the three drive axes in bank order
func Axes() []string {
	return []string{AxisMindset, AxisRisk, AxisEnergy}
}

func Layer6() []Question {
	return []Question{
		{
			ID: "L6_Q1", Layer: 6, Axis: AxisMindset,
			Prompt: "When you fail publicly at something that matters, your deepest read is:",
			Options: []Option{
				{Value: drive.MindsetGrowth, Label: "Expensive lesson; I'll be better for it"},
				{Value: drive.MindsetFixed, Label: "Evidence of what I'm simply not built for"},
				{Value: drive.MindsetMixed, Label: "Depends entirely on the domain"},
			},
		},
		{
			ID: "L6_Q2", Layer: 6, Axis: AxisRisk,
			Prompt: "An opportunity needs 60% of your savings and closes Friday. You:",
			Options: []Option{
				{Value: drive.RiskHigh, Label: "Take it; windows like this are the whole game"},
				{Value: drive.RiskLow, Label: "Pass; anything that urgent is selling urgency"},
				{Value: drive.RiskModerate, Label: "Negotiate a smaller slice to stay in the game"},
			},
		},
		{
			ID: "L6_Q3", Layer: 6, Axis: AxisEnergy,
			Prompt: "Your natural output pattern, when nobody is scheduling you:",
			Options: []Option{
				{Value: drive.EnergyHigh, Label: "Long hot streaks; I work until something stops me"},
				{Value: drive.EnergyLow, Label: "A few excellent hours; the rest is maintenance"},
				{Value: drive.EnergyBalanced, Label: "Steady daily output with occasional surges"},
			},
		},
	}
}
