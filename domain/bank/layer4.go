package bank

// Layer 4: operating context. Recorded into the result verbatim for report
// framing; no classifier consumes these answers.

const TagContext = "context"

func Layer4() []Question {
	return []Question{
		{
			ID: "L4_Q1", Layer: 4,
			Prompt: "Which best describes where you are right now?",
			Options: []Option{
				{Value: "pre_launch", Label: "Pre-launch: building toward a first venture", Tag: TagContext},
				{Value: "early", Label: "Early: first revenue, nothing repeatable yet", Tag: TagContext},
				{Value: "scaling", Label: "Scaling: something works and wants to grow", Tag: TagContext},
				{Value: "reinventing", Label: "Reinventing: between chapters", Tag: TagContext},
			},
		},
		{
			ID: "L4_Q2", Layer: 4,
			Prompt: "Who do you build with?",
			Options: []Option{
				{Value: "solo", Label: "Mostly solo", Tag: TagContext},
				{Value: "partner", Label: "A partner or co-founder", Tag: TagContext},
				{Value: "small_team", Label: "A small team", Tag: TagContext},
				{Value: "org", Label: "An organization with layers", Tag: TagContext},
			},
		},
		{
			ID: "L4_Q3", Layer: 4,
			Prompt: "The next twelve months are mostly about:",
			Options: []Option{
				{Value: "income", Label: "Income stability", Tag: TagContext},
				{Value: "growth", Label: "Growth and reach", Tag: TagContext},
				{Value: "leverage", Label: "Leverage: systems and people", Tag: TagContext},
				{Value: "meaning", Label: "Meaning and fit", Tag: TagContext},
			},
		},
	}
}
