package bank

// Layer 1: core identity. Every option is tagged architect or alchemist;
// the tally of tags feeds the asymmetry rule.

const (
	TagArchitect = "architect"
	TagAlchemist = "alchemist"
)

func Layer1() []Question {
	return []Question{
		{
			ID: "L1_Q1", Layer: 1,
			Prompt: "A promising idea lands in your lap. What happens in the first 48 hours?",
			Options: []Option{
				{Value: "map_it", Label: "I map the model: costs, sequence, what has to be true", Tag: TagArchitect},
				{Value: "move_it", Label: "I tell people, test the reaction, and start moving", Tag: TagAlchemist},
			},
		},
		{
			ID: "L1_Q2", Layer: 1,
			Prompt: "Which compliment lands deeper?",
			Options: []Option{
				{Value: "runs_without_you", Label: "\"This runs perfectly even when you're not here\"", Tag: TagArchitect},
				{Value: "made_us_believe", Label: "\"You made us believe this was possible\"", Tag: TagAlchemist},
			},
		},
		{
			ID: "L1_Q3", Layer: 1,
			Prompt: "Your venture stalls. Your instinct says the problem is:",
			Options: []Option{
				{Value: "broken_process", Label: "A broken process nobody has diagrammed yet", Tag: TagArchitect},
				{Value: "lost_energy", Label: "Lost energy; the story stopped being told", Tag: TagAlchemist},
			},
		},
		{
			ID: "L1_Q4", Layer: 1,
			Prompt: "How do you prefer to make a major commitment?",
			Options: []Option{
				{Value: "modeled", Label: "After modeling the downside in detail", Tag: TagArchitect},
				{Value: "felt", Label: "When it feels right and the window is open", Tag: TagAlchemist},
			},
		},
		{
			ID: "L1_Q5", Layer: 1,
			Prompt: "A new hire asks what matters most here. You say:",
			Options: []Option{
				{Value: "the_system", Label: "Follow the system; it is the product of every lesson we've learned", Tag: TagArchitect},
				{Value: "the_mission", Label: "Feel the mission; the details will sort themselves", Tag: TagAlchemist},
			},
		},
		{
			ID: "L1_Q6", Layer: 1,
			Prompt: "Your calendar in an ideal work week is:",
			Options: []Option{
				{Value: "blocked", Label: "Blocked in advance, protected, mostly kept", Tag: TagArchitect},
				{Value: "open", Label: "Deliberately open so I can chase what's live", Tag: TagAlchemist},
			},
		},
		{
			ID: "L1_Q7", Layer: 1,
			Prompt: "Which failure would haunt you longer?",
			Options: []Option{
				{Value: "sloppy_collapse", Label: "A venture that collapsed from avoidable sloppiness", Tag: TagArchitect},
				{Value: "untold_story", Label: "A great idea that died because nobody heard about it", Tag: TagAlchemist},
			},
		},
		{
			ID: "L1_Q8", Layer: 1,
			Prompt: "Money feels safest when:",
			Options: []Option{
				{Value: "forecasted", Label: "It is forecasted and the forecast is holding", Tag: TagArchitect},
				{Value: "flowing", Label: "It is flowing, even unpredictably", Tag: TagAlchemist},
			},
		},
		{
			ID: "L1_Q9", Layer: 1,
			Prompt: "In a partnership you naturally become:",
			Options: []Option{
				{Value: "the_operator", Label: "The one who makes it real and keeps it running", Tag: TagArchitect},
				{Value: "the_spark", Label: "The one who brings the deal and the belief", Tag: TagAlchemist},
			},
		},
		{
			ID: "L1_Q10", Layer: 1,
			Prompt: "Your relationship with improvisation:",
			Options: []Option{
				{Value: "last_resort", Label: "A last resort that means the plan failed", Tag: TagArchitect},
				{Value: "natural_state", Label: "My natural state; plans are rough sketches", Tag: TagAlchemist},
			},
		},
	}
}
