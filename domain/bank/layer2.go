package bank

import (
	"edna/domain/identity"
	"edna/domain/subtype"
)

// Layer 2: subtype. Three disjoint question sets, one per core type; each
// option is tagged with a subtype from that core type's vocabulary.

func Layer2(coreType identity.CoreType) []Question {
	switch coreType {
	case identity.CoreArchitect:
		return architectSet()
	case identity.CoreAlchemist:
		return alchemistSet()
	default:
		return blurredSet()
	}
}

func architectSet() []Question {
	return []Question{
		{
			ID: "L2_AR_Q1", Layer: 2,
			Prompt: "You inherit a chaotic but profitable business. Your first ninety days go to:",
			Options: []Option{
				{Value: "build_ops", Label: "Documenting and rebuilding the core operations", Tag: string(subtype.SystemsBuilder)},
				{Value: "map_future", Label: "Mapping scenarios for the next three years", Tag: string(subtype.MasterPlanner)},
				{Value: "reposition", Label: "Quietly repositioning it where competitors aren't looking", Tag: string(subtype.QuietStrategist)},
			},
		},
		{
			ID: "L2_AR_Q2", Layer: 2,
			Prompt: "Your favorite artifact to produce is:",
			Options: []Option{
				{Value: "playbook", Label: "A playbook anyone could run tomorrow", Tag: string(subtype.SystemsBuilder)},
				{Value: "roadmap", Label: "A sequenced roadmap with contingencies", Tag: string(subtype.MasterPlanner)},
				{Value: "thesis", Label: "A positioning thesis nobody else has written", Tag: string(subtype.QuietStrategist)},
			},
		},
		{
			ID: "L2_AR_Q3", Layer: 2,
			Prompt: "What frustrates you most in other operators?",
			Options: []Option{
				{Value: "no_process", Label: "Reinventing the wheel because nothing was written down", Tag: string(subtype.SystemsBuilder)},
				{Value: "no_foresight", Label: "Getting surprised by things a model would have caught", Tag: string(subtype.MasterPlanner)},
				{Value: "noise", Label: "Confusing visibility with progress", Tag: string(subtype.QuietStrategist)},
			},
		},
		{
			ID: "L2_AR_Q4", Layer: 2,
			Prompt: "Your edge in a negotiation is:",
			Options: []Option{
				{Value: "prepared_terms", Label: "Terms engineered so execution can't fail", Tag: string(subtype.SystemsBuilder)},
				{Value: "prepared_paths", Label: "Having gamed every path before entering the room", Tag: string(subtype.MasterPlanner)},
				{Value: "prepared_position", Label: "Leverage built quietly long before the meeting", Tag: string(subtype.QuietStrategist)},
			},
		},
	}
}

func alchemistSet() []Question {
	return []Question{
		{
			ID: "L2_AL_Q1", Layer: 2,
			Prompt: "You're given a stage and five minutes. You use them to:",
			Options: []Option{
				{Value: "paint_future", Label: "Paint the finished future so vividly it feels inevitable", Tag: string(subtype.VisionaryCatalyst)},
				{Value: "tell_story", Label: "Tell the one story this audience will repeat tomorrow", Tag: string(subtype.StoryAlchemist)},
				{Value: "work_room", Label: "Skip the speech; the hallway afterwards is the real stage", Tag: string(subtype.RelationalWeaver)},
			},
		},
		{
			ID: "L2_AL_Q2", Layer: 2,
			Prompt: "Deals tend to find you through:",
			Options: []Option{
				{Value: "the_vision", Label: "People who want into the future I describe", Tag: string(subtype.VisionaryCatalyst)},
				{Value: "the_audience", Label: "The audience my content built", Tag: string(subtype.StoryAlchemist)},
				{Value: "the_network", Label: "Introductions from people I've helped", Tag: string(subtype.RelationalWeaver)},
			},
		},
		{
			ID: "L2_AL_Q3", Layer: 2,
			Prompt: "Your most renewable source of energy is:",
			Options: []Option{
				{Value: "possibility", Label: "A new possibility nobody has named yet", Tag: string(subtype.VisionaryCatalyst)},
				{Value: "resonance", Label: "Watching a message land with a crowd", Tag: string(subtype.StoryAlchemist)},
				{Value: "connection", Label: "A long conversation that changes both people", Tag: string(subtype.RelationalWeaver)},
			},
		},
		{
			ID: "L2_AL_Q4", Layer: 2,
			Prompt: "When a venture loses steam, you revive it by:",
			Options: []Option{
				{Value: "recast_vision", Label: "Recasting the vision at a bigger scale", Tag: string(subtype.VisionaryCatalyst)},
				{Value: "new_narrative", Label: "Finding the sharper narrative hiding inside it", Tag: string(subtype.StoryAlchemist)},
				{Value: "new_allies", Label: "Bringing in new people whose energy is contagious", Tag: string(subtype.RelationalWeaver)},
			},
		},
	}
}

func blurredSet() []Question {
	return []Question{
		{
			ID: "L2_BL_Q1", Layer: 2,
			Prompt: "Teams tend to use you as:",
			Options: []Option{
				{Value: "synthesizer", Label: "The person who merges competing plans into one", Tag: string(subtype.AdaptiveIntegrator)},
				{Value: "utility", Label: "The person who fills whatever role the moment needs", Tag: string(subtype.SituationalShifter)},
				{Value: "translator", Label: "The person both sides will actually listen to", Tag: string(subtype.BridgeBuilder)},
			},
		},
		{
			ID: "L2_BL_Q2", Layer: 2,
			Prompt: "Your answer to \"are you a planner or an improviser?\" is honestly:",
			Options: []Option{
				{Value: "both_merged", Label: "Both at once; I plan in sketches and improvise in structures", Tag: string(subtype.AdaptiveIntegrator)},
				{Value: "depends", Label: "Entirely depends on the situation in front of me", Tag: string(subtype.SituationalShifter)},
				{Value: "whichever_bridges", Label: "Whichever one the people in the room are missing", Tag: string(subtype.BridgeBuilder)},
			},
		},
		{
			ID: "L2_BL_Q3", Layer: 2,
			Prompt: "A founder pair is at war over strategy. Your move:",
			Options: []Option{
				{Value: "third_option", Label: "Build the third option that takes the best of both", Tag: string(subtype.AdaptiveIntegrator)},
				{Value: "fill_gap", Label: "Take over whichever function the war is starving", Tag: string(subtype.SituationalShifter)},
				{Value: "translate_sides", Label: "Get each to state the other's case until it clicks", Tag: string(subtype.BridgeBuilder)},
			},
		},
	}
}
