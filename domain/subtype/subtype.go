// Package subtype implements Layer 2: routing to the core-type-specific
// question set and majority-vote resolution of the subtype tags carried by
// the answered questions.
package subtype

import (
	"edna/domain/identity"
)

// Subtype is a finer-grained classification within a core type
type Subtype string

// Subtype vocabularies are disjoint per core type. Declaration order is
// load-bearing: ties in the majority vote resolve to the earliest-declared
// subtype for the active core type.
const (
	// Architect subtypes
	SystemsBuilder  Subtype = "systems_builder"
	MasterPlanner   Subtype = "master_planner"
	QuietStrategist Subtype = "quiet_strategist"

	// Alchemist subtypes
	VisionaryCatalyst Subtype = "visionary_catalyst"
	StoryAlchemist    Subtype = "story_alchemist"
	RelationalWeaver  Subtype = "relational_weaver"

	// Blurred subtypes
	AdaptiveIntegrator Subtype = "adaptive_integrator"
	SituationalShifter Subtype = "situational_shifter"
	BridgeBuilder      Subtype = "bridge_builder"
)

// Vocabulary returns the subtype set for a core type, in tie-break order
func Vocabulary(coreType identity.CoreType) []Subtype {
	switch coreType {
	case identity.CoreArchitect:
		return []Subtype{SystemsBuilder, MasterPlanner, QuietStrategist}
	case identity.CoreAlchemist:
		return []Subtype{VisionaryCatalyst, StoryAlchemist, RelationalWeaver}
	default:
		return []Subtype{AdaptiveIntegrator, SituationalShifter, BridgeBuilder}
	}
}

// Profile is the Layer 2 output
type Profile struct {
	CoreType  identity.CoreType `json:"core_type"`
	Subtype   Subtype           `json:"subtype"`
	Label     string            `json:"label"`
	Summary   string            `json:"summary"`
	TagCounts map[Subtype]int   `json:"tag_counts"`
}

// Resolve majority-votes the subtype tags collected from answered Layer 2
// questions. Tags outside the core type's vocabulary are ignored. Ties, and
// the no-answers case, resolve to the earliest subtype in Vocabulary order,
// which keeps the result deterministic for any input.
func Resolve(coreType identity.CoreType, tags []Subtype) Profile {
	vocab := Vocabulary(coreType)
	counts := make(map[Subtype]int, len(vocab))
	for _, s := range vocab {
		counts[s] = 0
	}
	for _, tag := range tags {
		if _, ok := counts[tag]; ok {
			counts[tag]++
		}
	}

	winner := vocab[0]
	for _, s := range vocab[1:] {
		if counts[s] > counts[winner] {
			winner = s
		}
	}

	content := subtypeContent[winner]
	return Profile{
		CoreType:  coreType,
		Subtype:   winner,
		Label:     content.Label,
		Summary:   content.Summary,
		TagCounts: counts,
	}
}

type narrative struct {
	Label   string
	Summary string
}

var subtypeContent = map[Subtype]narrative{
	SystemsBuilder: {
		Label:   "The Systems Builder",
		Summary: "You express the architect instinct through machinery: processes, automations, and org designs that make a result repeatable. Your ventures win on operational leverage.",
	},
	MasterPlanner: {
		Label:   "The Master Planner",
		Summary: "You express the architect instinct through foresight: scenario maps, sequenced bets, and contingency depth. You are rarely surprised, and your risk is over-rehearsal.",
	},
	QuietStrategist: {
		Label:   "The Quiet Strategist",
		Summary: "You express the architect instinct through positioning: patient, low-noise moves that compound while louder competitors burn out. Visibility is your deliberate trade-off.",
	},
	VisionaryCatalyst: {
		Label:   "The Visionary Catalyst",
		Summary: "You express the alchemist instinct through vision: you see the finished future vividly enough that others fund it, join it, and build it with you.",
	},
	StoryAlchemist: {
		Label:   "The Story Alchemist",
		Summary: "You express the alchemist instinct through narrative: audiences, stages, and content that turn attention into demand. Your asset is trust at scale.",
	},
	RelationalWeaver: {
		Label:   "The Relational Weaver",
		Summary: "You express the alchemist instinct through people: rooms, introductions, and alliances. Your deals close on relationship depth that spreadsheets cannot see.",
	},
	AdaptiveIntegrator: {
		Label:   "The Adaptive Integrator",
		Summary: "Your blurred signal stabilizes as integration: you absorb both structured and intuitive inputs and produce a workable synthesis others can execute.",
	},
	SituationalShifter: {
		Label:   "The Situational Shifter",
		Summary: "Your blurred signal stabilizes as range: you genuinely change operating mode with context. The discipline you need is declaring which mode is active.",
	},
	BridgeBuilder: {
		Label:   "The Bridge Builder",
		Summary: "Your blurred signal stabilizes as translation: you make architects legible to alchemists and back. Teams keep you because wars get shorter with you in the room.",
	},
}
