// Package belief implements Layer 7: a direct mapping from answer tags to
// meta-belief labels with static narrative. Structurally the simplest layer.
package belief

// Belief identifies a meta-belief category
type Belief string

const (
	ScarcityGuard Belief = "scarcity_guard"
	ProofFirst    Belief = "proof_first"
	MomentumFaith Belief = "momentum_faith"
	LegacyAnchor  Belief = "legacy_anchor"
	ControlLedger Belief = "control_ledger"
	OpenHand      Belief = "open_hand"
)

// Beliefs lists all belief categories in declaration order
func Beliefs() []Belief {
	return []Belief{ScarcityGuard, ProofFirst, MomentumFaith, LegacyAnchor, ControlLedger, OpenHand}
}

// Insight pairs a belief label with its narrative
type Insight struct {
	Belief    Belief `json:"belief"`
	Label     string `json:"label"`
	Narrative string `json:"narrative"`
}

// Profile is the Layer 7 output: the beliefs surfaced by the answers, in
// question order, deduplicated, with the first surfaced belief as primary.
type Profile struct {
	Primary Belief    `json:"primary"`
	Beliefs []Insight `json:"beliefs"`
}

// Resolve maps answer tags to belief insights. Unknown tags are skipped;
// duplicates keep their first position.
func Resolve(tags []Belief) Profile {
	seen := make(map[Belief]bool, len(tags))
	var insights []Insight
	for _, tag := range tags {
		content, ok := beliefContent[tag]
		if !ok || seen[tag] {
			continue
		}
		seen[tag] = true
		insights = append(insights, Insight{Belief: tag, Label: content.Label, Narrative: content.Narrative})
	}

	profile := Profile{Beliefs: insights}
	if len(insights) > 0 {
		profile.Primary = insights[0].Belief
	}
	return profile
}

type narrative struct {
	Label     string
	Narrative string
}

var beliefContent = map[Belief]narrative{
	ScarcityGuard: {
		Label:     "The Scarcity Guard",
		Narrative: "Money decisions route through a threat detector first. You protect downside brilliantly and systematically underbid your own upside. Pricing, hiring ahead of revenue, and investment in reach all feel more dangerous than they are.",
	},
	ProofFirst: {
		Label:     "Proof First",
		Narrative: "You believe nothing you cannot evidence, including your own potential. This keeps you honest and slow: opportunities that require acting before proof exists go to someone else by default.",
	},
	MomentumFaith: {
		Label:     "Momentum Faith",
		Narrative: "You believe action generates answers that analysis cannot. This belief funds your boldest moves and also explains your most expensive ones; the faith needs a ledger.",
	},
	LegacyAnchor: {
		Label:     "The Legacy Anchor",
		Narrative: "Your decisions answer to a longer timeline than the quarter. This produces patience competitors cannot fake, and it can rationalize staying too long in ventures the timeline no longer supports.",
	},
	ControlLedger: {
		Label:     "The Control Ledger",
		Narrative: "You believe outcomes track personal oversight. Delegation feels like risk rather than leverage, so your ventures inherit your ceiling. The belief was earned somewhere real; it is now the constraint.",
	},
	OpenHand: {
		Label:     "The Open Hand",
		Narrative: "You believe value given returns multiplied. Your network and reputation compound from it; your margins occasionally pay for it. The belief needs boundaries, not revision.",
	},
}
