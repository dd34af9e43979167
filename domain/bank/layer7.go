package bank

import (
	"edna/domain/belief"
)

// Layer 7: meta beliefs. Each option is tagged with a belief category; the
// belief resolver maps tags straight to narrative.

func Layer7() []Question {
	return []Question{
		{
			ID: "L7_Q1", Layer: 7,
			Prompt: "Underneath the strategy, your money story sounds most like:",
			Options: []Option{
				{Value: "guard_it", Label: "Protect what's here; it can vanish faster than it came", Tag: string(belief.ScarcityGuard)},
				{Value: "prove_it", Label: "Show me the evidence before I believe the upside", Tag: string(belief.ProofFirst)},
				{Value: "move_it", Label: "Money follows motion; stagnation is the only real loss", Tag: string(belief.MomentumFaith)},
			},
		},
		{
			ID: "L7_Q2", Layer: 7,
			Prompt: "The quiet sentence behind your biggest decisions is:",
			Options: []Option{
				{Value: "outlast", Label: "\"Will this matter in twenty years?\"", Tag: string(belief.LegacyAnchor)},
				{Value: "oversee", Label: "\"It only goes right if I'm watching it\"", Tag: string(belief.ControlLedger)},
				{Value: "overflow", Label: "\"Give first; it comes back multiplied\"", Tag: string(belief.OpenHand)},
			},
		},
		{
			ID: "L7_Q3", Layer: 7,
			Prompt: "When a windfall lands, your first instinct is to:",
			Options: []Option{
				{Value: "reserve", Label: "Bank it against the winter that's always coming", Tag: string(belief.ScarcityGuard)},
				{Value: "reinvest", Label: "Put it straight back into motion", Tag: string(belief.MomentumFaith)},
				{Value: "endow", Label: "Move it toward something that outlives me", Tag: string(belief.LegacyAnchor)},
			},
		},
	}
}
