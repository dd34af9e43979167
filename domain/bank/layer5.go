package bank

// Layer 5: neurodiversity screener. Three questions per trait; options are
// tagged affirm or deny and a trait activates when at least two of its
// three questions are affirmed. This is a working-style screen, not a
// diagnostic instrument.

const (
	TraitADHD     = "adhd"
	TraitDyslexia = "dyslexia"
	TraitAutism   = "autism"
	TraitSensory  = "sensory"

	TagAffirm = "affirm"
	TagDeny   = "deny"
)

// Traits lists the four screener traits in bank order
func Traits() []string {
	return []string{TraitADHD, TraitDyslexia, TraitAutism, TraitSensory}
}

func screenOptions(affirmLabel, denyLabel string) []Option {
	return []Option{
		{Value: "yes", Label: affirmLabel, Tag: TagAffirm},
		{Value: "no", Label: denyLabel, Tag: TagDeny},
	}
}

func Layer5() []Question {
	return []Question{
		{
			ID: "L5_Q1", Layer: 5, Trait: TraitADHD,
			Prompt:  "My focus is all-or-nothing: deep immersion on what grips me, rapid decay on what doesn't.",
			Options: screenOptions("That's me", "Not really"),
		},
		{
			ID: "L5_Q2", Layer: 5, Trait: TraitADHD,
			Prompt:  "Follow-ups, admin, and paperwork pile up no matter what system I try.",
			Options: screenOptions("That's me", "Not really"),
		},
		{
			ID: "L5_Q3", Layer: 5, Trait: TraitADHD,
			Prompt:  "I start more projects than I finish, and the starting is the best part.",
			Options: screenOptions("That's me", "Not really"),
		},
		{
			ID: "L5_Q4", Layer: 5, Trait: TraitDyslexia,
			Prompt:  "Reading long documents takes me far more effort than my thinking ability suggests it should.",
			Options: screenOptions("That's me", "Not really"),
		},
		{
			ID: "L5_Q5", Layer: 5, Trait: TraitDyslexia,
			Prompt:  "I'd rather explain anything out loud or in a diagram than in writing.",
			Options: screenOptions("That's me", "Not really"),
		},
		{
			ID: "L5_Q6", Layer: 5, Trait: TraitDyslexia,
			Prompt:  "Spelling and written detail errors slip through even when I check carefully.",
			Options: screenOptions("That's me", "Not really"),
		},
		{
			ID: "L5_Q7", Layer: 5, Trait: TraitAutism,
			Prompt:  "Unplanned changes to my day carry a real cost, even when the change is objectively fine.",
			Options: screenOptions("That's me", "Not really"),
		},
		{
			ID: "L5_Q8", Layer: 5, Trait: TraitAutism,
			Prompt:  "I take language literally first; hints and implied asks often miss me.",
			Options: screenOptions("That's me", "Not really"),
		},
		{
			ID: "L5_Q9", Layer: 5, Trait: TraitAutism,
			Prompt:  "I can sustain precision on a subject long after others have lost interest.",
			Options: screenOptions("That's me", "Not really"),
		},
		{
			ID: "L5_Q10", Layer: 5, Trait: TraitSensory,
			Prompt:  "Noise, lighting, or crowding in a workspace measurably changes my output.",
			Options: screenOptions("That's me", "Not really"),
		},
		{
			ID: "L5_Q11", Layer: 5, Trait: TraitSensory,
			Prompt:  "After conferences or busy venues I need real recovery time, not just a night's sleep.",
			Options: screenOptions("That's me", "Not really"),
		},
		{
			ID: "L5_Q12", Layer: 5, Trait: TraitSensory,
			Prompt:  "I notice environmental details (sounds, textures, flicker) that others say aren't there.",
			Options: screenOptions("That's me", "Not really"),
		},
	}
}
