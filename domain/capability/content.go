package capability

type domainNarrative struct {
	Patterns    []string
	Strengths   []string
	Adaptations []string
}

// domainContentFor selects trait-conditioned content per capability domain.
// Each domain reads the same precedence order as its score chain.
func domainContentFor(domain string, t Traits) domainNarrative {
	switch domain {
	case "attention_regulation":
		if t.ADHD {
			return domainNarrative{
				Patterns:    []string{"Interest-driven focus with sharp drop-offs", "Hyperfocus windows that ignore the clock", "Admin and follow-up tasks decay fastest"},
				Strengths:   []string{"Exceptional output inside hyperfocus", "Fast context absorption on novel problems"},
				Adaptations: []string{"Externalize every commitment the moment it is made", "Schedule deep work inside known hyperfocus windows", "Body-double or co-work for decay-prone tasks"},
			}
		}
		if t.Autism {
			return domainNarrative{
				Patterns:    []string{"Strong sustained focus on chosen subjects", "Costly attention switching between contexts"},
				Strengths:   []string{"Depth of focus rivals any productivity system", "Low susceptibility to novelty distraction"},
				Adaptations: []string{"Batch similar work to minimize switching", "Protect transition buffers between meetings"},
			}
		}
		return domainNarrative{
			Patterns:    []string{"Attention follows priority with ordinary friction"},
			Strengths:   []string{"Flexible focus allocation across contexts"},
			Adaptations: []string{"Standard time-blocking is sufficient here"},
		}
	case "language_processing":
		if t.Dyslexia {
			return domainNarrative{
				Patterns:    []string{"Slow, effortful reading relative to verbal reasoning", "Spelling and written detail errors under time pressure"},
				Strengths:   []string{"Strong spatial and big-picture reasoning", "Verbal storytelling outpaces written output"},
				Adaptations: []string{"Default to audio and dictation pipelines", "Have contracts and key documents read aloud", "Use diagrams where others use memos"},
			}
		}
		if t.Autism {
			return domainNarrative{
				Patterns:    []string{"Literal-first parsing of ambiguous language", "Precision in written over spoken channels"},
				Strengths:   []string{"Contracts and specs read with unusual rigor"},
				Adaptations: []string{"Request explicit asks instead of hints", "Confirm implied commitments in writing"},
			}
		}
		return domainNarrative{
			Patterns:    []string{"Typical read-write throughput"},
			Strengths:   []string{"Comfortable across written and verbal channels"},
			Adaptations: []string{"No specific accommodation needed"},
		}
	case "structure_routine":
		if t.Autism {
			return domainNarrative{
				Patterns:    []string{"Thrives inside predictable structure", "Unplanned change carries real cost"},
				Strengths:   []string{"Builds and keeps routines others abandon", "Consistency compounds into reliability"},
				Adaptations: []string{"Negotiate change lead-time with partners", "Keep one flex-slot per day for the unplanned"},
			}
		}
		if t.ADHD {
			return domainNarrative{
				Patterns:    []string{"Routines erode without external scaffolding", "Novelty beats schedule in the moment"},
				Strengths:   []string{"Improvises well when plans break"},
				Adaptations: []string{"Anchor routines to existing habits, not willpower", "Let tools own the routine; you own the exceptions"},
			}
		}
		return domainNarrative{
			Patterns:    []string{"Holds routine when useful, drops it when not"},
			Strengths:   []string{"Moderate structure tolerance in both directions"},
			Adaptations: []string{"Match structure level to venture stage"},
		}
	default: // sensory_management
		if t.Sensory {
			return domainNarrative{
				Patterns:    []string{"Environment noise and light directly tax output", "Crowded contexts drain faster than the work itself"},
				Strengths:   []string{"Notices environmental and somatic signals others miss"},
				Adaptations: []string{"Control the default workspace ruthlessly", "Pre-scout venues for pitches and negotiations", "Budget recovery time after high-stimulation events"},
			}
		}
		if t.Autism {
			return domainNarrative{
				Patterns:    []string{"Specific sensory channels overload under load"},
				Strengths:   []string{"Fine discrimination in preferred channels"},
				Adaptations: []string{"Identify and shield the two worst channels"},
			}
		}
		return domainNarrative{
			Patterns:    []string{"Ordinary sensory tolerance"},
			Strengths:   []string{"Works acceptably in most environments"},
			Adaptations: []string{"No specific accommodation needed"},
		}
	}
}

type resultBlocks struct {
	Headline      string
	Strengths     []string
	Adaptations   []string
	NextSevenDays []string
}

// resultBlocksFor picks the headline content by single-trait priority:
// adhd, then dyslexia, then autism, else the neurotypical default. This is
// first-match-wins even when multiple traits are active, unlike the
// pairwise compound detection.
func resultBlocksFor(t Traits) resultBlocks {
	if t.ADHD {
		return resultBlocks{
			Headline: "Your engine is interest. Businesses built on your hyperfocus subjects will outrun anything you force.",
			Strengths: []string{
				"Rapid ideation and unusual idea combinations",
				"Crisis response without freeze",
				"Infectious energy when genuinely engaged",
			},
			Adaptations: []string{
				"Hire or automate your follow-up layer first",
				"Make decisions reversible; your conviction spikes fast",
				"Treat boredom as data about the venture, not a discipline failure",
			},
			NextSevenDays: []string{
				"Track your focus peaks for seven days; note time and trigger",
				"Move one recurring admin task to automation or delegation",
				"Pick your single highest-interest project and cancel one competing one",
			},
		}
	}
	if t.Dyslexia {
		return resultBlocks{
			Headline: "Your edge is the picture, not the paragraph. Build ventures where spatial and verbal reasoning win.",
			Strengths: []string{
				"Big-picture synthesis from sparse information",
				"Persuasive verbal communication",
				"Resilience built from years of workaround practice",
			},
			Adaptations: []string{
				"Put dictation at the center of your writing pipeline",
				"Never sign what you have not heard read aloud",
				"Present with diagrams; let others write the memo",
			},
			NextSevenDays: []string{
				"Set up one dictation tool and use it for every message over two sentences",
				"Convert your current plan into a one-page diagram",
				"Identify the one document type that slows you most and delegate it",
			},
		}
	}
	if t.Autism {
		return resultBlocks{
			Headline: "Your edge is depth and consistency. Ventures rewarding sustained precision are yours to dominate.",
			Strengths: []string{
				"Pattern detection over long time horizons",
				"Reliability that becomes a brand attribute",
				"Honest signal in a market full of noise",
			},
			Adaptations: []string{
				"Script the first minutes of high-stakes social settings",
				"Protect routine as infrastructure, not preference",
				"Partner for ambiguity-heavy negotiation",
			},
			NextSevenDays: []string{
				"Write the operating rules you already follow implicitly",
				"Add a change-notice agreement with your closest collaborator",
				"Audit your calendar for unnecessary context switches",
			},
		}
	}
	return resultBlocks{
		Headline: "No strong neurodivergent signal in your answers. Your capability profile is set by habits, not wiring.",
		Strengths: []string{
			"Flexible across attention, language, structure, and environment",
			"Low accommodation overhead in teams",
		},
		Adaptations: []string{
			"Standard productivity systems should work as documented",
			"Watch for mild patterns under stress; re-test if they persist",
		},
		NextSevenDays: []string{
			"Pick one capability domain and raise its ceiling deliberately",
			"Ask two colleagues which domain they see you struggle in",
		},
	}
}
