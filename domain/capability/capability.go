// Package capability implements Layer 5: the neurodiversity capability
// model. Four domain scores come from per-domain first-match trait chains;
// compound detection is pairwise-additive while the headline content lookup
// is single-trait first-match. The two rule styles coexist and the per-domain
// precedence orders differ; both behaviors are load-bearing.
package capability

// Traits are the four boolean inputs derived from the Layer 5 screener
type Traits struct {
	ADHD     bool `json:"adhd"`
	Dyslexia bool `json:"dyslexia"`
	Autism   bool `json:"autism"`
	Sensory  bool `json:"sensory"`
}

// Band is the three-level read of a domain score. Cutoffs: <40 low,
// <70 moderate, ≥70 high. Layer 6 bands differently; do not unify.
type Band string

const (
	BandLow      Band = "low"
	BandModerate Band = "moderate"
	BandHigh     Band = "high"
)

// BandFor maps a domain score to its band
func BandFor(score int) Band {
	switch {
	case score < 40:
		return BandLow
	case score < 70:
		return BandModerate
	default:
		return BandHigh
	}
}

// DomainScore is one capability domain's numeric score, band, and
// trait-conditioned content
type DomainScore struct {
	Score       int      `json:"score"`
	Band        Band     `json:"band"`
	Patterns    []string `json:"patterns"`
	Strengths   []string `json:"strengths"`
	Adaptations []string `json:"adaptations"`
}

// Domain score rule chains. Each is a mutually exclusive first-match check,
// not a weighted combination: when two traits are true the earlier check
// wins. The check order differs per domain.

func attentionScore(t Traits) int {
	if t.ADHD {
		return 25
	}
	if t.Autism {
		return 60
	}
	return 85
}

func languageScore(t Traits) int {
	if t.Dyslexia {
		return 30
	}
	if t.Autism {
		return 55
	}
	return 85
}

func structureScore(t Traits) int {
	if t.Autism {
		return 88
	}
	if t.ADHD {
		return 35
	}
	return 65
}

func sensoryScore(t Traits) int {
	if t.Sensory {
		return 30
	}
	if t.Autism {
		return 50
	}
	return 80
}

// Profile is the complete Layer 5 output
type Profile struct {
	AttentionRegulation DomainScore `json:"attention_regulation"`
	LanguageProcessing  DomainScore `json:"language_processing"`
	StructureRoutine    DomainScore `json:"structure_routine"`
	SensoryManagement   DomainScore `json:"sensory_management"`
	PrimaryPattern      string      `json:"primary_pattern"`
	CompoundProfiles    []string    `json:"compound_profiles"`
	Clarity             string      `json:"clarity"`
	Headline            string      `json:"headline"`
	Strengths           []string    `json:"strengths"`
	Adaptations         []string    `json:"adaptations"`
	NextSevenDays       []string    `json:"next_7_days"`
}

// GenerateProfile derives the full capability profile from the four trait
// flags. Pure and total; all-false traits yield the neurotypical baseline.
func GenerateProfile(t Traits) Profile {
	attention := attentionScore(t)
	language := languageScore(t)
	structure := structureScore(t)
	sensory := sensoryScore(t)

	blocks := resultBlocksFor(t)

	return Profile{
		AttentionRegulation: domainScore("attention_regulation", attention, t),
		LanguageProcessing:  domainScore("language_processing", language, t),
		StructureRoutine:    domainScore("structure_routine", structure, t),
		SensoryManagement:   domainScore("sensory_management", sensory, t),
		PrimaryPattern:      primaryPattern(t),
		CompoundProfiles:    compoundProfiles(t),
		Clarity:             clarityRating(attention, language, structure, sensory),
		Headline:            blocks.Headline,
		Strengths:           blocks.Strengths,
		Adaptations:         blocks.Adaptations,
		NextSevenDays:       blocks.NextSevenDays,
	}
}

func domainScore(domain string, score int, t Traits) DomainScore {
	content := domainContentFor(domain, t)
	return DomainScore{
		Score:       score,
		Band:        BandFor(score),
		Patterns:    content.Patterns,
		Strengths:   content.Strengths,
		Adaptations: content.Adaptations,
	}
}

func activeCount(t Traits) int {
	n := 0
	for _, flag := range []bool{t.ADHD, t.Dyslexia, t.Autism, t.Sensory} {
		if flag {
			n++
		}
	}
	return n
}

// primaryPattern labels the headline trait combination. Exactly
// ADHD+Dyslexia is a hardcoded special case; every other multi-trait
// combination gets the generic complex label.
func primaryPattern(t Traits) string {
	switch activeCount(t) {
	case 0:
		return "Neurotypical baseline"
	case 1:
		switch {
		case t.ADHD:
			return "ADHD-linked rhythms"
		case t.Dyslexia:
			return "Dyslexia-linked rhythms"
		case t.Autism:
			return "Autism-linked rhythms"
		default:
			return "Sensory-linked rhythms"
		}
	case 2:
		if t.ADHD && t.Dyslexia {
			return "ADHD + Dyslexia compound profile"
		}
		return "Complex neurodivergent profile"
	default:
		return "Complex neurodivergent profile"
	}
}

// compoundProfiles is additive over specific trait pairs; it fires
// independently of the primary pattern label.
func compoundProfiles(t Traits) []string {
	var profiles []string
	if t.ADHD && t.Dyslexia {
		profiles = append(profiles,
			"Idea velocity outruns written capture: pair voice notes with a transcription step",
			"Reading-heavy diligence drains the attention budget twice over: delegate first-pass reading",
		)
	}
	if t.ADHD && t.Sensory {
		profiles = append(profiles,
			"Stimulation both fuels and floods you: design environments you can dial, not just escape",
		)
	}
	if t.Autism && t.Dyslexia {
		profiles = append(profiles,
			"Deep pattern recognition with slow text throughput: diagrams and models are your native documents",
		)
	}
	return profiles
}

// clarityRating reads the spread across the four domain scores
func clarityRating(scores ...int) string {
	min, max := scores[0], scores[0]
	for _, s := range scores[1:] {
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	if max-min > 40 {
		return "High clarity"
	}
	return "Moderate clarity"
}
