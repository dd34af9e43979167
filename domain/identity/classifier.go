// Package identity implements the Layer 1 core-type classifier: the
// asymmetry rule that splits respondents into architect, alchemist, or
// blurred, and the projection of that tag onto static narrative content.
package identity

// CoreType is the top-level personality classification
type CoreType string

const (
	CoreArchitect CoreType = "architect"
	CoreAlchemist CoreType = "alchemist"
	CoreBlurred   CoreType = "blurred"
)

// DefaultThreshold is the asymmetry cutoff below which the result is blurred
const DefaultThreshold = 30

// CoreTypes lists all core types in declaration order
func CoreTypes() []CoreType {
	return []CoreType{CoreArchitect, CoreAlchemist, CoreBlurred}
}

// Valid reports whether t is a recognized core type
func (t CoreType) Valid() bool {
	switch t {
	case CoreArchitect, CoreAlchemist, CoreBlurred:
		return true
	}
	return false
}

// ClassifyCoreType applies the asymmetry rule: if the absolute difference
// between the two counts is strictly below the threshold the result is
// blurred, otherwise the higher count wins. Total over all integer inputs;
// negative counts are the caller's problem.
func ClassifyCoreType(architectCount, alchemistCount, threshold int) CoreType {
	diff := architectCount - alchemistCount
	if diff < 0 {
		diff = -diff
	}
	if diff < threshold {
		return CoreBlurred
	}
	if architectCount > alchemistCount {
		return CoreArchitect
	}
	return CoreAlchemist
}

// CoreIdentityProfile is the full Layer 1 output: the classification tag,
// the raw tallies it was derived from, and the narrative content bundle
// looked up by tag.
type CoreIdentityProfile struct {
	Type             CoreType `json:"type"`
	ArchitectCount   int      `json:"architect_count"`
	AlchemistCount   int      `json:"alchemist_count"`
	Asymmetry        int      `json:"asymmetry"`
	ConstructSignals []string `json:"construct_signals"`
	Strengths        []string `json:"strengths"`
	BlindSpots       []string `json:"blind_spots"`
	FailureModes     []string `json:"failure_modes"`
	BestContexts     []string `json:"best_contexts"`
	EDNAAdaptations  []string `json:"edna_adaptations"`
	CoreStatement    string   `json:"core_statement"`
	ResultLine       string   `json:"result_line"`
}

// GenerateCoreIdentityProfile classifies the counts at the default threshold
// and projects the tag onto the static content tables. Pure; every tag has
// table coverage so there are no error paths.
func GenerateCoreIdentityProfile(architectCount, alchemistCount int) CoreIdentityProfile {
	coreType := ClassifyCoreType(architectCount, alchemistCount, DefaultThreshold)
	asymmetry := architectCount - alchemistCount
	if asymmetry < 0 {
		asymmetry = -asymmetry
	}

	content := coreContent[coreType]
	return CoreIdentityProfile{
		Type:             coreType,
		ArchitectCount:   architectCount,
		AlchemistCount:   alchemistCount,
		Asymmetry:        asymmetry,
		ConstructSignals: content.ConstructSignals,
		Strengths:        content.Strengths,
		BlindSpots:       content.BlindSpots,
		FailureModes:     content.FailureModes,
		BestContexts:     content.BestContexts,
		EDNAAdaptations:  content.EDNAAdaptations,
		CoreStatement:    content.CoreStatement,
		ResultLine:       ResultLineTemplates[coreType],
	}
}
