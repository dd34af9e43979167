package bank

import (
	"fmt"

	"edna/domain/belief"
	"edna/domain/core"
	"edna/domain/identity"
	"edna/domain/mirror"
	"edna/domain/subtype"
)

// Validate checks every bank against its layer's closed tag vocabulary,
// rejects duplicate question IDs, and confirms the Layer 2 branches cover
// all three core types. Run once at startup so scoring never meets an
// unrecognized tag.
func Validate() error {
	seen := make(map[QuestionID]bool)
	for _, q := range All() {
		if seen[q.ID] {
			return fmt.Errorf("%w: %s", core.ErrDuplicateID, q.ID)
		}
		seen[q.ID] = true

		if len(q.Options) < 2 {
			return core.NewBankError(string(q.ID), fmt.Errorf("needs at least two options"))
		}
		if err := validateQuestion(q); err != nil {
			return core.NewBankError(string(q.ID), err)
		}
	}

	for _, ct := range identity.CoreTypes() {
		if len(Layer2(ct)) == 0 {
			return fmt.Errorf("%w: %s", core.ErrUncoveredCore, ct)
		}
	}
	return nil
}

func validateQuestion(q Question) error {
	switch q.Layer {
	case 1:
		return optionTagsIn(q, TagArchitect, TagAlchemist)
	case 2:
		return layer2Tags(q)
	case 3:
		return layer3Question(q)
	case 4:
		return optionTagsIn(q, TagContext)
	case 5:
		if !stringIn(q.Trait, Traits()) {
			return fmt.Errorf("trait %q not in screener trait set", q.Trait)
		}
		return optionTagsIn(q, TagAffirm, TagDeny)
	case 6:
		if !stringIn(q.Axis, Axes()) {
			return fmt.Errorf("axis %q not in drive axis set", q.Axis)
		}
		return nil
	case 7:
		return layer7Tags(q)
	default:
		return fmt.Errorf("unknown layer %d", q.Layer)
	}
}

func optionTagsIn(q Question, allowed ...string) error {
	for _, opt := range q.Options {
		if !stringIn(opt.Tag, allowed) {
			return fmt.Errorf("%w: %q", core.ErrUnrecognizedTag, opt.Tag)
		}
	}
	return nil
}

func layer2Tags(q Question) error {
	// A Layer 2 option tag must be a subtype from some core type's
	// vocabulary; cross-branch bleed is caught by the disjoint vocabularies.
	valid := make(map[string]bool)
	for _, ct := range identity.CoreTypes() {
		for _, s := range subtype.Vocabulary(ct) {
			valid[string(s)] = true
		}
	}
	for _, opt := range q.Options {
		if !valid[opt.Tag] {
			return fmt.Errorf("%w: subtype %q", core.ErrUnrecognizedTag, opt.Tag)
		}
	}
	return nil
}

func layer3Question(q Question) error {
	found := false
	for _, d := range mirror.Dimensions() {
		if q.Dimension == d {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("dimension %q not a mirror dimension", q.Dimension)
	}
	for _, opt := range q.Options {
		if opt.Weight < 0 || opt.Weight > 100 {
			return fmt.Errorf("option %q weight %d outside [0,100]", opt.Value, opt.Weight)
		}
	}
	return nil
}

func layer7Tags(q Question) error {
	valid := make(map[string]bool)
	for _, b := range belief.Beliefs() {
		valid[string(b)] = true
	}
	for _, opt := range q.Options {
		if !valid[opt.Tag] {
			return fmt.Errorf("%w: belief %q", core.ErrUnrecognizedTag, opt.Tag)
		}
	}
	return nil
}

func stringIn(s string, set []string) bool {
	for _, item := range set {
		if item == s {
			return true
		}
	}
	return false
}
