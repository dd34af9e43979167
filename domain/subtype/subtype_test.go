package subtype

import (
	"testing"

	"edna/domain/identity"
)

// TestResolveMajority tests the majority vote
func TestResolveMajority(t *testing.T) {
	p := Resolve(identity.CoreArchitect, []Subtype{
		MasterPlanner, MasterPlanner, SystemsBuilder, MasterPlanner,
	})
	if p.Subtype != MasterPlanner {
		t.Errorf("expected master_planner, got %s", p.Subtype)
	}
	if p.TagCounts[MasterPlanner] != 3 || p.TagCounts[SystemsBuilder] != 1 {
		t.Errorf("unexpected tag counts: %v", p.TagCounts)
	}
	if p.Label == "" || p.Summary == "" {
		t.Error("expected narrative content")
	}
}

// TestResolveTieBreak tests that ties resolve to the earliest vocabulary entry
func TestResolveTieBreak(t *testing.T) {
	tests := []struct {
		name     string
		coreType identity.CoreType
		tags     []Subtype
		expected Subtype
	}{
		{"architect two-way tie", identity.CoreArchitect,
			[]Subtype{MasterPlanner, QuietStrategist}, MasterPlanner},
		{"architect tie includes first", identity.CoreArchitect,
			[]Subtype{QuietStrategist, SystemsBuilder}, SystemsBuilder},
		{"alchemist three-way tie", identity.CoreAlchemist,
			[]Subtype{VisionaryCatalyst, StoryAlchemist, RelationalWeaver}, VisionaryCatalyst},
		{"blurred no answers", identity.CoreBlurred, nil, AdaptiveIntegrator},
		{"architect no answers", identity.CoreArchitect, nil, SystemsBuilder},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := Resolve(test.coreType, test.tags)
			if p.Subtype != test.expected {
				t.Errorf("Resolve(%s, %v) = %s, want %s", test.coreType, test.tags, p.Subtype, test.expected)
			}
		})
	}
}

// TestResolveIgnoresForeignTags tests that tags outside the vocabulary are dropped
func TestResolveIgnoresForeignTags(t *testing.T) {
	p := Resolve(identity.CoreArchitect, []Subtype{
		StoryAlchemist, StoryAlchemist, StoryAlchemist, QuietStrategist,
	})
	if p.Subtype != QuietStrategist {
		t.Errorf("foreign tags should not vote: got %s", p.Subtype)
	}
	if _, ok := p.TagCounts[StoryAlchemist]; ok {
		t.Error("foreign tag leaked into counts")
	}
}

// TestVocabularyDisjoint tests that the three vocabularies do not overlap
func TestVocabularyDisjoint(t *testing.T) {
	seen := make(map[Subtype]identity.CoreType)
	for _, coreType := range identity.CoreTypes() {
		for _, s := range Vocabulary(coreType) {
			if prev, ok := seen[s]; ok {
				t.Errorf("subtype %s appears in both %s and %s", s, prev, coreType)
			}
			seen[s] = coreType
		}
	}
	if len(seen) != 9 {
		t.Errorf("expected 9 subtypes total, got %d", len(seen))
	}
}
