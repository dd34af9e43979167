package identity

import (
	"testing"
)

// TestClassifyCoreType tests the asymmetry rule boundaries
func TestClassifyCoreType(t *testing.T) {
	tests := []struct {
		name      string
		architect int
		alchemist int
		expected  CoreType
	}{
		{"clear architect", 50, 20, CoreArchitect},
		{"clear alchemist", 20, 50, CoreAlchemist},
		{"difference exactly at threshold", 35, 5, CoreArchitect},
		{"difference one below threshold", 60, 31, CoreBlurred},
		{"equal counts", 40, 40, CoreBlurred},
		{"both zero", 0, 0, CoreBlurred},
		{"threshold boundary toward alchemist", 5, 35, CoreAlchemist},
		{"large equal-ish counts", 100, 71, CoreBlurred},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := ClassifyCoreType(test.architect, test.alchemist, DefaultThreshold)
			if got != test.expected {
				t.Errorf("ClassifyCoreType(%d, %d, %d) = %s, want %s",
					test.architect, test.alchemist, DefaultThreshold, got, test.expected)
			}
		})
	}
}

// TestClassifyCoreTypeCustomThreshold tests that the threshold parameter is honored
func TestClassifyCoreTypeCustomThreshold(t *testing.T) {
	if got := ClassifyCoreType(10, 0, 5); got != CoreArchitect {
		t.Errorf("expected architect at threshold 5, got %s", got)
	}
	if got := ClassifyCoreType(10, 0, 11); got != CoreBlurred {
		t.Errorf("expected blurred at threshold 11, got %s", got)
	}
}

// TestGenerateCoreIdentityProfile tests the profile assembly
func TestGenerateCoreIdentityProfile(t *testing.T) {
	p := GenerateCoreIdentityProfile(70, 30)

	if p.Type != CoreArchitect {
		t.Errorf("expected architect, got %s", p.Type)
	}
	if p.ArchitectCount != 70 || p.AlchemistCount != 30 {
		t.Errorf("counts not preserved: got %d/%d", p.ArchitectCount, p.AlchemistCount)
	}
	if p.Asymmetry != 40 {
		t.Errorf("expected asymmetry 40, got %d", p.Asymmetry)
	}
	if p.ResultLine != ResultLineTemplates[CoreArchitect] {
		t.Errorf("result line does not match template: %q", p.ResultLine)
	}
	if p.CoreStatement == "" || len(p.Strengths) == 0 || len(p.BlindSpots) == 0 {
		t.Error("expected narrative content to be populated")
	}
}

// TestGenerateCoreIdentityProfileAsymmetryIsAbsolute tests asymmetry for inverted counts
func TestGenerateCoreIdentityProfileAsymmetryIsAbsolute(t *testing.T) {
	p := GenerateCoreIdentityProfile(20, 60)
	if p.Type != CoreAlchemist {
		t.Errorf("expected alchemist, got %s", p.Type)
	}
	if p.Asymmetry != 40 {
		t.Errorf("expected asymmetry 40, got %d", p.Asymmetry)
	}
}

// TestResultLineTemplatesCoverAllTypes tests template coverage
func TestResultLineTemplatesCoverAllTypes(t *testing.T) {
	for _, coreType := range CoreTypes() {
		if ResultLineTemplates[coreType] == "" {
			t.Errorf("missing result line template for %s", coreType)
		}
	}
}
