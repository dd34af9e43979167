package mirror

import (
	"testing"

	"edna/domain/identity"
)

func uniform(v float64) Scores {
	return Scores{Recognition: v, Translation: v, Integration: v, Governance: v, ConflictRecovery: v}
}

// TestOverallScore tests the weighted average
func TestOverallScore(t *testing.T) {
	tests := []struct {
		name     string
		scores   Scores
		expected int
	}{
		{"all zero", uniform(0), 0},
		{"all hundred", uniform(100), 100},
		{"all fifty", uniform(50), 50},
		// (80 + 1.25*60 + 80 + 1.25*60 + 80) / 5.5 = 390/5.5 = 70.909 -> 71
		{"weighted mix", Scores{80, 60, 80, 60, 80}, 71},
		// Translation and Governance carry more: raising only them moves
		// the overall more than raising the unit-weight dimensions.
		// (0 + 1.25*100 + 0 + 1.25*100 + 0) / 5.5 = 250/5.5 = 45.45 -> 45
		{"weighted dimensions only", Scores{0, 100, 0, 100, 0}, 45},
		// (100 + 0 + 100 + 0 + 100) / 5.5 = 300/5.5 = 54.5 -> 55
		{"unit dimensions only", Scores{100, 0, 100, 0, 100}, 55},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := OverallScore(test.scores); got != test.expected {
				t.Errorf("OverallScore(%+v) = %d, want %d", test.scores, got, test.expected)
			}
		})
	}
}

// TestBandFor tests the band cutoffs
func TestBandFor(t *testing.T) {
	tests := []struct {
		score    int
		expected Band
	}{
		{0, BandVeryLow},
		{49, BandVeryLow},
		{50, BandLow},
		{64, BandLow},
		{65, BandModerate},
		{74, BandModerate},
		{75, BandHigh},
		{84, BandHigh},
		{85, BandMastery},
		{100, BandMastery},
	}

	for _, test := range tests {
		if got := BandFor(test.score); got != test.expected {
			t.Errorf("BandFor(%d) = %s, want %s", test.score, got, test.expected)
		}
	}
}

// TestGenerateProfileGovernanceIndicators tests the dual-KPI and chairing flags
func TestGenerateProfileGovernanceIndicators(t *testing.T) {
	tests := []struct {
		governance   float64
		wantDualKPI  bool
		wantChairing bool
	}{
		{64, false, false},
		{65, true, false},
		{74, true, false},
		{75, true, true},
		{100, true, true},
	}

	for _, test := range tests {
		s := uniform(50)
		s.Governance = test.governance
		p := GenerateProfile(s, identity.CoreArchitect)
		if p.DualKPIPresent != test.wantDualKPI {
			t.Errorf("governance %.0f: DualKPIPresent = %v, want %v", test.governance, p.DualKPIPresent, test.wantDualKPI)
		}
		if p.ChairingRolesPresent != test.wantChairing {
			t.Errorf("governance %.0f: ChairingRolesPresent = %v, want %v", test.governance, p.ChairingRolesPresent, test.wantChairing)
		}
	}
}

// TestGenerateProfileDimensionLevels tests the per-dimension 65 cutoff
func TestGenerateProfileDimensionLevels(t *testing.T) {
	s := uniform(64)
	s.Translation = 65
	p := GenerateProfile(s, identity.CoreArchitect)

	if p.Recognition.Level != "low" {
		t.Errorf("recognition at 64 should be low, got %s", p.Recognition.Level)
	}
	if p.Translation.Level != "high" {
		t.Errorf("translation at 65 should be high, got %s", p.Translation.Level)
	}
	if len(p.Translation.Indicators) == 0 {
		t.Error("expected indicators for translation")
	}
}

// TestGenerateProfileDirections tests directional insight selection per core type
func TestGenerateProfileDirections(t *testing.T) {
	tests := []struct {
		coreType identity.CoreType
		count    int
	}{
		{identity.CoreArchitect, 1},
		{identity.CoreAlchemist, 1},
		{identity.CoreBlurred, 2},
	}

	for _, test := range tests {
		p := GenerateProfile(uniform(50), test.coreType)
		if len(p.Directions) != test.count {
			t.Errorf("%s: expected %d directions, got %d", test.coreType, test.count, len(p.Directions))
		}
	}
}

// TestGenerateProfileCoreTypeDoesNotAffectScore tests that routing never changes the number
func TestGenerateProfileCoreTypeDoesNotAffectScore(t *testing.T) {
	s := Scores{70, 55, 80, 45, 90}
	architect := GenerateProfile(s, identity.CoreArchitect)
	blurred := GenerateProfile(s, identity.CoreBlurred)
	if architect.OverallScore != blurred.OverallScore {
		t.Errorf("core type changed the overall score: %d vs %d", architect.OverallScore, blurred.OverallScore)
	}
}

// TestDevelopmentRecommendationsFallback tests the unknown-band fallback
func TestDevelopmentRecommendationsFallback(t *testing.T) {
	known := DevelopmentRecommendations(BandMastery)
	if len(known) == 0 {
		t.Fatal("expected recommendations for Mastery band")
	}
	fallback := DevelopmentRecommendations(Band("nonsense"))
	moderate := DevelopmentRecommendations(BandModerate)
	if len(fallback) != len(moderate) {
		t.Error("unknown band should fall back to Moderate recommendations")
	}
	for i := range fallback {
		if fallback[i] != moderate[i] {
			t.Error("unknown band should fall back to Moderate recommendations")
		}
	}
}
