package profile

import (
	"bytes"
	"encoding/json"
	"testing"

	"edna/domain/bank"
	"edna/domain/belief"
	"edna/domain/drive"
	"edna/domain/identity"
	"edna/domain/mirror"
	"edna/domain/subtype"
)

// architectAnswers builds a complete answer map for a clear architect:
// a 7-3 Layer 1 split, a systems-builder Layer 2 majority, uniform "often"
// mirror answers, ADHD screened in, and a growth/low/balanced drive row.
func architectAnswers() AnswerMap {
	answers := AnswerMap{
		"L1_Q1":  "map_it",
		"L1_Q2":  "runs_without_you",
		"L1_Q3":  "broken_process",
		"L1_Q4":  "modeled",
		"L1_Q5":  "the_system",
		"L1_Q6":  "blocked",
		"L1_Q7":  "sloppy_collapse",
		"L1_Q8":  "flowing",
		"L1_Q9":  "the_spark",
		"L1_Q10": "natural_state",

		"L2_AR_Q1": "build_ops",
		"L2_AR_Q2": "playbook",
		"L2_AR_Q3": "no_foresight",
		"L2_AR_Q4": "prepared_terms",

		"L4_Q1": "scaling",
		"L4_Q2": "small_team",
		"L4_Q3": "leverage",

		"L6_Q1": drive.MindsetGrowth,
		"L6_Q2": drive.RiskLow,
		"L6_Q3": drive.EnergyBalanced,

		"L7_Q1": "prove_it",
		"L7_Q2": "outlast",
		"L7_Q3": "reinvest",
	}
	for _, q := range bank.Layer3() {
		answers[q.ID] = "often"
	}
	// Two of three ADHD screeners affirmed, everything else denied.
	for _, q := range bank.Layer5() {
		answers[q.ID] = "no"
	}
	answers["L5_Q1"] = "yes"
	answers["L5_Q2"] = "yes"
	return answers
}

// TestScoreArchitectPath tests the full pipeline on a clear architect map
func TestScoreArchitectPath(t *testing.T) {
	res := Score(architectAnswers())

	if res.CoreIdentity.Type != identity.CoreArchitect {
		t.Fatalf("expected architect, got %s", res.CoreIdentity.Type)
	}
	if res.CoreIdentity.ArchitectCount != 70 || res.CoreIdentity.AlchemistCount != 30 {
		t.Errorf("expected scaled counts 70/30, got %d/%d",
			res.CoreIdentity.ArchitectCount, res.CoreIdentity.AlchemistCount)
	}
	if res.CoreIdentity.Asymmetry != 40 {
		t.Errorf("expected asymmetry 40, got %d", res.CoreIdentity.Asymmetry)
	}

	if res.Subtype.Subtype != subtype.SystemsBuilder {
		t.Errorf("expected systems_builder, got %s", res.Subtype.Subtype)
	}

	// All "often" answers: every dimension means 70, overall
	// (70 + 87.5 + 70 + 87.5 + 70) / 5.5 = 70.
	if res.MirrorAwareness.OverallScore != 70 {
		t.Errorf("expected mirror overall 70, got %d", res.MirrorAwareness.OverallScore)
	}
	if res.MirrorAwareness.Band != mirror.BandModerate {
		t.Errorf("expected Moderate band, got %s", res.MirrorAwareness.Band)
	}
	if !res.MirrorAwareness.DualKPIPresent || res.MirrorAwareness.ChairingRolesPresent {
		t.Errorf("governance 70 should set dual KPI only: dual=%v chairing=%v",
			res.MirrorAwareness.DualKPIPresent, res.MirrorAwareness.ChairingRolesPresent)
	}
	if len(res.MirrorAwareness.Directions) != 1 {
		t.Errorf("architect should get 1 direction, got %d", len(res.MirrorAwareness.Directions))
	}

	if res.Context["L4_Q1"] != "scaling" || len(res.Context) != 3 {
		t.Errorf("unexpected context capture: %v", res.Context)
	}
}

// TestScoreNeurodiversityActivation tests the two-of-three screener rule
func TestScoreNeurodiversityActivation(t *testing.T) {
	answers := architectAnswers()
	res := Score(answers)
	if res.Neurodiversity.AttentionRegulation.Score != 25 {
		t.Errorf("two ADHD affirms should activate the trait: attention %d, want 25",
			res.Neurodiversity.AttentionRegulation.Score)
	}

	// Dropping to a single affirm deactivates it.
	answers["L5_Q2"] = "no"
	res = Score(answers)
	if res.Neurodiversity.AttentionRegulation.Score != 85 {
		t.Errorf("one ADHD affirm should not activate the trait: attention %d, want 85",
			res.Neurodiversity.AttentionRegulation.Score)
	}
}

// TestScoreDriveAndBeliefs tests the Layer 6 and 7 projections
func TestScoreDriveAndBeliefs(t *testing.T) {
	res := Score(architectAnswers())

	if res.Drive.MindsetOrientation.Score != 85 {
		t.Errorf("mindset score %d, want 85", res.Drive.MindsetOrientation.Score)
	}
	if res.Drive.RiskStyle.Score != 15 {
		t.Errorf("risk score %d, want 15", res.Drive.RiskStyle.Score)
	}
	if res.Drive.EnergyModality.Score != 50 {
		t.Errorf("energy score %d, want 50", res.Drive.EnergyModality.Score)
	}

	if res.MetaBeliefs.Primary != belief.ProofFirst {
		t.Errorf("primary belief %s, want proof_first", res.MetaBeliefs.Primary)
	}
	if len(res.MetaBeliefs.Beliefs) != 3 {
		t.Errorf("expected 3 beliefs, got %d", len(res.MetaBeliefs.Beliefs))
	}
}

// TestScoreBlurredBoundary tests the 6-4 split landing below the threshold
func TestScoreBlurredBoundary(t *testing.T) {
	answers := architectAnswers()
	answers["L1_Q7"] = "untold_story"
	res := Score(answers)

	if res.CoreIdentity.Type != identity.CoreBlurred {
		t.Errorf("6-4 split should classify blurred, got %s", res.CoreIdentity.Type)
	}
	if res.CoreIdentity.ArchitectCount != 60 || res.CoreIdentity.AlchemistCount != 40 {
		t.Errorf("expected 60/40, got %d/%d", res.CoreIdentity.ArchitectCount, res.CoreIdentity.AlchemistCount)
	}
}

// TestScoreDeterministic tests that repeated scoring of the same answers
// produces byte-identical JSON
func TestScoreDeterministic(t *testing.T) {
	answers := architectAnswers()

	first, err := json.Marshal(Score(answers))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := json.Marshal(Score(answers))
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("scoring is not deterministic: run %d differs", i)
		}
	}
}

// TestScoreEmptyAnswers tests that the scorer is total over missing input
func TestScoreEmptyAnswers(t *testing.T) {
	res := Score(AnswerMap{})

	if res.CoreIdentity.Type != identity.CoreBlurred {
		t.Errorf("no answers should classify blurred, got %s", res.CoreIdentity.Type)
	}
	if res.Subtype.Subtype != subtype.AdaptiveIntegrator {
		t.Errorf("no answers should resolve the first blurred subtype, got %s", res.Subtype.Subtype)
	}
	if res.MirrorAwareness.OverallScore != 0 || res.MirrorAwareness.Band != mirror.BandVeryLow {
		t.Errorf("no answers should score zero mirror: %d/%s",
			res.MirrorAwareness.OverallScore, res.MirrorAwareness.Band)
	}
	if len(res.Context) != 0 {
		t.Errorf("expected empty context, got %v", res.Context)
	}
	if res.Drive.MindsetOrientation.Score != 50 {
		t.Errorf("missing drive answers should score the middle band, got %d",
			res.Drive.MindsetOrientation.Score)
	}
	if res.MetaBeliefs.Primary != "" {
		t.Errorf("expected no primary belief, got %s", res.MetaBeliefs.Primary)
	}
}

// TestScoreIgnoresUnknownOptionValues tests tolerance of stale answer values
func TestScoreIgnoresUnknownOptionValues(t *testing.T) {
	answers := architectAnswers()
	answers["L1_Q1"] = "not_an_option"
	res := Score(answers)
	// The stale answer contributes nothing: 6 architect, 3 alchemist.
	if res.CoreIdentity.ArchitectCount != 60 || res.CoreIdentity.AlchemistCount != 30 {
		t.Errorf("expected 60/30, got %d/%d", res.CoreIdentity.ArchitectCount, res.CoreIdentity.AlchemistCount)
	}
}
