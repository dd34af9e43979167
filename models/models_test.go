package models

import (
	"testing"

	"edna/domain/identity"
	"edna/domain/profile"
	"edna/domain/session"
)

// TestAttemptRoundTrip tests session → row → session conversion
func TestAttemptRoundTrip(t *testing.T) {
	orig := session.New("user-42")
	orig, err := orig.Begin()
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	orig, err = orig.EnterLayer()
	if err != nil {
		t.Fatalf("EnterLayer failed: %v", err)
	}
	orig, err = orig.Answer("L1_Q1", "map_it")
	if err != nil {
		t.Fatalf("Answer failed: %v", err)
	}

	row, err := AttemptFromSession(orig)
	if err != nil {
		t.Fatalf("AttemptFromSession failed: %v", err)
	}
	back, err := row.Session()
	if err != nil {
		t.Fatalf("Session failed: %v", err)
	}

	if back.ID != orig.ID || back.UserID != orig.UserID {
		t.Errorf("identity fields changed: %s/%s", back.ID, back.UserID)
	}
	if back.State != orig.State {
		t.Errorf("state changed: %+v vs %+v", back.State, orig.State)
	}
	if back.Answers["L1_Q1"] != "map_it" {
		t.Errorf("answers lost: %v", back.Answers)
	}
}

// TestAttemptEmptyAnswers tests decoding a row with no answers payload
func TestAttemptEmptyAnswers(t *testing.T) {
	row := QuizAttempt{ID: "a-1", UserID: "u-1", Phase: string(session.PhaseOnboarding)}
	back, err := row.Session()
	if err != nil {
		t.Fatalf("Session failed: %v", err)
	}
	if back.Answers == nil || len(back.Answers) != 0 {
		t.Errorf("expected empty non-nil answer map, got %v", back.Answers)
	}
}

// TestStoredResultRoundTrip tests result → row → result conversion and the
// denormalized columns
func TestStoredResultRoundTrip(t *testing.T) {
	res := profile.Score(profile.AnswerMap{
		"L1_Q1": "map_it", "L1_Q2": "runs_without_you", "L1_Q3": "broken_process",
		"L1_Q4": "modeled", "L1_Q5": "the_system", "L1_Q6": "blocked",
		"L1_Q7": "sloppy_collapse", "L1_Q8": "forecasted", "L1_Q9": "the_operator",
		"L1_Q10": "last_resort",
	})

	row, err := NewStoredResult("attempt-1", "user-1", res)
	if err != nil {
		t.Fatalf("NewStoredResult failed: %v", err)
	}
	if row.CoreType != string(identity.CoreArchitect) {
		t.Errorf("denormalized core type %q", row.CoreType)
	}
	if row.ID == "" {
		t.Error("expected a generated result ID")
	}
	if row.MirrorScore != res.MirrorAwareness.OverallScore {
		t.Errorf("denormalized mirror score %d", row.MirrorScore)
	}

	back, err := row.Result()
	if err != nil {
		t.Fatalf("Result failed: %v", err)
	}
	if back.CoreIdentity.Type != res.CoreIdentity.Type {
		t.Errorf("core type changed through storage: %s", back.CoreIdentity.Type)
	}
	if back.Subtype.Subtype != res.Subtype.Subtype {
		t.Errorf("subtype changed through storage: %s", back.Subtype.Subtype)
	}
}
