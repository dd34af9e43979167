package session

import (
	"errors"
	"testing"

	"edna/domain/bank"
	"edna/domain/core"
	"edna/domain/identity"
)

func mustBegin(t *testing.T, s Session) Session {
	t.Helper()
	next, err := s.Begin()
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	return next
}

func mustEnterLayer(t *testing.T, s Session) Session {
	t.Helper()
	next, err := s.EnterLayer()
	if err != nil {
		t.Fatalf("EnterLayer failed: %v", err)
	}
	return next
}

// answerLayer answers every question in the current layer with the option
// at the given index.
func answerLayer(t *testing.T, s Session, optionIndex int) Session {
	t.Helper()
	for _, q := range s.Questions() {
		idx := optionIndex
		if idx >= len(q.Options) {
			idx = len(q.Options) - 1
		}
		next, err := s.Answer(q.ID, q.Options[idx].Value)
		if err != nil {
			t.Fatalf("Answer(%s) failed: %v", q.ID, err)
		}
		s = next
	}
	return s
}

func mustCompleteLayer(t *testing.T, s Session) Session {
	t.Helper()
	next, err := s.CompleteLayer()
	if err != nil {
		t.Fatalf("CompleteLayer failed: %v", err)
	}
	return next
}

// TestNewSession tests the initial machine state
func TestNewSession(t *testing.T) {
	s := New("user-1")
	if s.State.Phase != PhaseOnboarding {
		t.Errorf("new session should start in onboarding, got %s", s.State.Phase)
	}
	if s.ID == "" {
		t.Error("expected a generated attempt ID")
	}
	if len(s.Answers) != 0 {
		t.Error("expected empty answers")
	}
	if s.Complete() {
		t.Error("new session should not be complete")
	}
}

// TestPhaseGuards tests that operations outside their phase fail with the
// transition error
func TestPhaseGuards(t *testing.T) {
	s := New("user-1")

	if _, err := s.EnterLayer(); !errors.Is(err, core.ErrInvalidTransition) {
		t.Errorf("EnterLayer from onboarding: got %v", err)
	}
	if _, err := s.Answer("L1_Q1", "map_it"); !errors.Is(err, core.ErrInvalidTransition) {
		t.Errorf("Answer from onboarding: got %v", err)
	}
	if _, err := s.CompleteLayer(); !errors.Is(err, core.ErrInvalidTransition) {
		t.Errorf("CompleteLayer from onboarding: got %v", err)
	}
	if _, err := s.Back(); !errors.Is(err, core.ErrInvalidTransition) {
		t.Errorf("Back from onboarding: got %v", err)
	}

	intro := mustBegin(t, s)
	if _, err := intro.Begin(); !errors.Is(err, core.ErrInvalidTransition) {
		t.Errorf("Begin twice: got %v", err)
	}
	if _, err := intro.Back(); !errors.Is(err, core.ErrInvalidTransition) {
		t.Errorf("Back from first layer intro: got %v", err)
	}
}

// TestAnswerValidation tests unknown question and option rejection
func TestAnswerValidation(t *testing.T) {
	s := mustEnterLayer(t, mustBegin(t, New("user-1")))

	if _, err := s.Answer("L3_Q1", "often"); !errors.Is(err, core.ErrUnknownQuestion) {
		t.Errorf("answering a question from another layer: got %v", err)
	}
	if _, err := s.Answer("L1_Q1", "bogus"); !errors.Is(err, core.ErrUnknownOption) {
		t.Errorf("answering with an unknown option: got %v", err)
	}
}

// TestAnswerAdvancesIndex tests the machine index behavior
func TestAnswerAdvancesIndex(t *testing.T) {
	s := mustEnterLayer(t, mustBegin(t, New("user-1")))

	next, err := s.Answer("L1_Q1", "map_it")
	if err != nil {
		t.Fatalf("Answer failed: %v", err)
	}
	if next.State.QuestionIndex != 1 {
		t.Errorf("answering the current question should advance: index %d", next.State.QuestionIndex)
	}

	// Re-answering an earlier question does not move the index.
	redo, err := next.Answer("L1_Q1", "move_it")
	if err != nil {
		t.Fatalf("re-answer failed: %v", err)
	}
	if redo.State.QuestionIndex != 1 {
		t.Errorf("re-answering behind the cursor moved the index to %d", redo.State.QuestionIndex)
	}
	if redo.Answers["L1_Q1"] != "move_it" {
		t.Errorf("last write should win, got %q", redo.Answers["L1_Q1"])
	}
	// The original session value is untouched.
	if next.Answers["L1_Q1"] != "map_it" {
		t.Errorf("answer map mutated across copies: %q", next.Answers["L1_Q1"])
	}
}

// TestBackNavigation tests stepping backward within and across layers
func TestBackNavigation(t *testing.T) {
	s := mustEnterLayer(t, mustBegin(t, New("user-1")))
	s, _ = s.Answer("L1_Q1", "map_it")

	back, err := s.Back()
	if err != nil {
		t.Fatalf("Back failed: %v", err)
	}
	if back.State.QuestionIndex != 0 {
		t.Errorf("Back should step to index 0, got %d", back.State.QuestionIndex)
	}
	if back.Answers["L1_Q1"] != "map_it" {
		t.Error("Back should keep recorded answers")
	}

	toIntro, err := back.Back()
	if err != nil {
		t.Fatalf("Back to intro failed: %v", err)
	}
	if toIntro.State.Phase != PhaseLayerIntro || toIntro.State.Layer != 1 {
		t.Errorf("expected layer 1 intro, got %+v", toIntro.State)
	}
}

// TestBackAcrossLayerBoundary tests returning to a finished layer's last question
func TestBackAcrossLayerBoundary(t *testing.T) {
	s := mustEnterLayer(t, mustBegin(t, New("user-1")))
	s = answerLayer(t, s, 0)
	s = mustCompleteLayer(t, s)

	if s.State.Phase != PhaseLayerIntro || s.State.Layer != 2 {
		t.Fatalf("expected layer 2 intro, got %+v", s.State)
	}

	back, err := s.Back()
	if err != nil {
		t.Fatalf("Back failed: %v", err)
	}
	layer1 := bank.Layer1()
	if back.State.Phase != PhaseInLayer || back.State.Layer != 1 {
		t.Errorf("expected to re-enter layer 1, got %+v", back.State)
	}
	if back.State.QuestionIndex != len(layer1)-1 {
		t.Errorf("expected last question index %d, got %d", len(layer1)-1, back.State.QuestionIndex)
	}
}

// TestCompleteLayerRequiresAllAnswers tests the completeness guard
func TestCompleteLayerRequiresAllAnswers(t *testing.T) {
	s := mustEnterLayer(t, mustBegin(t, New("user-1")))
	s, _ = s.Answer("L1_Q1", "map_it")

	if _, err := s.CompleteLayer(); !errors.Is(err, core.ErrLayerIncomplete) {
		t.Errorf("expected incomplete-layer error, got %v", err)
	}
}

// TestLayer1ResolvesCoreType tests that closing Layer 1 caches the routing type
func TestLayer1ResolvesCoreType(t *testing.T) {
	s := mustEnterLayer(t, mustBegin(t, New("user-1")))
	// All first options are architect-tagged.
	s = answerLayer(t, s, 0)
	s = mustCompleteLayer(t, s)

	if s.CoreType != identity.CoreArchitect {
		t.Errorf("expected architect routing, got %s", s.CoreType)
	}
	// Layer 2 now serves the architect branch.
	s = mustEnterLayer(t, s)
	qs := s.Questions()
	if len(qs) == 0 || qs[0].ID != "L2_AR_Q1" {
		t.Errorf("expected architect branch questions, got %v", qs)
	}
}

// TestFullWalkthrough tests a complete attempt from onboarding to result
func TestFullWalkthrough(t *testing.T) {
	s := New("user-1")

	if _, err := s.Result(); !errors.Is(err, core.ErrAttemptNotDone) {
		t.Errorf("Result before completion: got %v", err)
	}

	s = mustBegin(t, s)
	for {
		s = mustEnterLayer(t, s)
		s = answerLayer(t, s, 0)
		s = mustCompleteLayer(t, s)
		if s.Complete() {
			break
		}
		if s.State.Phase != PhaseLayerIntro {
			t.Fatalf("expected a layer intro between layers, got %+v", s.State)
		}
	}

	if s.State.Phase != PhaseComplete {
		t.Fatalf("expected complete phase, got %s", s.State.Phase)
	}

	res, err := s.Result()
	if err != nil {
		t.Fatalf("Result failed: %v", err)
	}
	if res.CoreIdentity.Type != identity.CoreArchitect {
		t.Errorf("all-first-option run should classify architect, got %s", res.CoreIdentity.Type)
	}
	// Questions and CurrentQuestion are inert after completion.
	if qs := s.Questions(); qs != nil {
		t.Errorf("expected no questions after completion, got %d", len(qs))
	}
	if _, ok := s.CurrentQuestion(); ok {
		t.Error("expected no current question after completion")
	}
}
