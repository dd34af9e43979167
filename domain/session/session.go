// Package session models one quiz attempt as an explicit, serializable
// value walked through a small state machine: onboarding → layer_intro(n) →
// in_layer(n, index) → complete. Transitions return a new Session; the
// answer map is copied on write so callers can treat sessions as values.
package session

import (
	"fmt"

	"edna/domain/bank"
	"edna/domain/core"
	"edna/domain/identity"
	"edna/domain/profile"
)

// Phase names the session state machine states
type Phase string

const (
	PhaseOnboarding Phase = "onboarding"
	PhaseLayerIntro Phase = "layer_intro"
	PhaseInLayer    Phase = "in_layer"
	PhaseComplete   Phase = "complete"
)

// State is the machine position: phase plus layer/question coordinates
// where the phase carries them.
type State struct {
	Phase         Phase `json:"phase"`
	Layer         int   `json:"layer,omitempty"`
	QuestionIndex int   `json:"question_index,omitempty"`
}

// Session is one quiz attempt. CoreType is the routing cache resolved at
// the Layer 1 boundary; the scorer re-derives its own from the answers, so
// a stale cache can only affect which Layer 2 branch is presented.
type Session struct {
	ID        core.AttemptID    `json:"id"`
	UserID    core.UserID       `json:"user_id"`
	State     State             `json:"state"`
	Answers   profile.AnswerMap `json:"answers"`
	CoreType  identity.CoreType `json:"core_type,omitempty"`
	StartedAt core.Timestamp    `json:"started_at"`
	UpdatedAt core.Timestamp    `json:"updated_at"`
}

// New starts a fresh attempt in the onboarding phase
func New(userID core.UserID) Session {
	now := core.Now()
	return Session{
		ID:        core.NewAttemptID(),
		UserID:    userID,
		State:     State{Phase: PhaseOnboarding},
		Answers:   profile.AnswerMap{},
		StartedAt: now,
		UpdatedAt: now,
	}
}

// Questions returns the question set for the session's current layer,
// with Layer 2 branched on the cached core type.
func (s Session) Questions() []bank.Question {
	if s.State.Phase != PhaseInLayer && s.State.Phase != PhaseLayerIntro {
		return nil
	}
	return bank.ForLayer(s.State.Layer, s.CoreType)
}

// CurrentQuestion returns the question at the machine's index, if any
func (s Session) CurrentQuestion() (bank.Question, bool) {
	if s.State.Phase != PhaseInLayer {
		return bank.Question{}, false
	}
	qs := s.Questions()
	if s.State.QuestionIndex < 0 || s.State.QuestionIndex >= len(qs) {
		return bank.Question{}, false
	}
	return qs[s.State.QuestionIndex], true
}

// Begin leaves onboarding for the first layer's intro
func (s Session) Begin() (Session, error) {
	if s.State.Phase != PhaseOnboarding {
		return s, fmt.Errorf("%w: begin from %s", core.ErrInvalidTransition, s.State.Phase)
	}
	return s.with(State{Phase: PhaseLayerIntro, Layer: bank.LayerOrder()[0]}), nil
}

// EnterLayer moves from a layer intro into its first question
func (s Session) EnterLayer() (Session, error) {
	if s.State.Phase != PhaseLayerIntro {
		return s, fmt.Errorf("%w: enter layer from %s", core.ErrInvalidTransition, s.State.Phase)
	}
	return s.with(State{Phase: PhaseInLayer, Layer: s.State.Layer}), nil
}

// Answer records a selection for a question in the current layer.
// Re-answering overwrites: last write wins. The machine index advances
// when the answered question is the current one.
func (s Session) Answer(id bank.QuestionID, value string) (Session, error) {
	if s.State.Phase != PhaseInLayer {
		return s, fmt.Errorf("%w: answer from %s", core.ErrInvalidTransition, s.State.Phase)
	}

	qs := s.Questions()
	idx := -1
	for i, q := range qs {
		if q.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s, fmt.Errorf("%w: %s in layer %d", core.ErrUnknownQuestion, id, s.State.Layer)
	}
	if _, ok := qs[idx].Option(value); !ok {
		return s, fmt.Errorf("%w: %q for question %s", core.ErrUnknownOption, value, id)
	}

	answers := make(profile.AnswerMap, len(s.Answers)+1)
	for k, v := range s.Answers {
		answers[k] = v
	}
	answers[id] = value

	next := s
	next.Answers = answers
	if idx == s.State.QuestionIndex && s.State.QuestionIndex < len(qs)-1 {
		next.State.QuestionIndex++
	}
	next.UpdatedAt = core.Now()
	return next, nil
}

// Back steps the machine one position backward: within a layer toward its
// first question, then to the layer intro. Previously recorded answers stay
// recorded; re-answering overwrites them.
func (s Session) Back() (Session, error) {
	switch s.State.Phase {
	case PhaseInLayer:
		if s.State.QuestionIndex > 0 {
			next := s
			next.State.QuestionIndex--
			next.UpdatedAt = core.Now()
			return next, nil
		}
		return s.with(State{Phase: PhaseLayerIntro, Layer: s.State.Layer}), nil
	case PhaseLayerIntro:
		prev, ok := previousLayer(s.State.Layer)
		if !ok {
			return s, fmt.Errorf("%w: back from first layer intro", core.ErrInvalidTransition)
		}
		qs := bank.ForLayer(prev, s.CoreType)
		return s.with(State{Phase: PhaseInLayer, Layer: prev, QuestionIndex: len(qs) - 1}), nil
	default:
		return s, fmt.Errorf("%w: back from %s", core.ErrInvalidTransition, s.State.Phase)
	}
}

// CompleteLayer leaves the current layer once all its questions are
// answered. Leaving Layer 1 resolves the core type that routes the Layer 2
// branch. After the last layer the session is complete.
func (s Session) CompleteLayer() (Session, error) {
	if s.State.Phase != PhaseInLayer {
		return s, fmt.Errorf("%w: complete layer from %s", core.ErrInvalidTransition, s.State.Phase)
	}
	for _, q := range s.Questions() {
		if _, answered := s.Answers[q.ID]; !answered {
			return s, fmt.Errorf("%w: layer %d question %s", core.ErrLayerIncomplete, s.State.Layer, q.ID)
		}
	}

	next := s
	if s.State.Layer == 1 {
		result := profile.Score(s.Answers)
		next.CoreType = result.CoreIdentity.Type
	}

	nextLayer, ok := followingLayer(s.State.Layer)
	if !ok {
		return next.with(State{Phase: PhaseComplete}), nil
	}
	return next.with(State{Phase: PhaseLayerIntro, Layer: nextLayer}), nil
}

// Complete reports whether the attempt finished all layers
func (s Session) Complete() bool {
	return s.State.Phase == PhaseComplete
}

// Result scores the finished attempt. Errors until the machine reaches the
// complete state.
func (s Session) Result() (profile.Result, error) {
	if !s.Complete() {
		return profile.Result{}, core.ErrAttemptNotDone
	}
	return profile.Score(s.Answers), nil
}

func (s Session) with(state State) Session {
	next := s
	next.State = state
	next.UpdatedAt = core.Now()
	return next
}

func previousLayer(layer int) (int, bool) {
	order := bank.LayerOrder()
	for i, l := range order {
		if l == layer && i > 0 {
			return order[i-1], true
		}
	}
	return 0, false
}

func followingLayer(layer int) (int, bool) {
	order := bank.LayerOrder()
	for i, l := range order {
		if l == layer && i < len(order)-1 {
			return order[i+1], true
		}
	}
	return 0, false
}
