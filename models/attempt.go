// Package models holds the persistence-facing row shapes. Domain values
// convert to and from these at the repository boundary.
package models

import (
	"encoding/json"
	"time"

	"edna/domain/core"
	"edna/domain/identity"
	"edna/domain/profile"
	"edna/domain/session"
)

// QuizAttempt is the stored form of a session: machine coordinates as
// columns, the answer map as JSON.
type QuizAttempt struct {
	ID            string    `db:"id" json:"id"`
	UserID        string    `db:"user_id" json:"user_id"`
	Phase         string    `db:"phase" json:"phase"`
	Layer         int       `db:"layer" json:"layer"`
	QuestionIndex int       `db:"question_index" json:"question_index"`
	CoreType      string    `db:"core_type" json:"core_type"`
	AnswersJSON   []byte    `db:"answers" json:"-"`
	StartedAt     time.Time `db:"started_at" json:"started_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// AttemptFromSession flattens a session value into its row shape
func AttemptFromSession(s session.Session) (QuizAttempt, error) {
	answers, err := json.Marshal(s.Answers)
	if err != nil {
		return QuizAttempt{}, err
	}
	return QuizAttempt{
		ID:            s.ID.String(),
		UserID:        s.UserID.String(),
		Phase:         string(s.State.Phase),
		Layer:         s.State.Layer,
		QuestionIndex: s.State.QuestionIndex,
		CoreType:      string(s.CoreType),
		AnswersJSON:   answers,
		StartedAt:     s.StartedAt.Time(),
		UpdatedAt:     s.UpdatedAt.Time(),
	}, nil
}

// Session rebuilds the domain value from the row
func (a QuizAttempt) Session() (session.Session, error) {
	answers := profile.AnswerMap{}
	if len(a.AnswersJSON) > 0 {
		if err := json.Unmarshal(a.AnswersJSON, &answers); err != nil {
			return session.Session{}, err
		}
	}
	return session.Session{
		ID:     core.AttemptID(a.ID),
		UserID: core.UserID(a.UserID),
		State: session.State{
			Phase:         session.Phase(a.Phase),
			Layer:         a.Layer,
			QuestionIndex: a.QuestionIndex,
		},
		Answers:   answers,
		CoreType:  identity.CoreType(a.CoreType),
		StartedAt: core.NewTimestamp(a.StartedAt),
		UpdatedAt: core.NewTimestamp(a.UpdatedAt),
	}, nil
}
