package app

import (
	"context"
	"time"

	"edna/domain/bank"
	"edna/domain/core"
	"edna/domain/profile"
	"edna/domain/session"
	"edna/internal"
	"edna/models"
	"edna/ports"
)

// QuizService orchestrates the quiz flow: session lifecycle, persistence,
// scoring at completion, and the fire-and-forget remote save. Scoring never
// waits on the sink; the stored local result is authoritative.
type QuizService struct {
	attempts ports.AttemptRepository
	results  ports.ResultRepository
	flags    ports.KeyValueStore
	sink     ports.ResultSink
	log      *internal.Logger
}

// NewQuizService creates a quiz service
func NewQuizService(attempts ports.AttemptRepository, results ports.ResultRepository, flags ports.KeyValueStore, sink ports.ResultSink) *QuizService {
	return &QuizService{
		attempts: attempts,
		results:  results,
		flags:    flags,
		sink:     sink,
		log:      internal.DefaultLogger,
	}
}

const onboardingFlagPrefix = "onboarding_seen:"

// OnboardingSeen reports whether the user has been through onboarding
func (s *QuizService) OnboardingSeen(ctx context.Context, userID core.UserID) (bool, error) {
	value, found, err := s.flags.Get(ctx, onboardingFlagPrefix+userID.String())
	if err != nil {
		return false, err
	}
	return found && value == "true", nil
}

// MarkOnboardingSeen records that the user completed onboarding
func (s *QuizService) MarkOnboardingSeen(ctx context.Context, userID core.UserID) error {
	return s.flags.Set(ctx, onboardingFlagPrefix+userID.String(), "true")
}

// Start creates and persists a fresh attempt
func (s *QuizService) Start(ctx context.Context, userID core.UserID) (session.Session, error) {
	sess := session.New(userID)
	if err := s.attempts.Create(ctx, sess); err != nil {
		return session.Session{}, err
	}
	s.log.Info("attempt %s started for user %s", sess.ID, userID)
	return sess, nil
}

// Get loads an attempt
func (s *QuizService) Get(ctx context.Context, id core.AttemptID) (session.Session, error) {
	return s.attempts.Get(ctx, id)
}

// transition applies a session transition and persists the new value
func (s *QuizService) transition(ctx context.Context, id core.AttemptID, fn func(session.Session) (session.Session, error)) (session.Session, error) {
	sess, err := s.attempts.Get(ctx, id)
	if err != nil {
		return session.Session{}, err
	}
	next, err := fn(sess)
	if err != nil {
		return session.Session{}, err
	}
	if err := s.attempts.Update(ctx, next); err != nil {
		return session.Session{}, err
	}
	return next, nil
}

// Begin moves an attempt out of onboarding
func (s *QuizService) Begin(ctx context.Context, id core.AttemptID) (session.Session, error) {
	return s.transition(ctx, id, session.Session.Begin)
}

// EnterLayer moves an attempt from a layer intro into its questions
func (s *QuizService) EnterLayer(ctx context.Context, id core.AttemptID) (session.Session, error) {
	return s.transition(ctx, id, session.Session.EnterLayer)
}

// Answer records an answer on an attempt
func (s *QuizService) Answer(ctx context.Context, id core.AttemptID, questionID bank.QuestionID, value string) (session.Session, error) {
	return s.transition(ctx, id, func(sess session.Session) (session.Session, error) {
		return sess.Answer(questionID, value)
	})
}

// Back steps an attempt backward
func (s *QuizService) Back(ctx context.Context, id core.AttemptID) (session.Session, error) {
	return s.transition(ctx, id, session.Session.Back)
}

// CompleteLayer closes the current layer. When the last layer closes the
// attempt is scored, the result stored, and the remote save dispatched
// without being awaited. The result is stored before the complete-phase
// session so a failed save leaves the attempt in its last layer and the
// call retriable.
func (s *QuizService) CompleteLayer(ctx context.Context, id core.AttemptID) (session.Session, error) {
	sess, err := s.attempts.Get(ctx, id)
	if err != nil {
		return session.Session{}, err
	}
	next, err := sess.CompleteLayer()
	if err != nil {
		return session.Session{}, err
	}
	if next.Complete() {
		if err := s.finalize(ctx, next); err != nil {
			return session.Session{}, err
		}
	}
	if err := s.attempts.Update(ctx, next); err != nil {
		return session.Session{}, err
	}
	return next, nil
}

// finalize scores the finished session and stores the result. Idempotent:
// a retry that finds the result already stored leaves it untouched, so a
// session update failing after a successful save cannot wedge the attempt
// on its unique attempt constraint.
func (s *QuizService) finalize(ctx context.Context, sess session.Session) error {
	if _, err := s.results.GetByAttempt(ctx, sess.ID); err == nil {
		return nil
	} else if !core.IsNotFoundError(err) {
		return err
	}

	result, err := sess.Result()
	if err != nil {
		return err
	}
	stored, err := models.NewStoredResult(sess.ID, sess.UserID, result)
	if err != nil {
		return err
	}
	if err := s.results.Save(ctx, stored); err != nil {
		return err
	}
	s.log.Info("attempt %s scored: %s / %s, mirror %d",
		sess.ID, stored.CoreType, stored.Subtype, stored.MirrorScore)

	// Best effort, detached from the request. The outcome only gets logged.
	go func(userID core.UserID, res profile.Result) {
		saveCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		outcome := s.sink.Save(saveCtx, userID, res)
		if !outcome.Success {
			s.log.Debug("remote save for user %s skipped: %s", userID, outcome.Error)
		}
	}(sess.UserID, result)
	return nil
}

// Result returns the stored result for a finished attempt
func (s *QuizService) Result(ctx context.Context, id core.AttemptID) (profile.Result, error) {
	stored, err := s.results.GetByAttempt(ctx, id)
	if err != nil {
		return profile.Result{}, err
	}
	return stored.Result()
}

// RemoteResult loads the user's last remotely saved result, if any. The
// outcome is informational; a failed load is indistinguishable from an
// empty one by design.
func (s *QuizService) RemoteResult(ctx context.Context, userID core.UserID) (*profile.Result, ports.SinkOutcome) {
	return s.sink.Load(ctx, userID)
}
