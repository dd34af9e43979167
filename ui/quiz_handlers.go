package ui

import (
	"context"
	"errors"
	"net/http"

	"edna/domain/bank"
	"edna/domain/core"
	"edna/domain/session"

	"github.com/gin-gonic/gin"
)

// optionView is the client-facing shape of an answer option. Scoring tags
// and weights stay server-side.
type optionView struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type questionView struct {
	ID      bank.QuestionID `json:"id"`
	Layer   int             `json:"layer"`
	Prompt  string          `json:"prompt"`
	Options []optionView    `json:"options"`
}

type attemptView struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	State         session.State `json:"state"`
	CoreType      string        `json:"core_type,omitempty"`
	Answered      int           `json:"answered"`
	LayerQuestion int           `json:"layer_question_count,omitempty"`
}

func questionToView(q bank.Question) questionView {
	opts := make([]optionView, len(q.Options))
	for i, o := range q.Options {
		opts[i] = optionView{Value: o.Value, Label: o.Label}
	}
	return questionView{ID: q.ID, Layer: q.Layer, Prompt: q.Prompt, Options: opts}
}

func attemptToView(sess session.Session) attemptView {
	return attemptView{
		ID:            sess.ID.String(),
		UserID:        sess.UserID.String(),
		State:         sess.State,
		CoreType:      string(sess.CoreType),
		Answered:      len(sess.Answers),
		LayerQuestion: len(sess.Questions()),
	}
}

// handleError maps domain errors onto HTTP statuses
func (s *Server) handleError(c *gin.Context, err error) {
	switch {
	case core.IsNotFoundError(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case core.IsSessionError(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case core.IsBankError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, core.ErrCohortTooSmall):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		s.log.Error("request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func attemptIDParam(c *gin.Context) (core.AttemptID, bool) {
	id, err := core.ParseAttemptID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}
	return id, true
}

func userIDParam(c *gin.Context) (core.UserID, bool) {
	id, err := core.ParseUserID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}
	return id, true
}

func (s *Server) handleStartAttempt(c *gin.Context) {
	var req struct {
		UserID string `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID, err := core.ParseUserID(req.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, err := s.quiz.Start(c.Request.Context(), userID)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, attemptToView(sess))
}

func (s *Server) handleGetAttempt(c *gin.Context) {
	id, ok := attemptIDParam(c)
	if !ok {
		return
	}
	sess, err := s.quiz.Get(c.Request.Context(), id)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, attemptToView(sess))
}

func (s *Server) handleCurrentQuestion(c *gin.Context) {
	id, ok := attemptIDParam(c)
	if !ok {
		return
	}
	sess, err := s.quiz.Get(c.Request.Context(), id)
	if err != nil {
		s.handleError(c, err)
		return
	}
	q, found := sess.CurrentQuestion()
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "no current question in this phase"})
		return
	}
	c.JSON(http.StatusOK, questionToView(q))
}

func (s *Server) handleBegin(c *gin.Context) {
	s.transition(c, s.quiz.Begin)
}

func (s *Server) handleEnterLayer(c *gin.Context) {
	s.transition(c, s.quiz.EnterLayer)
}

func (s *Server) handleBack(c *gin.Context) {
	s.transition(c, s.quiz.Back)
}

func (s *Server) handleCompleteLayer(c *gin.Context) {
	s.transition(c, s.quiz.CompleteLayer)
}

// transition runs one state-machine step and renders the updated attempt
func (s *Server) transition(c *gin.Context, fn func(context.Context, core.AttemptID) (session.Session, error)) {
	id, ok := attemptIDParam(c)
	if !ok {
		return
	}
	sess, err := fn(c.Request.Context(), id)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, attemptToView(sess))
}

func (s *Server) handleAnswer(c *gin.Context) {
	id, ok := attemptIDParam(c)
	if !ok {
		return
	}
	var req struct {
		QuestionID string `json:"question_id" binding:"required"`
		Value      string `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, err := s.quiz.Answer(c.Request.Context(), id, bank.QuestionID(req.QuestionID), req.Value)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, attemptToView(sess))
}

func (s *Server) handleResult(c *gin.Context) {
	id, ok := attemptIDParam(c)
	if !ok {
		return
	}
	res, err := s.quiz.Result(c.Request.Context(), id)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) handleOnboardingSeen(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	seen, err := s.quiz.OnboardingSeen(c.Request.Context(), userID)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"seen": seen})
}

func (s *Server) handleMarkOnboardingSeen(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	if err := s.quiz.MarkOnboardingSeen(c.Request.Context(), userID); err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"seen": true})
}

func (s *Server) handleRemoteResult(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	res, outcome := s.quiz.RemoteResult(c.Request.Context(), userID)
	if !outcome.Success {
		c.JSON(http.StatusBadGateway, gin.H{"error": outcome.Error})
		return
	}
	if res == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no remote result for user"})
		return
	}
	c.JSON(http.StatusOK, res)
}
