package ui

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleReport(c *gin.Context) {
	id, ok := attemptIDParam(c)
	if !ok {
		return
	}
	res, err := s.quiz.Result(c.Request.Context(), id)
	if err != nil {
		s.handleError(c, err)
		return
	}

	page, err := s.html.Render(res, c.Query("email"))
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

func (s *Server) handleExport(c *gin.Context) {
	id, ok := attemptIDParam(c)
	if !ok {
		return
	}
	res, err := s.quiz.Result(c.Request.Context(), id)
	if err != nil {
		s.handleError(c, err)
		return
	}

	book, err := s.excel.Export(res)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="edna-%s.xlsx"`, id.String()))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", book)
}

func (s *Server) handleCohortSummary(c *gin.Context) {
	summary, err := s.analytics.Summary(c.Request.Context())
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (s *Server) handlePercentileRank(c *gin.Context) {
	score, err := strconv.Atoi(c.Query("score"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "score must be an integer"})
		return
	}
	rank, err := s.analytics.PercentileRank(c.Request.Context(), score)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"score": score, "percentile": rank})
}
