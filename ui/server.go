// Package ui is the HTTP surface for the assessment: the quiz-flow JSON
// API plus the report and export endpoints.
package ui

import (
	"edna/adapters/report"
	"edna/app"
	"edna/internal"

	"github.com/gin-gonic/gin"
)

// Server wraps the gin engine and the services the handlers call
type Server struct {
	router    *gin.Engine
	quiz      *app.QuizService
	analytics *app.AnalyticsService
	html      *report.HTMLRenderer
	excel     *report.ExcelExporter
	log       *internal.Logger
}

// NewServer creates the web server with its dependencies wired
func NewServer(quiz *app.QuizService, analytics *app.AnalyticsService, html *report.HTMLRenderer, excel *report.ExcelExporter) *Server {
	s := &Server{
		router:    gin.Default(),
		quiz:      quiz,
		analytics: analytics,
		html:      html,
		excel:     excel,
		log:       internal.DefaultLogger,
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")

	attempts := api.Group("/attempts")
	attempts.POST("", s.handleStartAttempt)
	attempts.GET("/:id", s.handleGetAttempt)
	attempts.GET("/:id/question", s.handleCurrentQuestion)
	attempts.POST("/:id/begin", s.handleBegin)
	attempts.POST("/:id/layer", s.handleEnterLayer)
	attempts.POST("/:id/answers", s.handleAnswer)
	attempts.POST("/:id/back", s.handleBack)
	attempts.POST("/:id/layer/complete", s.handleCompleteLayer)
	attempts.GET("/:id/result", s.handleResult)
	attempts.GET("/:id/report", s.handleReport)
	attempts.GET("/:id/export", s.handleExport)

	users := api.Group("/users")
	users.GET("/:id/onboarding", s.handleOnboardingSeen)
	users.POST("/:id/onboarding", s.handleMarkOnboardingSeen)
	users.GET("/:id/result", s.handleRemoteResult)

	analytics := api.Group("/analytics")
	analytics.GET("/summary", s.handleCohortSummary)
	analytics.GET("/percentile", s.handlePercentileRank)
}

// Start starts the web server
func (s *Server) Start(addr string) error {
	s.log.Info("starting assessment server on http://%s", addr)
	return s.router.Run(addr)
}
