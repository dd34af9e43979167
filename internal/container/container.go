package container

import (
	"context"
	"fmt"

	"edna/adapters/localstore"
	"edna/adapters/postgres"
	"edna/adapters/remote"
	"edna/adapters/report"
	"edna/app"
	"edna/internal/config"
	"edna/ports"

	"github.com/jmoiron/sqlx"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config

	// Infrastructure
	DB    *sqlx.DB
	Local *localstore.Store

	// Repositories (data access layer)
	Attempts ports.AttemptRepository
	Results  ports.ResultRepository
	Flags    ports.KeyValueStore
	Sink     ports.ResultSink

	// Services
	Quiz      *app.QuizService
	Analytics *app.AnalyticsService
	Rescore   *app.RescoreService

	// Report renderers
	HTML  *report.HTMLRenderer
	Excel *report.ExcelExporter
}

// New creates a new dependency injection container
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	return &Container{Config: cfg}, nil
}

// InitWithDatabase wires the Postgres-backed repositories
func (c *Container) InitWithDatabase(db *sqlx.DB) error {
	if db == nil {
		return fmt.Errorf("database connection cannot be nil")
	}
	if err := db.Ping(); err != nil {
		return fmt.Errorf("database connection test failed: %w", err)
	}

	c.DB = db
	c.Attempts = postgres.NewAttemptRepository(db)
	c.Results = postgres.NewResultRepository(db)
	c.Flags = postgres.NewFlagStore(db)

	return c.initServices()
}

// InitWithLocalStore wires the sqlite-backed repositories for offline use
func (c *Container) InitWithLocalStore(store *localstore.Store) error {
	if store == nil {
		return fmt.Errorf("local store cannot be nil")
	}

	c.Local = store
	c.Attempts = store.Attempts()
	c.Results = store.Results()
	c.Flags = store.Flags()

	return c.initServices()
}

func (c *Container) initServices() error {
	if c.Config.Remote.URL != "" {
		c.Sink = remote.NewClient(c.Config.Remote.URL, c.Config.Remote.Token, c.Config.Remote.Timeout)
	} else {
		c.Sink = remote.NopSink{}
	}

	c.Quiz = app.NewQuizService(c.Attempts, c.Results, c.Flags, c.Sink)
	c.Analytics = app.NewAnalyticsService(c.Results)
	c.Rescore = app.NewRescoreService(c.Attempts, c.Results, c.Config.Rescore.Concurrency)

	var err error
	c.HTML, err = report.NewHTMLRenderer()
	if err != nil {
		return fmt.Errorf("failed to initialize report renderer: %w", err)
	}
	c.Excel = report.NewExcelExporter()

	return nil
}

// Shutdown gracefully shuts down all components
func (c *Container) Shutdown(ctx context.Context) error {
	if c.DB != nil {
		return c.DB.Close()
	}
	if c.Local != nil {
		return c.Local.Close()
	}
	return nil
}
