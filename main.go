package main

import (
	"context"
	"log"

	"edna/adapters/localstore"
	"edna/domain/bank"
	"edna/internal/config"
	"edna/internal/container"
	"edna/internal/errors"
	"edna/internal/migration"
	"edna/ui"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// initDatabase initializes the PostgreSQL database connection
func initDatabase(appConfig *config.Config) (*sqlx.DB, error) {
	if appConfig.Database.URL == "" {
		return nil, errors.ConfigInvalid("DATABASE_URL is required")
	}

	db, err := sqlx.Connect("postgres", appConfig.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}
	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}

	migrator := migration.NewRunner()
	if err := migrator.Run(context.Background(), db); err != nil {
		return nil, errors.Wrap(err, "database migration failed")
	}
	return db, nil
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	gin.SetMode(appConfig.Server.GinMode)

	// The question bank is static; a bad bank is a programming error and
	// should stop the process before it serves a single attempt.
	if err := bank.Validate(); err != nil {
		log.Fatalf("Question bank validation failed: %v", err)
	}

	appContainer, err := container.New(appConfig)
	if err != nil {
		log.Fatalf("Failed to create application container: %v", err)
	}
	defer appContainer.Shutdown(context.Background())

	if appConfig.Local.Enabled {
		store, err := localstore.Open(appConfig.Local.Path)
		if err != nil {
			log.Fatalf("Failed to open local store: %v", err)
		}
		if err := appContainer.InitWithLocalStore(store); err != nil {
			log.Fatalf("Failed to initialize container: %v", err)
		}
		log.Printf("Using local store at %s", appConfig.Local.Path)
	} else {
		db, err := initDatabase(appConfig)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		if err := appContainer.InitWithDatabase(db); err != nil {
			log.Fatalf("Failed to initialize container: %v", err)
		}
	}

	server := ui.NewServer(appContainer.Quiz, appContainer.Analytics, appContainer.HTML, appContainer.Excel)
	if err := server.Start(":" + appConfig.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
