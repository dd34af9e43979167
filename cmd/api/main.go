// Read-only results API. Serves stored result payloads over plain JSON
// for downstream consumers that never touch the quiz flow.
package main

import (
	"encoding/json"
	"log"
	"net/http"

	"edna/adapters/localstore"
	"edna/adapters/postgres"
	"edna/domain/core"
	"edna/internal/config"
	"edna/ports"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var results ports.ResultRepository
	if cfg.Local.Enabled {
		store, err := localstore.Open(cfg.Local.Path)
		if err != nil {
			log.Fatalf("Failed to open local store: %v", err)
		}
		defer store.Close()
		results = store.Results()
	} else {
		db, err := sqlx.Connect("postgres", cfg.Database.URL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		results = postgres.NewResultRepository(db)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/results/{attemptID}", func(w http.ResponseWriter, req *http.Request) {
		id, err := core.ParseAttemptID(chi.URLParam(req, "attemptID"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		row, err := results.GetByAttempt(req.Context(), id)
		if err != nil {
			status := http.StatusInternalServerError
			if core.IsNotFoundError(err) {
				status = http.StatusNotFound
			}
			writeJSON(w, status, map[string]string{"error": err.Error()})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(row.PayloadJSON)
	})

	r.Get("/users/{userID}/results", func(w http.ResponseWriter, req *http.Request) {
		userID, err := core.ParseUserID(chi.URLParam(req, "userID"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		rows, err := results.ListByUser(req.Context(), userID)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, rows)
	})

	addr := ":" + cfg.Server.Port
	log.Printf("Starting results API on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("Server failed:", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
