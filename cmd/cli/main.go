package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"edna/adapters/localstore"
	"edna/adapters/postgres"
	"edna/adapters/report"
	"edna/app"
	"edna/domain/bank"
	"edna/domain/profile"
	"edna/internal/config"
	"edna/ports"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "edna",
		Short: "E-DNA assessment tooling: score answer sets, render reports, maintain stored results",
	}

	rootCmd.AddCommand(
		newScoreCmd(),
		newReportCmd(),
		newExportCmd(),
		newValidateCmd(),
		newRescoreCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newScoreCmd() *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "score [answers-file]",
		Short: "Score an answer map and print the result JSON",
		Long: `Score a completed answer set and print the seven-layer result.

The answers file is a JSON object mapping question IDs to option values:

  {"L1_Q1": "a", "L1_Q2": "b", ...}

Example: edna score answers.json --pretty`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			answers, err := loadAnswers(args[0])
			if err != nil {
				return err
			}
			res := profile.Score(answers)

			enc := json.NewEncoder(os.Stdout)
			if pretty {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(res)
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the output JSON")
	return cmd
}

func newReportCmd() *cobra.Command {
	var out string
	var email string

	cmd := &cobra.Command{
		Use:   "report [answers-file]",
		Short: "Render the printable HTML report for an answer set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			answers, err := loadAnswers(args[0])
			if err != nil {
				return err
			}

			renderer, err := report.NewHTMLRenderer()
			if err != nil {
				return err
			}
			page, err := renderer.Render(profile.Score(answers), email)
			if err != nil {
				return err
			}
			return os.WriteFile(out, page, 0o644)
		},
	}

	cmd.Flags().StringVar(&out, "out", "report.html", "Output file path")
	cmd.Flags().StringVar(&email, "email", "", "Email shown in the report footer")
	return cmd
}

func newExportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export [answers-file]",
		Short: "Export an answer set's result as an xlsx workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			answers, err := loadAnswers(args[0])
			if err != nil {
				return err
			}

			book, err := report.NewExcelExporter().Export(profile.Score(answers))
			if err != nil {
				return err
			}
			return os.WriteFile(out, book, 0o644)
		},
	}

	cmd.Flags().StringVar(&out, "out", "result.xlsx", "Output file path")
	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the question bank",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bank.Validate(); err != nil {
				return err
			}
			fmt.Println("question bank ok")
			return nil
		},
	}
}

func newRescoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rescore",
		Short: "Recompute every stored result from its stored answers",
		Long: `Recompute stored results after a bank or content update.

Connects using the same environment variables as the server (DATABASE_URL,
or LOCAL_STORE=true with LOCAL_STORE_PATH). Unchanged answer sets produce
byte-identical payloads and are left untouched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err == nil {
				fmt.Fprintln(os.Stderr, "loaded environment from .env")
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			var attempts ports.AttemptRepository
			var results ports.ResultRepository
			if cfg.Local.Enabled {
				store, err := localstore.Open(cfg.Local.Path)
				if err != nil {
					return err
				}
				defer store.Close()
				attempts, results = store.Attempts(), store.Results()
			} else {
				db, err := sqlx.Connect("postgres", cfg.Database.URL)
				if err != nil {
					return fmt.Errorf("failed to connect to database: %w", err)
				}
				defer db.Close()
				attempts, results = postgres.NewAttemptRepository(db), postgres.NewResultRepository(db)
			}

			svc := app.NewRescoreService(attempts, results, cfg.Rescore.Concurrency)
			rep, err := svc.Run(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("rescored %d results: %d updated, %d unchanged, %d failed\n",
				rep.Total, rep.Updated, rep.Unchanged, rep.Failed)
			return nil
		},
	}
	return cmd
}

func loadAnswers(path string) (profile.AnswerMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read answers file: %w", err)
	}
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse answers file: %w", err)
	}
	answers := make(profile.AnswerMap, len(raw))
	for id, value := range raw {
		answers[bank.QuestionID(id)] = value
	}
	return answers, nil
}
