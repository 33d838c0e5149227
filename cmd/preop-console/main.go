package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/preop/preop/internal/config"
	"github.com/preop/preop/internal/console"
	"github.com/preop/preop/internal/domain/chat"
	"github.com/preop/preop/internal/domain/interview"
	"github.com/preop/preop/internal/domain/patient"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "preop-console",
		Short: "Anesthesia pre-assessment console",
	}

	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(scheduleCmd())
	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(chatCmd())
	rootCmd.AddCommand(interviewCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger follows the deployment convention: JSON to stdout, console
// writer in development.
func newLogger() zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return logger
}

// bootstrap loads config and seeds the in-memory patient store.
func bootstrap(logger zerolog.Logger) (*config.Config, *patient.Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	repo, err := patient.NewSeededRepo()
	if err != nil {
		return nil, nil, fmt.Errorf("seed patient store: %w", err)
	}
	logger.Info().Int("patients", repo.Len()).Msg("patient store seeded")

	return cfg, patient.NewService(repo), nil
}

func searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: "Search patients by name or CPR number",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			_, svc, err := bootstrap(logger)
			if err != nil {
				return err
			}

			query := ""
			if len(args) > 0 {
				query = args[0]
			}
			results := svc.SearchPatients(cmd.Context(), query)
			fmt.Print(console.RenderPatientTable(results))
			return nil
		},
	}
}

func scheduleCmd() *cobra.Command {
	var dateFlag string
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Show the operation schedule for a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			cfg, svc, err := bootstrap(logger)
			if err != nil {
				return err
			}

			date, err := cfg.ScheduleDate()
			if err != nil {
				return err
			}
			if dateFlag != "" {
				date, err = time.ParseInLocation("2006-01-02", dateFlag, time.UTC)
				if err != nil {
					return fmt.Errorf("parse --date: %w", err)
				}
			}

			records := svc.GetScheduledPatients(cmd.Context(), date)
			fmt.Print(console.RenderSchedule(date, records))
			return nil
		},
	}
	cmd.Flags().StringVar(&dateFlag, "date", "", "calendar day, YYYY-MM-DD")
	return cmd
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <patient-id>",
		Short: "Show the full record and assessment for a patient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			_, svc, err := bootstrap(logger)
			if err != nil {
				return err
			}

			rec, err := svc.GetPatient(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Print(console.RenderDetails(rec))
			return nil
		},
	}
}

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Interactive anesthesia FAQ chat",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			cfg, _, err := bootstrap(logger)
			if err != nil {
				return err
			}
			return runChat(cmd.Context(), cfg, os.Stdin)
		},
	}
}

func runChat(ctx context.Context, cfg *config.Config, in *os.File) error {
	session := chat.NewSession(chat.WithReplyDelay(cfg.ChatReplyDelay()))

	for _, msg := range session.Messages() {
		fmt.Printf("Bot: %s\n\n", msg.Text)
	}
	fmt.Println("Forslag:")
	for _, q := range chat.SuggestedQuestions {
		fmt.Printf("  - %s\n", q)
	}
	fmt.Println("\nSkriv /quit for at afslutte.")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Print("\nDig: ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "/quit" {
			fmt.Println("Farvel")
			break
		}

		reply, err := session.SendMessage(ctx, line)
		if err != nil {
			return err
		}
		if reply.Text != "" {
			fmt.Printf("\nBot: %s\n", reply.Text)
		}
	}
	return scanner.Err()
}

func interviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interview",
		Short: "Run the structured pre-assessment interview",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			if _, _, err := bootstrap(logger); err != nil {
				return err
			}
			return runInterview(logger, os.Stdin)
		},
	}
}

func runInterview(logger zerolog.Logger, in *os.File) error {
	flow := interview.NewFlow(nil)
	fmt.Printf("--- Interview start ---\nSession: %s\n", flow.SessionID())
	fmt.Println("Skriv /skip for at springe over, /quit for at stoppe.")

	scanner := bufio.NewScanner(in)
	for {
		q, ok := flow.Current()
		if !ok {
			break
		}
		fmt.Printf("\nSpørgsmål (%s): %s\n", q.ID, q.Text)
		fmt.Print("Svar: ")
		if !scanner.Scan() {
			flow.Abort()
			break
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "/quit":
			flow.Abort()
		case "/skip":
			if err := flow.Skip(); err != nil {
				fmt.Println("Dette spørgsmål skal besvares.")
			}
		default:
			if err := flow.Answer(line); err != nil {
				fmt.Println("Dette spørgsmål skal besvares.")
			}
		}
	}

	summary, ok := flow.Summary()
	if !ok {
		fmt.Println("\nAfsluttet uden opsummering.")
		return nil
	}

	fmt.Println("\n--- Interview done ---")
	for _, q := range summary.Questions {
		answer, answered := summary.Answers[q.ID]
		if !answered {
			answer = "(sprunget over)"
		}
		fmt.Printf("%s: %s\n", q.ID, answer)
	}
	logger.Info().
		Str("session_id", summary.SessionID).
		Int("answers", len(summary.Answers)).
		Msg("interview completed")
	return nil
}
