// Command migrate applies or rolls back database migrations.
//
// Usage: migrate [-dir migrations] up|down|status
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/flashcards-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flashcards-backend/internal/app"
	"github.com/heartmarshall/flashcards-backend/internal/config"
)

func main() {
	dir := flag.String("dir", "migrations", "directory containing goose SQL migrations")
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		fmt.Fprintln(os.Stderr, "usage: migrate [-dir migrations] up|down|status")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	migrator, err := postgres.NewMigrator(ctx, cfg.Database.DSN, os.DirFS(*dir))
	if err != nil {
		logger.Error("init migrator", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer migrator.Close()

	if err := run(ctx, migrator, command, logger); err != nil {
		logger.Error("migrate failed", slog.String("command", command), slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, m *postgres.Migrator, command string, logger *slog.Logger) error {
	switch command {
	case "up":
		results, err := m.Up(ctx)
		for _, r := range results {
			logger.Info("migration applied",
				slog.Int64("version", r.Source.Version),
				slog.String("file", r.Source.Path),
				slog.Duration("duration", r.Duration),
			)
		}
		if err == nil && len(results) == 0 {
			logger.Info("no pending migrations")
		}
		return err
	case "down":
		r, err := m.Down(ctx)
		if r != nil {
			logger.Info("migration rolled back",
				slog.Int64("version", r.Source.Version),
				slog.String("file", r.Source.Path),
			)
		}
		return err
	case "status":
		statuses, err := m.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			logger.Info("migration status",
				slog.Int64("version", s.Source.Version),
				slog.String("file", s.Source.Path),
				slog.String("state", string(s.State)),
			)
		}
		return nil
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}
