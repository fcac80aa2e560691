// Command cleanup purges generation sessions whose acceptance window has closed.
//
// By default it runs once and exits, for cron. With -every it keeps running
// and purges on that interval until SIGINT or SIGTERM.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/heartmarshall/flashcards-backend/internal/adapter/postgres"
	generationrepo "github.com/heartmarshall/flashcards-backend/internal/adapter/postgres/generation"
	"github.com/heartmarshall/flashcards-backend/internal/app"
	"github.com/heartmarshall/flashcards-backend/internal/config"
	"github.com/heartmarshall/flashcards-backend/internal/service/generation"
)

func main() {
	every := flag.Duration("every", 0, "purge repeatedly at this interval instead of once")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log).With("job", "generation_cleanup")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	// Purging reads only the generation store.
	svc := generation.NewService(logger, nil, generationrepo.New(pool), nil, nil, nil, nil, nil, cfg.Generation.SessionTTL)

	if *every <= 0 {
		if err := purge(ctx, svc, logger); err != nil {
			os.Exit(1)
		}
		return
	}

	ticker := time.NewTicker(*every)
	defer ticker.Stop()
	for {
		_ = purge(ctx, svc, logger)
		select {
		case <-ctx.Done():
			logger.Info("cleanup stopped")
			return
		case <-ticker.C:
		}
	}
}

func purge(ctx context.Context, svc *generation.Service, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	deleted, err := svc.PurgeExpired(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "purge expired generations", slog.String("error", err.Error()))
		return err
	}
	logger.InfoContext(ctx, "purge completed", slog.Int("deleted", deleted))
	return nil
}
