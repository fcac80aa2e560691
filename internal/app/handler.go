package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/flashcards-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/flashcards-backend/internal/adapter/postgres/audit"
	categoryrepo "github.com/heartmarshall/flashcards-backend/internal/adapter/postgres/category"
	collectionrepo "github.com/heartmarshall/flashcards-backend/internal/adapter/postgres/collection"
	flashcardrepo "github.com/heartmarshall/flashcards-backend/internal/adapter/postgres/flashcard"
	generationrepo "github.com/heartmarshall/flashcards-backend/internal/adapter/postgres/generation"
	sessionrepo "github.com/heartmarshall/flashcards-backend/internal/adapter/postgres/session"
	statsrepo "github.com/heartmarshall/flashcards-backend/internal/adapter/postgres/stats"
	"github.com/heartmarshall/flashcards-backend/internal/auth"
	"github.com/heartmarshall/flashcards-backend/internal/config"
	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/ratelimit"
	"github.com/heartmarshall/flashcards-backend/internal/service/category"
	"github.com/heartmarshall/flashcards-backend/internal/service/collection"
	"github.com/heartmarshall/flashcards-backend/internal/service/flashcard"
	"github.com/heartmarshall/flashcards-backend/internal/service/generation"
	"github.com/heartmarshall/flashcards-backend/internal/service/stats"
	"github.com/heartmarshall/flashcards-backend/internal/service/study"
	"github.com/heartmarshall/flashcards-backend/internal/service/study/selector"
	"github.com/heartmarshall/flashcards-backend/internal/transport/middleware"
	"github.com/heartmarshall/flashcards-backend/internal/transport/rest"
)

// CandidateGenerator produces flashcard candidates from free text.
type CandidateGenerator interface {
	Generate(ctx context.Context, text string, maxCards int) ([]domain.FlashcardCandidate, error)
}

// NewHandler builds the full HTTP handler: repositories, services, REST
// handlers and the middleware chain. The returned stop function releases
// background limiter goroutines.
func NewHandler(cfg *config.Config, pool *pgxpool.Pool, gen CandidateGenerator, logger *slog.Logger) (http.Handler, func()) {
	// Repositories
	collections := collectionrepo.New(pool)
	cards := flashcardrepo.New(pool)
	categories := categoryrepo.New(pool)
	sessions := sessionrepo.New(pool)
	generations := generationrepo.New(pool)
	learning := statsrepo.New(pool)
	audit := auditrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	// Services
	quota := ratelimit.PerWindow(cfg.Generation.QuotaPerHour, time.Hour, cfg.RateLimit.CleanupInterval)

	sel := selector.New(
		selector.WithNewCardRatio(cfg.Study.NewCardRatio),
		selector.WithSeed(cfg.Study.ShuffleSeed),
	)

	collectionSvc := collection.NewService(logger, collections, audit, tx)
	flashcardSvc := flashcard.NewService(logger, cards, collections, categories, audit, tx)
	categorySvc := category.NewService(logger, categories, audit, tx)
	statsSvc := stats.NewService(logger, learning, collections)
	studySvc := study.NewService(logger, cards, collections, sessions, audit, tx, sel, cfg.Study.DefaultMaxCards)
	generationSvc := generation.NewService(logger, gen, generations, collections, cards, quota, audit, tx, cfg.Generation.SessionTTL)

	// Handlers
	router := rest.NewRouter(rest.Handlers{
		Health:     rest.NewHealthHandler(pool, BuildVersion(), cfg.Generation.APIKey != ""),
		Study:      rest.NewStudyHandler(studySvc, logger),
		Collection: rest.NewCollectionHandler(collectionSvc, flashcardSvc, logger),
		Flashcard:  rest.NewFlashcardHandler(flashcardSvc, logger),
		Category:   rest.NewCategoryHandler(categorySvc, logger),
		Generation: rest.NewGenerationHandler(generationSvc, logger),
		Stats:      rest.NewStatsHandler(statsSvc, logger),
	}, cfg.Server.MaxBodyBytes)

	// Middleware
	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.JWTAudience, cfg.Auth.TokenTTL)

	stops := []func(){quota.Stop}
	var rateLimit middleware.Middleware
	if cfg.RateLimit.Enabled {
		limiter := ratelimit.PerMinute(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.CleanupInterval)
		rateLimit = middleware.RateLimit(limiter)
		stops = append(stops, limiter.Stop)
	}

	chain := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwt, "/live", "/ready", "/health"),
		middleware.Logger(logger),
		rateLimit,
	)

	stop := func() {
		for _, s := range stops {
			s()
		}
	}
	return chain(router), stop
}
