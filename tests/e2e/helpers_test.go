//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/flashcards-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/flashcards-backend/internal/app"
	authpkg "github.com/heartmarshall/flashcards-backend/internal/auth"
	"github.com/heartmarshall/flashcards-backend/internal/config"
	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

const (
	testJWTSecret = "test-secret-at-least-32-chars-long!!"
	testJWTIssuer = "test-issuer"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Gen    *stubGenerator
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// ---------------------------------------------------------------------------
// Stub generator: returns canned candidates instead of calling a model.
// ---------------------------------------------------------------------------

type stubGenerator struct {
	mu         sync.Mutex
	candidates []domain.FlashcardCandidate
	calls      int
}

func (g *stubGenerator) Generate(_ context.Context, _ string, maxCards int) ([]domain.FlashcardCandidate, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	if len(g.candidates) > maxCards {
		return g.candidates[:maxCards], nil
	}
	return g.candidates, nil
}

func (g *stubGenerator) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	return setupTestServerWith(t, func(*config.Config) {})
}

func setupTestServerWith(t *testing.T, tweak func(*config.Config)) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	cfg := &config.Config{
		Server: config.ServerConfig{MaxBodyBytes: 1 << 20},
		Auth: config.AuthConfig{
			JWTSecret: testJWTSecret,
			JWTIssuer: testJWTIssuer,
			TokenTTL:  15 * time.Minute,
		},
		Study: config.StudyConfig{DefaultMaxCards: 20, NewCardRatio: 0.3, ShuffleSeed: 1},
		Generation: config.GenerationConfig{
			APIKey:       "stub",
			SessionTTL:   30 * time.Minute,
			QuotaPerHour: 10,
		},
		CORS: config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,PATCH,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		},
		RateLimit: config.RateLimitConfig{Enabled: false},
	}
	tweak(cfg)

	gen := &stubGenerator{candidates: []domain.FlashcardCandidate{
		{Front: "What do chloroplasts contain?", Back: "Chlorophyll"},
		{Front: "What gas does photosynthesis release?", Back: "Oxygen"},
		{Front: "What sugar does photosynthesis produce?", Back: "Glucose"},
	}}

	handler, stop := app.NewHandler(cfg, pool, gen, logger)
	t.Cleanup(stop)

	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		Gen:    gen,
		jwt:    authpkg.NewJWTManager(testJWTSecret, testJWTIssuer, "", 15*time.Minute),
	}
}

// ---------------------------------------------------------------------------
// HTTP helpers
// ---------------------------------------------------------------------------

// do sends a JSON request and returns the status code and raw body.
func (ts *testServer) do(t *testing.T, method, path string, body any, token string) (int, []byte) {
	t.Helper()

	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		r = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, r)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	return resp.StatusCode, raw
}

// doJSON is do plus decoding the body into a generic map.
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	status, raw := ts.do(t, method, path, body, token)
	if len(raw) == 0 {
		return status, nil
	}
	var result map[string]any
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("decode response %q: %v", raw, err)
	}
	return status, result
}

// ---------------------------------------------------------------------------
// createTestUser returns a fresh user ID and a valid access token for it.
// Users live in the identity provider, so nothing is inserted.
// ---------------------------------------------------------------------------

func createTestUser(t *testing.T, ts *testServer) (string, uuid.UUID) {
	t.Helper()

	userID := uuid.New()
	tok, err := ts.jwt.GenerateAccessToken(userID)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return tok, userID
}

// createCollection creates a collection through the API and returns its ID.
func createCollection(t *testing.T, ts *testServer, token, name string) string {
	t.Helper()

	status, result := ts.doJSON(t, http.MethodPost, "/collections", map[string]any{"name": name}, token)
	if status != http.StatusCreated {
		t.Fatalf("create collection: status %d, body %v", status, result)
	}
	return result["id"].(string)
}

// createFlashcards bulk-creates n cards in a collection through the API.
func createFlashcards(t *testing.T, ts *testServer, token, collectionID string, n int) []string {
	t.Helper()

	cards := make([]map[string]string, n)
	for i := range cards {
		cards[i] = map[string]string{"front": fmt.Sprintf("front %d", i), "back": fmt.Sprintf("back %d", i)}
	}
	status, result := ts.doJSON(t, http.MethodPost, "/flashcards/bulk", map[string]any{
		"collection_id": collectionID,
		"flashcards":    cards,
	}, token)
	if status != http.StatusCreated {
		t.Fatalf("create flashcards: status %d, body %v", status, result)
	}

	created := result["flashcards"].([]any)
	ids := make([]string, len(created))
	for i, c := range created {
		ids[i] = c.(map[string]any)["id"].(string)
	}
	return ids
}
