package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/service/category"
	"github.com/heartmarshall/flashcards-backend/internal/service/collection"
	"github.com/heartmarshall/flashcards-backend/internal/service/flashcard"
	"github.com/heartmarshall/flashcards-backend/internal/service/generation"
	"github.com/heartmarshall/flashcards-backend/internal/service/stats"
	"github.com/heartmarshall/flashcards-backend/internal/service/study"
)

// ---------------------------------------------------------------------------
// Fakes
// ---------------------------------------------------------------------------

type fakeStudy struct {
	start    func(ctx context.Context, in study.StartSessionInput) (*study.StartSessionResult, error)
	review   func(ctx context.Context, in study.ReviewCardInput) (*study.ReviewResult, error)
	batch    func(ctx context.Context, in study.ReviewBatchInput) (*study.BatchReviewResult, error)
	complete func(ctx context.Context, in study.CompleteSessionInput) (*domain.StudySession, error)
	get      func(ctx context.Context, id uuid.UUID) (*domain.StudySession, error)
	list     func(ctx context.Context, in study.ListSessionsInput) (*study.SessionList, error)
	pause    func(ctx context.Context, id uuid.UUID) (*domain.StudySession, error)
	resume   func(ctx context.Context, id uuid.UUID) (*domain.StudySession, error)
}

func (f *fakeStudy) StartSession(ctx context.Context, in study.StartSessionInput) (*study.StartSessionResult, error) {
	return f.start(ctx, in)
}
func (f *fakeStudy) ReviewCard(ctx context.Context, in study.ReviewCardInput) (*study.ReviewResult, error) {
	return f.review(ctx, in)
}
func (f *fakeStudy) ReviewBatch(ctx context.Context, in study.ReviewBatchInput) (*study.BatchReviewResult, error) {
	return f.batch(ctx, in)
}
func (f *fakeStudy) CompleteSession(ctx context.Context, in study.CompleteSessionInput) (*domain.StudySession, error) {
	return f.complete(ctx, in)
}
func (f *fakeStudy) GetSession(ctx context.Context, id uuid.UUID) (*domain.StudySession, error) {
	return f.get(ctx, id)
}
func (f *fakeStudy) ListSessions(ctx context.Context, in study.ListSessionsInput) (*study.SessionList, error) {
	return f.list(ctx, in)
}
func (f *fakeStudy) PauseSession(ctx context.Context, id uuid.UUID) (*domain.StudySession, error) {
	return f.pause(ctx, id)
}
func (f *fakeStudy) ResumeSession(ctx context.Context, id uuid.UUID) (*domain.StudySession, error) {
	return f.resume(ctx, id)
}

type fakeCollections struct {
	create func(ctx context.Context, in collection.CreateCollectionInput) (*domain.Collection, error)
	get    func(ctx context.Context, id uuid.UUID) (*domain.Collection, error)
	list   func(ctx context.Context, in collection.ListCollectionsInput) (*collection.CollectionList, error)
	update func(ctx context.Context, in collection.UpdateCollectionInput) (*domain.Collection, error)
	delete func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeCollections) CreateCollection(ctx context.Context, in collection.CreateCollectionInput) (*domain.Collection, error) {
	return f.create(ctx, in)
}
func (f *fakeCollections) GetCollection(ctx context.Context, id uuid.UUID) (*domain.Collection, error) {
	return f.get(ctx, id)
}
func (f *fakeCollections) ListCollections(ctx context.Context, in collection.ListCollectionsInput) (*collection.CollectionList, error) {
	return f.list(ctx, in)
}
func (f *fakeCollections) UpdateCollection(ctx context.Context, in collection.UpdateCollectionInput) (*domain.Collection, error) {
	return f.update(ctx, in)
}
func (f *fakeCollections) DeleteCollection(ctx context.Context, id uuid.UUID) error {
	return f.delete(ctx, id)
}

type fakeFlashcards struct {
	create     func(ctx context.Context, in flashcard.CreateFlashcardInput) (*domain.Flashcard, error)
	createBulk func(ctx context.Context, in flashcard.CreateBulkInput) ([]domain.Flashcard, error)
	list       func(ctx context.Context, in flashcard.ListInput) (*flashcard.FlashcardList, error)
	update     func(ctx context.Context, in flashcard.UpdateFlashcardInput) (*domain.Flashcard, error)
	delete     func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeFlashcards) CreateFlashcard(ctx context.Context, in flashcard.CreateFlashcardInput) (*domain.Flashcard, error) {
	return f.create(ctx, in)
}
func (f *fakeFlashcards) CreateBulk(ctx context.Context, in flashcard.CreateBulkInput) ([]domain.Flashcard, error) {
	return f.createBulk(ctx, in)
}
func (f *fakeFlashcards) ListByCollection(ctx context.Context, in flashcard.ListInput) (*flashcard.FlashcardList, error) {
	return f.list(ctx, in)
}
func (f *fakeFlashcards) UpdateFlashcard(ctx context.Context, in flashcard.UpdateFlashcardInput) (*domain.Flashcard, error) {
	return f.update(ctx, in)
}
func (f *fakeFlashcards) DeleteFlashcard(ctx context.Context, id uuid.UUID) error {
	return f.delete(ctx, id)
}

type fakeGeneration struct {
	generate func(ctx context.Context, in generation.GenerateInput) (*generation.GenerateResult, error)
	accept   func(ctx context.Context, in generation.AcceptInput) (*generation.AcceptResult, error)
	stats    func(ctx context.Context) (*domain.GenerationStats, error)
}

func (f *fakeGeneration) Generate(ctx context.Context, in generation.GenerateInput) (*generation.GenerateResult, error) {
	return f.generate(ctx, in)
}
func (f *fakeGeneration) Accept(ctx context.Context, in generation.AcceptInput) (*generation.AcceptResult, error) {
	return f.accept(ctx, in)
}
func (f *fakeGeneration) GetStats(ctx context.Context) (*domain.GenerationStats, error) {
	return f.stats(ctx)
}

type fakeCategories struct {
	create func(ctx context.Context, in category.CreateCategoryInput) (*domain.Category, error)
	get    func(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	list   func(ctx context.Context, in category.ListCategoriesInput) (*category.CategoryList, error)
	update func(ctx context.Context, in category.UpdateCategoryInput) (*domain.Category, error)
	delete func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeCategories) CreateCategory(ctx context.Context, in category.CreateCategoryInput) (*domain.Category, error) {
	return f.create(ctx, in)
}
func (f *fakeCategories) GetCategory(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	return f.get(ctx, id)
}
func (f *fakeCategories) ListCategories(ctx context.Context, in category.ListCategoriesInput) (*category.CategoryList, error) {
	return f.list(ctx, in)
}
func (f *fakeCategories) UpdateCategory(ctx context.Context, in category.UpdateCategoryInput) (*domain.Category, error) {
	return f.update(ctx, in)
}
func (f *fakeCategories) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return f.delete(ctx, id)
}

type fakeStats struct {
	learning func(ctx context.Context, in stats.LearningStatsInput) (*domain.LearningStats, error)
}

func (f *fakeStats) GetLearningStats(ctx context.Context, in stats.LearningStatsInput) (*domain.LearningStats, error) {
	return f.learning(ctx, in)
}

// ---------------------------------------------------------------------------
// Router harness
// ---------------------------------------------------------------------------

type testAPI struct {
	study       *fakeStudy
	collections *fakeCollections
	flashcards  *fakeFlashcards
	categories  *fakeCategories
	generation  *fakeGeneration
	stats       *fakeStats
	handler     http.Handler
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	api := &testAPI{
		study:       &fakeStudy{},
		collections: &fakeCollections{},
		flashcards:  &fakeFlashcards{},
		categories:  &fakeCategories{},
		generation:  &fakeGeneration{},
		stats:       &fakeStats{},
	}
	api.handler = NewRouter(Handlers{
		Health:     NewHealthHandler(&dbPingerMock{}, "test", true),
		Study:      NewStudyHandler(api.study, log),
		Collection: NewCollectionHandler(api.collections, api.flashcards, log),
		Flashcard:  NewFlashcardHandler(api.flashcards, log),
		Category:   NewCategoryHandler(api.categories, log),
		Generation: NewGenerationHandler(api.generation, log),
		Stats:      NewStatsHandler(api.stats, log),
	}, 1<<16)
	return api
}

func (a *testAPI) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		r = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rec.Body.String())
	}
	return v
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()

	if rec.Code != want {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, want, rec.Body.String())
	}
}
