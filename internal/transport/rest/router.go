package rest

import "net/http"

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health     *HealthHandler
	Study      *StudyHandler
	Collection *CollectionHandler
	Flashcard  *FlashcardHandler
	Category   *CategoryHandler
	Generation *GenerationHandler
	Stats      *StatsHandler
}

// NewRouter registers all routes on a new ServeMux. Request bodies larger
// than maxBodyBytes are rejected while decoding; zero disables the limit.
func NewRouter(h Handlers, maxBodyBytes int64) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /study/next", h.Study.Next)
	mux.HandleFunc("GET /study/sessions", h.Study.List)
	mux.HandleFunc("GET /study/sessions/{id}", h.Study.Get)
	mux.HandleFunc("POST /study/sessions/{id}/review", h.Study.Review)
	mux.HandleFunc("PUT /study/sessions/{id}/complete", h.Study.Complete)
	mux.HandleFunc("POST /study/sessions/{id}/pause", h.Study.Pause)
	mux.HandleFunc("POST /study/sessions/{id}/resume", h.Study.Resume)

	mux.HandleFunc("POST /collections", h.Collection.Create)
	mux.HandleFunc("GET /collections", h.Collection.List)
	mux.HandleFunc("GET /collections/{id}", h.Collection.Get)
	mux.HandleFunc("PATCH /collections/{id}", h.Collection.Update)
	mux.HandleFunc("DELETE /collections/{id}", h.Collection.Delete)
	mux.HandleFunc("GET /collections/{id}/flashcards", h.Collection.Flashcards)

	mux.HandleFunc("POST /flashcards", h.Flashcard.Create)
	mux.HandleFunc("POST /flashcards/bulk", h.Flashcard.CreateBulk)
	mux.HandleFunc("PATCH /flashcards/{id}", h.Flashcard.Update)
	mux.HandleFunc("DELETE /flashcards/{id}", h.Flashcard.Delete)

	mux.HandleFunc("POST /categories", h.Category.Create)
	mux.HandleFunc("GET /categories", h.Category.List)
	mux.HandleFunc("GET /categories/{id}", h.Category.Get)
	mux.HandleFunc("PATCH /categories/{id}", h.Category.Update)
	mux.HandleFunc("DELETE /categories/{id}", h.Category.Delete)

	mux.HandleFunc("POST /generate/flashcards", h.Generation.Generate)
	mux.HandleFunc("POST /generate/flashcards/{id}/accept", h.Generation.Accept)
	mux.HandleFunc("GET /generate/stats", h.Generation.Stats)

	mux.HandleFunc("GET /stats/learning", h.Stats.Learning)

	if maxBodyBytes <= 0 {
		return mux
	}
	return http.MaxBytesHandler(mux, maxBodyBytes)
}
