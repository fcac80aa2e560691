package rest

import (
	"context"
	"net/http"
	"time"
)

const pingTimeout = 3 * time.Second

// Overall and per-component health states.
const (
	healthOK       = "ok"
	healthDown     = "down"
	healthDegraded = "degraded"
	healthDisabled = "disabled"
)

type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	db                dbPinger
	version           string
	generationEnabled bool
	now               func() time.Time
}

// NewHealthHandler creates a HealthHandler. generationEnabled reports whether
// a model API key is configured; without one the service still serves study
// traffic, so /health reports degraded instead of down.
func NewHealthHandler(db dbPinger, version string, generationEnabled bool) *HealthHandler {
	return &HealthHandler{db: db, version: version, generationEnabled: generationEnabled, now: time.Now}
}

// HealthResponse is the JSON body of every health endpoint.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live always answers 200 while the process is up.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: healthOK, Timestamp: h.now()})
}

// Ready answers 503 until the database is reachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.pingDB(r.Context())
	if db.Status != healthOK {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: healthDown, Timestamp: h.now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: healthOK, Timestamp: h.now()})
}

// Health reports every component with the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := map[string]CompStatus{
		"database":   h.pingDB(r.Context()),
		"generation": {Status: healthOK},
	}
	if !h.generationEnabled {
		components["generation"] = CompStatus{Status: healthDisabled}
	}

	overall, status := healthOK, http.StatusOK
	switch {
	case components["database"].Status != healthOK:
		overall, status = healthDown, http.StatusServiceUnavailable
	case !h.generationEnabled:
		overall = healthDegraded
	}

	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  h.now(),
	})
}

func (h *HealthHandler) pingDB(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: healthDown}
	}
	return CompStatus{Status: healthOK, Latency: time.Since(start).String()}
}
