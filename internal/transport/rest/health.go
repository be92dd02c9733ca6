package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// cachePinger is the health probe of the record cache backend.
type cachePinger interface {
	Ping(ctx context.Context) error
}

const pingTimeout = 3 * time.Second

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	cache   cachePinger
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(cache cachePinger, version string) *HealthHandler {
	return &HealthHandler{cache: cache, version: version}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live always answers 200.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready answers 200 when the cache backend responds, 503 otherwise.
//
// Cache failures never fail a lookup, but a server whose cache is down
// would hit the catalog on every request, so it is not considered ready.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	comp := h.pingCache(r.Context())
	writeJSON(w, statusCode(comp.Status), HealthResponse{Status: comp.Status, Timestamp: time.Now()})
}

// Health reports every component with latency, plus the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	comp := h.pingCache(r.Context())
	writeJSON(w, statusCode(comp.Status), HealthResponse{
		Status:     comp.Status,
		Version:    h.version,
		Components: map[string]CompStatus{"cache": comp},
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) pingCache(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.cache.Ping(ctx); err != nil {
		return CompStatus{Status: "down", Error: err.Error()}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}

func statusCode(status string) int {
	if status == "ok" {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
