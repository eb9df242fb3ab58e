package api

import (
	"net/http"
	"time"

	respond "github.com/sharmaeishan/Grocery-list-Manager/internal/api/respond"
)

// HealthReporter is the view of the service health aggregator the endpoint needs.
type HealthReporter interface {
	IsHealthy() bool
	Components() map[string]bool
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	reporter HealthReporter
}

// NewHealthHandler creates a new health handler. A nil reporter reports healthy.
func NewHealthHandler(reporter HealthReporter) *HealthHandler {
	return &HealthHandler{reporter: reporter}
}

// CheckHealth handles GET /api/health
// Always returns 200; body reports healthy/unhealthy. 500 indicates handler failure only.
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	response := map[string]interface{}{
		"timestamp": time.Now().Format(time.RFC3339),
	}
	if h.reporter != nil {
		if !h.reporter.IsHealthy() {
			status = "unhealthy"
		}
		if c := h.reporter.Components(); len(c) > 0 {
			response["components"] = c
		}
	}
	response["status"] = status
	respond.WriteJSON(w, http.StatusOK, response)
}
