package handlers

import (
	"net/http"

	"github.com/mark47B/pr-health-dashboard/internal/infra/transport/rest/gen"
)

// GET /health
func (h *Handlers) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, gen.HealthResponse{Status: "ok"})
}
