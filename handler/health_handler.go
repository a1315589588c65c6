package handler

import (
	"net/http"
	"time"
)

// HealthCheck godoc
// @Summary      Service health
// @Description  Liveness probe for the marketing API.
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /api/health [get]
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"service":   "AI Marketing Command Center API",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
