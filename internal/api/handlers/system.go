package handlers

import (
	"database/sql"
	"net/http"

	"github.com/jmertens/portfolio-tracker-backend/internal/api/response"
	"github.com/jmertens/portfolio-tracker-backend/internal/database"
)

// SystemHandler handles system-level HTTP requests.
type SystemHandler struct {
	db *sql.DB
}

// NewSystemHandler creates a new SystemHandler with the provided database connection.
func NewSystemHandler(db *sql.DB) *SystemHandler {
	return &SystemHandler{db: db}
}

// Health handles GET requests for the health check.
//
// Endpoint: GET /api/health
// Response: 200 OK with {status: "healthy"}, 503 if the database is unreachable
func (h *SystemHandler) Health(w http.ResponseWriter, _ *http.Request) {
	if err := database.HealthCheck(h.db); err != nil {
		response.RespondError(w, http.StatusServiceUnavailable, "database unavailable", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
