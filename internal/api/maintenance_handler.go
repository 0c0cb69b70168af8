package api

import (
	"context"
	"net/http"

	"github.com/forgetting-curve/api/internal/api/shared"
)

// SchemaResetter drops and recreates the database schema. The concrete
// implementation is bound to the migration toolchain in cmd/server.
type SchemaResetter func(ctx context.Context) error

// MaintenanceHandler handles operational endpoints: schema reset and
// liveness.
type MaintenanceHandler struct {
	resetSchema SchemaResetter
}

// NewMaintenanceHandler creates a new MaintenanceHandler.
func NewMaintenanceHandler(resetSchema SchemaResetter) *MaintenanceHandler {
	return &MaintenanceHandler{resetSchema: resetSchema}
}

// SetupDatabase handles POST /setup_database requests. It destroys all
// data and recreates the schema from the migrations; intended for test
// environments only.
func (h *MaintenanceHandler) SetupDatabase(w http.ResponseWriter, r *http.Request) {
	if err := h.resetSchema(r.Context()); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to set up database", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.StatusSuccess)
}

// Health handles GET /health requests.
func (h *MaintenanceHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, shared.StatusResponse{Status: "ok"})
}
