package get_catalog

import (
	"net/http"

	"github.com/bmc-canopy/BMC-BookingService/internal/api/handlers"
)

type Handler struct {
	catalog CatalogService
	logger  Logger
}

func NewHandler(catalog CatalogService, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/catalog
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	snapshot := h.catalog.Snapshot()
	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(snapshot))
}
