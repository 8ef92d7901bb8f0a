package reorder_catalog

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bmc-canopy/BMC-BookingService/internal/api/handlers"
	"github.com/bmc-canopy/BMC-BookingService/internal/domain"
	catalogService "github.com/bmc-canopy/BMC-BookingService/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCollection  = "неизвестная коллекция каталога"
	msgInvalidOrder       = "список id должен покрывать коллекцию целиком"
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

// Handle PUT /api/v1/admin/catalog/{collection}/order
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	collection := domain.CollectionName(mux.Vars(r)["collection"])

	var req ReorderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT catalog order - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.catalog.Reorder(r.Context(), collection, req.OrderedIDs); err != nil {
		switch {
		case errors.Is(err, catalogService.ErrInvalidCollection):
			handlers.RespondBadRequest(w, msgInvalidCollection)

		case errors.Is(err, catalogService.ErrInvalidInput):
			h.logger.Warn("PUT catalog order - Invalid order: collection=%s, error=%v", collection, err)
			handlers.RespondBadRequest(w, msgInvalidOrder)

		default:
			h.logger.Error("PUT catalog order - Failed to reorder: collection=%s, error=%v", collection, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
