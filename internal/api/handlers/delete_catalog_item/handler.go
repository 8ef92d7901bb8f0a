package delete_catalog_item

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bmc-canopy/BMC-BookingService/internal/api/handlers"
	"github.com/bmc-canopy/BMC-BookingService/internal/domain"
	catalogService "github.com/bmc-canopy/BMC-BookingService/internal/service/catalog"
)

const (
	msgInvalidCollection = "неизвестная коллекция каталога"
	msgInvalidItemID     = "некорректный идентификатор элемента"
	msgItemNotFound      = "элемент каталога не найден"
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

// Handle DELETE /api/v1/admin/catalog/{collection}/items/{itemId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	collection := domain.CollectionName(vars["collection"])
	itemID, err := strconv.ParseInt(vars["itemId"], 10, 64)
	if err != nil || itemID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	if err := h.catalog.Delete(r.Context(), collection, itemID); err != nil {
		switch {
		case errors.Is(err, catalogService.ErrInvalidCollection):
			handlers.RespondBadRequest(w, msgInvalidCollection)

		case errors.Is(err, catalogService.ErrItemNotFound):
			h.logger.Warn("DELETE catalog item - Item not found: collection=%s, item_id=%d", collection, itemID)
			handlers.RespondNotFound(w, msgItemNotFound)

		default:
			h.logger.Error("DELETE catalog item - Failed to delete: collection=%s, item_id=%d, error=%v", collection, itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
