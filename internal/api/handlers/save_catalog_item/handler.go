package save_catalog_item

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
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCollection  = "неизвестная коллекция каталога"
	msgInvalidItemID      = "некорректный идентификатор элемента"
	msgInvalidInput       = "некорректные данные элемента"
	msgItemNotFound       = "элемент каталога не найден"
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

// Handle POST /api/v1/admin/catalog/{collection}/items
// и PUT /api/v1/admin/catalog/{collection}/items/{itemId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	collection := domain.CollectionName(vars["collection"])
	if !collection.IsValid() {
		handlers.RespondBadRequest(w, msgInvalidCollection)
		return
	}

	var itemID int64
	if raw, ok := vars["itemId"]; ok {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			handlers.RespondBadRequest(w, msgInvalidItemID)
			return
		}
		itemID = parsed
	}

	var req SaveItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("save catalog item - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	id, err := h.save(r, collection, itemID, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrInvalidInput):
			h.logger.Warn("save catalog item - Invalid input: collection=%s, error=%v", collection, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, catalogService.ErrItemNotFound):
			h.logger.Warn("save catalog item - Item not found: collection=%s, item_id=%d", collection, itemID)
			handlers.RespondNotFound(w, msgItemNotFound)

		default:
			h.logger.Error("save catalog item - Failed to save: collection=%s, error=%v", collection, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusOK
	if itemID == 0 {
		status = http.StatusCreated
	}
	handlers.RespondJSON(w, status, SavedItemResponse{ID: id})
}

func (h *Handler) save(r *http.Request, collection domain.CollectionName, itemID int64, req *SaveItemRequest) (int64, error) {
	ctx := r.Context()

	switch collection {
	case domain.CollectionCanopies:
		saved, err := h.catalog.SaveCanopy(ctx, req.ToCanopy(itemID))
		if err != nil {
			return 0, err
		}
		return saved.ID, nil

	case domain.CollectionPackages:
		saved, err := h.catalog.SavePackage(ctx, req.ToPackage(itemID))
		if err != nil {
			return 0, err
		}
		return saved.ID, nil

	default:
		saved, err := h.catalog.SaveAccessory(ctx, req.ToAccessory(itemID))
		if err != nil {
			return 0, err
		}
		return saved.ID, nil
	}
}
