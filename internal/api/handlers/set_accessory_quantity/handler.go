package set_accessory_quantity

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bmc-canopy/BMC-BookingService/internal/api/handlers"
	"github.com/bmc-canopy/BMC-BookingService/internal/service/wizard"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSessionNotFound    = "сессия мастера не найдена или истекла"
	msgAccessoryNotFound  = "аксессуар не найден в каталоге"
)

type Handler struct {
	wizard WizardService
	logger Logger
}

func NewHandler(wizard WizardService, logger Logger) *Handler {
	return &Handler{
		wizard: wizard,
		logger: logger,
	}
}

// Handle PUT /api/v1/wizard/{sessionId}/accessories
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SetAccessoryQuantityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /wizard/{sessionId}/accessories - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, err := h.wizard.SetAccessoryQuantity(sessionID, req.AccessoryID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrAccessoryNotFound):
			h.logger.Warn("PUT /wizard/{sessionId}/accessories - Accessory not found: session_id=%s, accessory_id=%d", sessionID, req.AccessoryID)
			handlers.RespondNotFound(w, msgAccessoryNotFound)

		default:
			h.logger.Error("PUT /wizard/{sessionId}/accessories - Failed to set quantity: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromWizardView(view))
}
