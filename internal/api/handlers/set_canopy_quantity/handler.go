package set_canopy_quantity

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
	msgCanopyNotFound     = "канопи не найдена в каталоге"
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

// Handle PUT /api/v1/wizard/{sessionId}/canopies
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SetCanopyQuantityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /wizard/{sessionId}/canopies - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, err := h.wizard.SetCanopyQuantity(sessionID, req.ToCanopyRef(), req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrCanopyNotFound):
			h.logger.Warn("PUT /wizard/{sessionId}/canopies - Canopy not found: session_id=%s, canopy_id=%d", sessionID, req.CanopyID)
			handlers.RespondNotFound(w, msgCanopyNotFound)

		default:
			h.logger.Error("PUT /wizard/{sessionId}/canopies - Failed to set quantity: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromWizardView(view))
}
