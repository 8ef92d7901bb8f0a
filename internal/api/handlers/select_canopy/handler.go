package select_canopy

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
	msgSizeNotFound       = "размер канопи не найден"
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

// Handle POST /api/v1/wizard/{sessionId}/canopy
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectCanopyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/{sessionId}/canopy - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, err := h.wizard.SelectCanopy(sessionID, req.CanopyID, req.SizeName)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrCanopyNotFound):
			h.logger.Warn("POST /wizard/{sessionId}/canopy - Canopy not found: session_id=%s, canopy_id=%d", sessionID, req.CanopyID)
			handlers.RespondNotFound(w, msgCanopyNotFound)

		case errors.Is(err, wizard.ErrSizeNotFound):
			h.logger.Warn("POST /wizard/{sessionId}/canopy - Size not found: session_id=%s, canopy_id=%d", sessionID, req.CanopyID)
			handlers.RespondBadRequest(w, msgSizeNotFound)

		default:
			h.logger.Error("POST /wizard/{sessionId}/canopy - Failed to select canopy: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromWizardView(view))
}
