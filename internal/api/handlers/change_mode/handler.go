package change_mode

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bmc-canopy/BMC-BookingService/internal/api/handlers"
	"github.com/bmc-canopy/BMC-BookingService/internal/domain"
	"github.com/bmc-canopy/BMC-BookingService/internal/service/wizard"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidMode        = "некорректный режим бронирования"
	msgSessionNotFound    = "сессия мастера не найдена или истекла"
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

// Handle PUT /api/v1/wizard/{sessionId}/mode
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req ChangeModeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /wizard/{sessionId}/mode - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, err := h.wizard.ChangeMode(sessionID, domain.BookingMode(req.Mode))
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrInvalidMode):
			h.logger.Warn("PUT /wizard/{sessionId}/mode - Invalid mode: session_id=%s, mode=%q", sessionID, req.Mode)
			handlers.RespondBadRequest(w, msgInvalidMode)

		case errors.Is(err, wizard.ErrSessionNotFound):
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("PUT /wizard/{sessionId}/mode - Failed to change mode: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /wizard/{sessionId}/mode - Mode changed: session_id=%s, mode=%s", sessionID, req.Mode)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromWizardView(view))
}
