package select_color

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
	msgColorNotFound      = "цвет не найден в палитре"
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

// Handle POST /api/v1/wizard/{sessionId}/color
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectColorRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/{sessionId}/color - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, err := h.wizard.SelectColor(sessionID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrColorNotFound):
			h.logger.Warn("POST /wizard/{sessionId}/color - Color not found: session_id=%s, name=%q", sessionID, req.Name)
			handlers.RespondNotFound(w, msgColorNotFound)

		default:
			h.logger.Error("POST /wizard/{sessionId}/color - Failed to select color: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromWizardView(view))
}
