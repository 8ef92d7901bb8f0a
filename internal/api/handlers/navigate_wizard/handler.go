package navigate_wizard

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bmc-canopy/BMC-BookingService/internal/api/handlers"
	"github.com/bmc-canopy/BMC-BookingService/internal/service/wizard"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDirection   = "некорректное направление, ожидается next или back"
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

// Handle POST /api/v1/wizard/{sessionId}/navigate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req NavigateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/{sessionId}/navigate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var (
		view *wizard.View
		err  error
	)
	switch req.Direction {
	case DirectionNext:
		view, err = h.wizard.Next(sessionID)
	case DirectionBack:
		view, err = h.wizard.Back(sessionID)
	default:
		h.logger.Warn("POST /wizard/{sessionId}/navigate - Invalid direction: session_id=%s, direction=%q", sessionID, req.Direction)
		handlers.RespondBadRequest(w, msgInvalidDirection)
		return
	}

	if err != nil {
		if errors.Is(err, wizard.ErrSessionNotFound) {
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("POST /wizard/{sessionId}/navigate - Failed to navigate: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromWizardView(view))
}
