package get_wizard

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bmc-canopy/BMC-BookingService/internal/api/handlers"
	"github.com/bmc-canopy/BMC-BookingService/internal/service/wizard"
)

const msgSessionNotFound = "сессия мастера не найдена или истекла"

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

// Handle GET /api/v1/wizard/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	view, err := h.wizard.Get(sessionID)
	if err != nil {
		if errors.Is(err, wizard.ErrSessionNotFound) {
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("GET /wizard/{sessionId} - Failed to get session: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromWizardView(view))
}
