package start_wizard

import (
	"net/http"

	"github.com/bmc-canopy/BMC-BookingService/internal/api/handlers"
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

// Handle POST /api/v1/wizard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	view, err := h.wizard.StartSession()
	if err != nil {
		h.logger.Error("POST /wizard - Failed to start session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /wizard - Session started: session_id=%s", view.SessionID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromWizardView(view))
}
