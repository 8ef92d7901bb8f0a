package complete_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bmc-canopy/BMC-BookingService/internal/api/handlers"
	completeBooking "github.com/bmc-canopy/BMC-BookingService/internal/usecase/complete_booking"
)

const (
	msgSessionNotFound = "сессия мастера не найдена или истекла"
	msgNoSelection     = "выберите хотя бы одну канопи перед завершением брони"
)

type Handler struct {
	useCase CompleteBookingUseCase
	logger  Logger
}

func NewHandler(useCase CompleteBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/wizard/{sessionId}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	result, err := h.useCase.Execute(r.Context(), completeBooking.Request{SessionID: sessionID})
	if err != nil {
		switch {
		case errors.Is(err, completeBooking.ErrSessionNotFound):
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, completeBooking.ErrNoSelection):
			h.logger.Warn("POST /wizard/{sessionId}/complete - No selection: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgNoSelection)

		default:
			h.logger.Error("POST /wizard/{sessionId}/complete - Failed to complete booking: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/{sessionId}/complete - Booking completed: session_id=%s, booking_id=%s", sessionID, result.BookingID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
