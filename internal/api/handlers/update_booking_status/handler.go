package update_booking_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bmc-canopy/BMC-BookingService/internal/api/handlers"
	"github.com/bmc-canopy/BMC-BookingService/internal/domain"
	bookingsService "github.com/bmc-canopy/BMC-BookingService/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBookingID   = "некорректный идентификатор брони"
	msgInvalidStatus      = "недопустимый статус брони"
	msgBookingNotFound    = "бронь не найдена"
)

type Handler struct {
	bookings BookingsService
	logger   Logger
}

func NewHandler(bookings BookingsService, logger Logger) *Handler {
	return &Handler{
		bookings: bookings,
		logger:   logger,
	}
}

// Handle PATCH /api/v1/admin/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/bookings/{bookingId}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.bookings.UpdateStatus(r.Context(), bookingID, domain.BookingStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidStatus):
			h.logger.Warn("PATCH /admin/bookings/{bookingId}/status - Invalid status: booking_id=%d, status=%q", bookingID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.logger.Warn("PATCH /admin/bookings/{bookingId}/status - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("PATCH /admin/bookings/{bookingId}/status - Failed to update status: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
