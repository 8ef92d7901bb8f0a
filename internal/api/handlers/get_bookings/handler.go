package get_bookings

import (
	"net/http"

	"github.com/bmc-canopy/BMC-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/admin/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list, err := h.bookings.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainBookingList(list))
}
