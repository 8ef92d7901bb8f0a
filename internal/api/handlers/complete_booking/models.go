package complete_booking

import (
	"github.com/bmc-canopy/BMC-BookingService/internal/api/handlers"
	completeBooking "github.com/bmc-canopy/BMC-BookingService/internal/usecase/complete_booking"
)

// CompleteBookingResponse HTTP response model
type CompleteBookingResponse struct {
	BookingID   string                      `json:"bookingId"`
	WhatsAppURL string                      `json:"whatsappUrl"`
	Notice      string                      `json:"notice"`
	Financials  handlers.FinancialsResponse `json:"financials"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *completeBooking.Response) *CompleteBookingResponse {
	return &CompleteBookingResponse{
		BookingID:   resp.BookingID,
		WhatsAppURL: resp.WhatsAppURL,
		Notice:      resp.Notice,
		Financials:  handlers.FromFinancials(resp.Financials),
	}
}
