package update_details

import "github.com/bmc-canopy/BMC-BookingService/internal/domain"

// UpdateDetailsRequest HTTP request model
// Все поля опциональны: мастер сохраняет черновик по мере ввода
type UpdateDetailsRequest struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	EventDate       string `json:"eventDate"`
	EventTime       string `json:"eventTime"`
	GuestCount      string `json:"guestCount"`
	Location        string `json:"location"`
	SpecialRequests string `json:"specialRequests"`
}

// ToDomain конвертирует запрос в доменную модель
func (r *UpdateDetailsRequest) ToDomain() domain.BookingDetails {
	return domain.BookingDetails{
		FullName:        r.FullName,
		Email:           r.Email,
		Phone:           r.Phone,
		EventDate:       r.EventDate,
		EventTime:       r.EventTime,
		GuestCount:      r.GuestCount,
		Location:        r.Location,
		SpecialRequests: r.SpecialRequests,
	}
}
