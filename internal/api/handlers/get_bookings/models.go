package get_bookings

import (
	"time"

	"github.com/bmc-canopy/BMC-BookingService/internal/domain"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64                    `json:"id"`
	FullName        string                   `json:"fullName"`
	Email           string                   `json:"email"`
	Phone           string                   `json:"phone"`
	EventDate       string                   `json:"eventDate"`
	EventTime       string                   `json:"eventTime"`
	GuestCount      string                   `json:"guestCount"`
	Location        string                   `json:"location"`
	SpecialRequests string                   `json:"specialRequests"`
	BookingMode     string                   `json:"bookingMode"`
	SelectedItems   domain.SelectionSnapshot `json:"selectedItems"`
	TotalPrice      float64                  `json:"totalPrice"`
	DepositAmount   float64                  `json:"depositAmount"`
	Status          string                   `json:"status"`
	CreatedAt       string                   `json:"createdAt"`
	UpdatedAt       string                   `json:"updatedAt"`
}

// BookingListResponse HTTP response model
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует доменную бронь в HTTP response
func FromDomainBooking(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		FullName:        b.FullName,
		Email:           b.Email,
		Phone:           b.Phone,
		EventDate:       b.EventDate,
		EventTime:       b.EventTime,
		GuestCount:      b.GuestCount,
		Location:        b.Location,
		SpecialRequests: b.SpecialRequests,
		BookingMode:     string(b.BookingMode),
		SelectedItems:   b.SelectedItems,
		TotalPrice:      b.TotalPrice,
		DepositAmount:   b.DepositAmount,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       b.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует список броней в HTTP response
func FromDomainBookingList(list []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(list)),
	}
	for _, b := range list {
		resp.Bookings = append(resp.Bookings, FromDomainBooking(b))
	}
	return resp
}
