package update_booking_status

import (
	"context"

	"github.com/bmc-canopy/BMC-BookingService/internal/domain"
)

type BookingsService interface {
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
