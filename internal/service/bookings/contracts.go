package bookings

import (
	"context"

	"github.com/bmc-canopy/BMC-BookingService/internal/domain"
)

// BookingRepository определяет методы работы с хранилищем броней
type BookingRepository interface {
	List(ctx context.Context) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// Logger определяет методы логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
