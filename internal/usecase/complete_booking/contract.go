package complete_booking

import (
	"context"

	"github.com/bmc-canopy/BMC-BookingService/internal/domain"
)

// WizardService определяет методы сервиса мастера бронирования
type WizardService interface {
	State(sessionID string) (*domain.SelectionState, error)
	Reset(sessionID string) error
}

// CatalogProvider отдает текущий снимок каталога
type CatalogProvider interface {
	Snapshot() *domain.CatalogSnapshot
}

// BookingRepository определяет методы сохранения брони
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// LinkBuilder собирает ссылку для передачи брони в мессенджер
type LinkBuilder interface {
	BookingLink(text string) string
}

// Logger определяет методы логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
