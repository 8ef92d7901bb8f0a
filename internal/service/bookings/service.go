package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/bmc-canopy/BMC-BookingService/internal/domain"
	storage "github.com/bmc-canopy/BMC-BookingService/internal/infra/storage/booking"
)

// Service сервис административной работы с бронями
type Service struct {
	repo   BookingRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(repo BookingRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List возвращает все брони от новых к старым
func (s *Service) List(ctx context.Context) ([]*domain.Booking, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: List - repo.List: %v", ErrInternal, err)
	}
	return list, nil
}

// UpdateStatus меняет статус брони
func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: failed to update booking %d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repo.UpdateStatus: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: booking %d set to %s", id, status)
	return nil
}
