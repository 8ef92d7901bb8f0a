package bookings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmc-canopy/BMC-BookingService/internal/domain"
	storage "github.com/bmc-canopy/BMC-BookingService/internal/infra/storage/booking"
)

type fakeRepo struct {
	list      []*domain.Booking
	listErr   error
	updateErr error

	updatedID     int64
	updatedStatus domain.BookingStatus
}

func (f *fakeRepo) List(ctx context.Context) ([]*domain.Booking, error) {
	return f.list, f.listErr
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	f.updatedID = id
	f.updatedStatus = status
	return f.updateErr
}

type noopLogger struct{}

func (noopLogger) Info(format string, args ...any)  {}
func (noopLogger) Warn(format string, args ...any)  {}
func (noopLogger) Error(format string, args ...any) {}

func TestList(t *testing.T) {
	repo := &fakeRepo{list: []*domain.Booking{{ID: 1}, {ID: 2}}}
	svc := NewService(repo, noopLogger{})

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestList_RepoError(t *testing.T) {
	repo := &fakeRepo{listErr: errors.New("db down")}
	svc := NewService(repo, noopLogger{})

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestUpdateStatus(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, noopLogger{})

	err := svc.UpdateStatus(context.Background(), 7, domain.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, int64(7), repo.updatedID)
	assert.Equal(t, domain.StatusConfirmed, repo.updatedStatus)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc := NewService(&fakeRepo{}, noopLogger{})

	err := svc.UpdateStatus(context.Background(), 7, domain.BookingStatus("Archived"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo := &fakeRepo{updateErr: storage.ErrBookingNotFound}
	svc := NewService(repo, noopLogger{})

	err := svc.UpdateStatus(context.Background(), 7, domain.StatusCancelled)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
