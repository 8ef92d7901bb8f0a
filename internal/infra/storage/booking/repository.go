package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/bmc-canopy/BMC-BookingService/internal/domain"
	"github.com/bmc-canopy/BMC-BookingService/pkg/dbmetrics"
	"github.com/bmc-canopy/BMC-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую бронь и возвращает её с присвоенным id
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectedItems, err := json.Marshal(booking.SelectedItems)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - encode selected items: %v", ErrEncodeJSON, err)
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"full_name",
			"email",
			"phone",
			"event_date",
			"event_time",
			"guest_count",
			"location",
			"special_requests",
			"booking_mode",
			"selected_items",
			"total_price",
			"deposit_amount",
			"status",
		).
		Values(
			booking.FullName,
			booking.Email,
			booking.Phone,
			booking.EventDate,
			booking.EventTime,
			booking.GuestCount,
			booking.Location,
			booking.SpecialRequests,
			booking.BookingMode,
			selectedItems,
			booking.TotalPrice,
			booking.DepositAmount,
			booking.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// List возвращает все брони, новые первыми
func (r *Repository) List(ctx context.Context) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"full_name",
		"email",
		"phone",
		"event_date",
		"event_time",
		"guest_count",
		"location",
		"special_requests",
		"booking_mode",
		"selected_items",
		"total_price",
		"deposit_amount",
		"status",
		"created_at",
		"updated_at",
	).
		From("bookings").
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		var (
			booking       domain.Booking
			selectedItems []byte
			createdAt     sql.NullTime
			updatedAt     sql.NullTime
		)

		err := rows.Scan(
			&booking.ID,
			&booking.FullName,
			&booking.Email,
			&booking.Phone,
			&booking.EventDate,
			&booking.EventTime,
			&booking.GuestCount,
			&booking.Location,
			&booking.SpecialRequests,
			&booking.BookingMode,
			&selectedItems,
			&booking.TotalPrice,
			&booking.DepositAmount,
			&booking.Status,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		if len(selectedItems) > 0 {
			if err := json.Unmarshal(selectedItems, &booking.SelectedItems); err != nil {
				return nil, fmt.Errorf("%w: List - decode selected items: %v", ErrScanRow, err)
			}
		}

		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// UpdateStatus обновляет статус брони
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}
