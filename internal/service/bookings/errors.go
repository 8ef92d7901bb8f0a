package bookings

import "errors"

var (
	// ErrBookingNotFound бронь не найдена
	ErrBookingNotFound = errors.New("booking not found")
	// ErrInvalidStatus недопустимый статус брони
	ErrInvalidStatus = errors.New("invalid booking status")
	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal error")
)
