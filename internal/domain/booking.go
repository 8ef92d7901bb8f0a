package domain

import (
	"strconv"
	"time"
)

// BookingStatus статус сохраненной брони
type BookingStatus string

const (
	StatusPending   BookingStatus = "Pending"
	StatusConfirmed BookingStatus = "Confirmed"
	StatusCompleted BookingStatus = "Completed"
	StatusCancelled BookingStatus = "Cancelled"
)

// ValidBookingStatuses допустимые статусы брони
var ValidBookingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// IsValid возвращает true для известного статуса
func (s BookingStatus) IsValid() bool {
	for _, v := range ValidBookingStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// SelectionSnapshot снимок выбора на момент завершения брони
// Сохраняется в bookings.selected_items как JSONB; ключи канопи и
// аксессуаров — строковые формы (границы хранения)
type SelectionSnapshot struct {
	Canopies    map[string]int `json:"canopies"`
	Package     *Package       `json:"package"`
	Accessories map[string]int `json:"accessories"`
	Color       Color          `json:"color"`
}

// Booking сохраненная бронь
type Booking struct {
	ID              int64
	FullName        string
	Email           string
	Phone           string
	EventDate       string
	EventTime       string
	GuestCount      string
	Location        string
	SpecialRequests string

	BookingMode   BookingMode
	SelectedItems SelectionSnapshot
	TotalPrice    float64
	DepositAmount float64
	Status        BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSelectionSnapshot строит снимок выбора для сохранения
func NewSelectionSnapshot(state *SelectionState) SelectionSnapshot {
	snap := SelectionSnapshot{
		Canopies:    make(map[string]int, len(state.Canopies)),
		Package:     state.Package,
		Accessories: make(map[string]int, len(state.Accessories)),
		Color:       state.Color,
	}

	for ref, qty := range state.Canopies {
		snap.Canopies[ref.String()] = qty
	}
	for id, qty := range state.Accessories {
		snap.Accessories[strconv.FormatInt(id, 10)] = qty
	}

	return snap
}
