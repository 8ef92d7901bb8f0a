package complete_booking

import "github.com/bmc-canopy/BMC-BookingService/internal/domain"

// Request параметры завершения брони
type Request struct {
	SessionID string
}

// Response результат завершения брони
// BookingID содержит "#<id>" при успешном сохранении, иначе "BARU"
type Response struct {
	BookingID   string
	WhatsAppURL string
	Notice      string
	Financials  domain.Financials
}
