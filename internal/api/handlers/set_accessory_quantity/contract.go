package set_accessory_quantity

import "github.com/bmc-canopy/BMC-BookingService/internal/service/wizard"

type WizardService interface {
	SetAccessoryQuantity(sessionID string, accessoryID int64, qty int) (*wizard.View, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
