package select_color

import "github.com/bmc-canopy/BMC-BookingService/internal/service/wizard"

type WizardService interface {
	SelectColor(sessionID string, colorName string) (*wizard.View, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
