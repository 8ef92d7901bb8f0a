package start_wizard

import "github.com/bmc-canopy/BMC-BookingService/internal/service/wizard"

type WizardService interface {
	StartSession() (*wizard.View, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
