package select_canopy

import "github.com/bmc-canopy/BMC-BookingService/internal/service/wizard"

type WizardService interface {
	SelectCanopy(sessionID string, canopyID int64, sizeName *string) (*wizard.View, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
