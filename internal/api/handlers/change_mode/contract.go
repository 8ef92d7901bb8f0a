package change_mode

import (
	"github.com/bmc-canopy/BMC-BookingService/internal/domain"
	"github.com/bmc-canopy/BMC-BookingService/internal/service/wizard"
)

type WizardService interface {
	ChangeMode(sessionID string, mode domain.BookingMode) (*wizard.View, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
