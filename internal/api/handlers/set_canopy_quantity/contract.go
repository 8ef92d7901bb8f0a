package set_canopy_quantity

import (
	"github.com/bmc-canopy/BMC-BookingService/internal/domain"
	"github.com/bmc-canopy/BMC-BookingService/internal/service/wizard"
)

type WizardService interface {
	SetCanopyQuantity(sessionID string, ref domain.CanopyRef, qty int) (*wizard.View, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
