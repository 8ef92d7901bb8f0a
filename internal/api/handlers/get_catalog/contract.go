package get_catalog

import "github.com/bmc-canopy/BMC-BookingService/internal/domain"

type CatalogService interface {
	Snapshot() *domain.CatalogSnapshot
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
